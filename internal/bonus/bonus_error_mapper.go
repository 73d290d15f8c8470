package bonus

import (
	"errors"
	"strings"

	bonuserrors "go-bonus/internal/bonus/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const bonusPrimaryKey = "bonuses_pkey"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == bonusPrimaryKey {
			return bonuserrors.ErrBonusIDTaken
		}
		return err
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, bonusPrimaryKey) {
		return bonuserrors.ErrBonusIDTaken
	}

	return err
}
