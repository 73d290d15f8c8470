package bonus

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

const (
	selectMaxIDSQL = `SELECT bonus_id FROM bonuses ORDER BY bonus_id DESC LIMIT 1`

	insertBonusSQL = `
INSERT INTO bonuses (
	bonus_id,
	employee_id,
	employee_name,
	employee_email,
	bonus_type,
	amount,
	month_year,
	reason
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING created_at`
)

//go:generate mockgen -source=bonus_repo.go -destination=mock/bonus_repo_mock.go -package=mock
type Repository interface {
	FindMaxID(ctx context.Context) (string, error)
	Create(ctx context.Context, bonus *Bonus) error
	FindHistory(ctx context.Context, query HistoryQuery) ([]Bonus, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindMaxID returns the greatest bonus_id, or "" when the table is empty.
func (r *repository) FindMaxID(ctx context.Context) (string, error) {
	var maxID string
	err := r.db.WithContext(ctx).Raw(selectMaxIDSQL).Row().Scan(&maxID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return maxID, err
}

// Create inserts bonus and fills CreatedAt with the database timestamp.
func (r *repository) Create(ctx context.Context, bonus *Bonus) error {
	return r.db.WithContext(ctx).
		Raw(insertBonusSQL,
			bonus.BonusID,
			bonus.EmployeeID,
			bonus.EmployeeName,
			bonus.EmployeeEmail,
			bonus.BonusType,
			bonus.Amount,
			bonus.MonthYear,
			bonus.Reason,
		).
		Row().
		Scan(&bonus.CreatedAt)
}

func (r *repository) FindHistory(ctx context.Context, query HistoryQuery) ([]Bonus, error) {
	stmt, args := query.SQL()

	bonuses := make([]Bonus, 0)
	err := r.db.WithContext(ctx).Raw(stmt, args...).Scan(&bonuses).Error
	return bonuses, err
}
