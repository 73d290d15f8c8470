package bonus

import (
	"context"
	"errors"
	"net/http"
	"strings"

	bonuserrors "go-bonus/internal/bonus/errors"
	"go-bonus/internal/shared/apperror"
	"go-bonus/internal/shared/contextutil"
	"go-bonus/internal/shared/metrics"

	"go.uber.org/zap"
)

// maxIDAttempts bounds how often Create re-reads the max id after losing an
// insert race on the primary key.
const maxIDAttempts = 3

type Service interface {
	Create(ctx context.Context, req CreateBonusRequest) (BonusResponse, error)
	History(ctx context.Context, filter HistoryFilter) ([]BonusResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("bonus.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bonus.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateBonusRequest) (BonusResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Debug("create bonus requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("bonus_type", req.BonusType),
	)

	if violations := ValidateInput(req); len(violations) > 0 {
		metrics.RecordValidationFailure()
		logger.Warn("create bonus validation failed", zap.Strings("violations", violations))
		return BonusResponse{}, apperror.Violations(violations)
	}

	// Both parse calls already succeeded inside ValidateInput.
	amount, _ := ParseAmount(string(req.Amount))
	monthYear, _ := ParseMonthYear(req.MonthYear)

	bonus := &Bonus{
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		EmployeeEmail: req.EmployeeEmail,
		BonusType:     req.BonusType,
		Amount:        amount,
		MonthYear:     monthYear,
		Reason:        normalizeReason(req.Reason),
	}

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		maxID, err := s.repo.FindMaxID(ctx)
		if err != nil {
			logger.Error("create bonus read max id failed", zap.Error(err))
			return BonusResponse{}, wrapDataAccess(err, "failed to generate bonus id")
		}

		bonusID, err := NextBonusID(maxID)
		if err != nil {
			logger.Error("create bonus next id failed", zap.String("max_id", maxID), zap.Error(err))
			return BonusResponse{}, err
		}
		bonus.BonusID = bonusID

		err = mapRepositoryError(s.repo.Create(ctx, bonus))
		if err == nil {
			metrics.RecordBonusCreated(bonus.BonusType)
			logger.Info("create bonus success",
				zap.String("bonus_id", bonus.BonusID),
				zap.String("employee_id", bonus.EmployeeID),
			)
			return mapToResponse(*bonus), nil
		}

		if errors.Is(err, bonuserrors.ErrBonusIDTaken) {
			metrics.RecordIDConflict()
			logger.Warn("create bonus id taken, retrying",
				zap.String("bonus_id", bonusID),
				zap.Int("attempt", attempt),
			)
			continue
		}

		logger.Error("create bonus persist failed", zap.String("bonus_id", bonusID), zap.Error(err))
		return BonusResponse{}, wrapDataAccess(err, "failed to create bonus")
	}

	return BonusResponse{}, bonuserrors.ErrBonusIDContention
}

func (s *service) History(ctx context.Context, filter HistoryFilter) ([]BonusResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Debug("bonus history requested",
		zap.String("employee_id", filter.EmployeeID),
		zap.String("search", filter.Search),
	)

	bonuses, err := s.repo.FindHistory(ctx, BuildHistoryQuery(filter))
	if err != nil {
		logger.Error("bonus history query failed", zap.Error(err))
		return nil, wrapDataAccess(err, "failed to fetch bonus history")
	}

	return mapToListResponse(bonuses), nil
}

func wrapDataAccess(err error, message string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Wrap(err, apperror.CodeInternalError, message, http.StatusInternalServerError)
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func mapToResponse(b Bonus) BonusResponse {
	return BonusResponse{
		BonusID:       b.BonusID,
		EmployeeID:    b.EmployeeID,
		EmployeeName:  b.EmployeeName,
		EmployeeEmail: b.EmployeeEmail,
		BonusType:     b.BonusType,
		Amount:        b.Amount.StringFixed(amountScale),
		MonthYear:     FormatMonthYear(b.MonthYear),
		Reason:        b.Reason,
		CreatedAt:     b.CreatedAt,
	}
}

func mapToListResponse(bonuses []Bonus) []BonusResponse {
	res := make([]BonusResponse, len(bonuses))
	for i, b := range bonuses {
		res[i] = mapToResponse(b)
	}
	return res
}
