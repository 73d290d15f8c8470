package bonus

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	bonuserrors "go-bonus/internal/bonus/errors"
	"go-bonus/internal/shared/apperror"
	"go-bonus/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("bonus.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bonus.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("bonus request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create bonus decode failed", zap.Error(err))
		h.writeServiceError(c, bonuserrors.ErrInvalidRequestBody.WithDetails(err.Error()))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Bonus created successfully", "bonus", resp)
}

func (h *Handler) History(c *gin.Context) {
	filter, err := parseHistoryFilter(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.History(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// parseHistoryFilter treats blank parameters as absent.
func parseHistoryFilter(c *gin.Context) (HistoryFilter, error) {
	filter := HistoryFilter{
		EmployeeID: strings.TrimSpace(c.Query("employee_id")),
		Search:     strings.TrimSpace(c.Query("search")),
	}

	var problems []string
	intParam := func(name string, min, max int) *int {
		raw := strings.TrimSpace(c.Query(name))
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < min || v > max {
			problems = append(problems, fmt.Sprintf("%s must be an integer between %d and %d", name, min, max))
			return nil
		}
		return &v
	}

	filter.Month = intParam("month", 1, 12)
	filter.Year = intParam("year", 1, 9999)
	filter.EndMonth = intParam("end_month", 1, 12)
	filter.EndYear = intParam("end_year", 1, 9999)

	if len(problems) > 0 {
		return HistoryFilter{}, apperror.Wrap(
			errors.New(strings.Join(problems, "; ")),
			bonuserrors.ErrInvalidHistoryFilter.Code,
			bonuserrors.ErrInvalidHistoryFilter.Message,
			bonuserrors.ErrInvalidHistoryFilter.HTTPStatus,
		).WithDetails(problems)
	}
	return filter, nil
}
