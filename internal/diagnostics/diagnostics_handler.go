package diagnostics

import (
	"net/http"

	"go-bonus/internal/shared/apperror"
	"go-bonus/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	resolver Resolver
	dbHost   string
	logger   *zap.Logger
}

func NewHandler(resolver Resolver, dbHost string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("diagnostics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("diagnostics.handler")
	}
	return &Handler{resolver: resolver, dbHost: dbHost, logger: l}
}

func (h *Handler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "OK"})
}

// TestDNS resolves the configured database host.
func (h *Handler) TestDNS(c *gin.Context) {
	addrs, err := h.resolver.LookupHost(c.Request.Context(), h.dbHost)
	if err != nil {
		h.logger.Warn("db host lookup failed", zap.String("host", h.dbHost), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeServiceUnavailable, err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"host":      h.dbHost,
		"addresses": addrs,
	})
}

func RegisterRoutes(r gin.IRoutes, handler *Handler) {
	r.GET("/health", handler.Health)
	r.GET("/test-dns", handler.TestDNS)
}
