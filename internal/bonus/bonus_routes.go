package bonus

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts POST /bonus and GET /bonus/history on r. createMiddleware
// runs in front of the create handler only.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	createMiddleware ...gin.HandlerFunc,
) {
	bonuses := r.Group("/bonus")
	{
		create := make([]gin.HandlerFunc, 0, len(createMiddleware)+1)
		create = append(create, createMiddleware...)
		bonuses.POST("", append(create, handler.Create)...)
		bonuses.GET("/history", handler.History)
	}
}
