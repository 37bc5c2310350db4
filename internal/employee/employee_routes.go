package employee

import (
	"go-evaltrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)

		employees.POST("",
			middleware.RateLimitByIP(2, 5),
			handler.Create,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(1, 3),
			handler.Delete,
		)
	}
}
