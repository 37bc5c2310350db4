package evaluation

import (
	"go-evaltrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	evaluations := r.Group("/evaluations")
	{
		evaluations.GET("", handler.GetAll)
		evaluations.GET("/:id", handler.GetById)

		evaluations.POST("",
			middleware.RateLimitByIP(2, 5),
			handler.Create,
		)

		evaluations.DELETE("/:id",
			middleware.RateLimitByIP(1, 3),
			handler.Delete,
		)
	}
}
