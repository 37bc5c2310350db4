package app

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-evaltrack/internal/config"
	"go-evaltrack/internal/dashboard"
	"go-evaltrack/internal/employee"
	"go-evaltrack/internal/evaluation"
	"go-evaltrack/internal/middleware"
	"go-evaltrack/internal/shared/apperror"
	"go-evaltrack/internal/shared/response"
	"go-evaltrack/internal/upload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	photos upload.PhotoStore,
	cfg config.Config,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)
	evaluationRepo := evaluation.NewRepository(db)
	dashboardRepo := dashboard.NewRepository(db)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, photos)
	evaluationService := evaluation.NewService(evaluationRepo, employeeRepo)
	dashboardService := dashboard.NewService(dashboardRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	evaluationHandler := evaluation.NewHandler(evaluationService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	api := router.Group("/api")
	api.Use(middleware.ContextLogger(zap.L()))
	{
		employee.RegisterRoutes(api, employeeHandler)
		evaluation.RegisterRoutes(api, evaluationHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	registerStatic(router, cfg)

	return nil
}

// registerStatic serves uploaded photos and the SPA shell. Unknown non-API
// paths fall back to index.html so client-side routing works.
func registerStatic(router *gin.Engine, cfg config.Config) {
	router.Static("/uploads", cfg.UploadDir)

	indexPath := filepath.Join(cfg.WebDir, "index.html")
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "Route not found", nil)
			return
		}

		p := filepath.Join(cfg.WebDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			c.File(p)
			return
		}
		c.File(indexPath)
	})
}
