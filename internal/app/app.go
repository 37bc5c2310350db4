package app

import (
	"go-evaltrack/internal/config"
	"go-evaltrack/internal/storage"
	"go-evaltrack/internal/upload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp opens the persistent store and wires every module into the
// router. An unusable database file is a fatal startup error by contract:
// the process must not serve requests against a store it could not open.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	zap.L().Info("store opened", zap.String("path", cfg.DBPath))

	photos, err := upload.NewDiskPhotoStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	return registerModules(router, db, photos, cfg)
}
