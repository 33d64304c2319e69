package server

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	"github.com/sapience/api/internal/config"
	"github.com/sapience/api/internal/logger"
	"github.com/sapience/api/internal/metrics"
	"github.com/sapience/api/internal/upload"
	"github.com/sapience/api/internal/user"
)

// Version is the API version reported by the root and health endpoints.
const Version = "0.1.0"

// Dependencies groups the services required by the HTTP router.
type Dependencies struct {
	Config        config.Config
	DB            *pgxpool.Pool
	ObjectStore   *minio.Client
	UploadService *upload.Service
	UserService   *user.Service
}

// NewRouter builds a Gin engine with foundational middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(logger.Middleware())

	registerRootRoutes(router)
	registerHealthRoutes(router, deps)
	metrics.Register(router, deps.Config.Metrics.PrometheusPath)

	if deps.UploadService != nil {
		upload.RegisterRoutes(router, deps.UploadService)
	}
	if deps.UserService != nil {
		user.RegisterRoutes(router, deps.UserService)
	}

	return router
}
