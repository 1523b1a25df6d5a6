package presentation

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"agoralab-core/internal/config"
	"agoralab-core/internal/middleware"
	"agoralab-core/internal/presentation/handlers"
)

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Health      *handlers.HealthHandler
	Repository  *handlers.RepositoryHandler
	Post        *handlers.PostHandler
	Diagnostics *handlers.DiagnosticsHandler
}

// NewRouter builds the Gin engine serving the public API under /api/v1
func NewRouter(cfg *config.CORSConfig, h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(cors.New(corsConfig(cfg)))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Health)
		v1.GET("/repositories", h.Repository.GetRepositories)
		v1.GET("/posts", h.Post.GetPosts)
		v1.GET("/diagnostics/load-cycles", h.Diagnostics.GetLoadCycles)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func corsConfig(cfg *config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}

	if len(cfg.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.AllowedOrigins
	return c
}
