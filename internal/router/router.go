package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logistics/internal/config"
	"logistics/internal/handler"
	"logistics/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	log *zap.Logger,
	tariffH *handler.TariffHandler,
	healthH *handler.HealthHandler,
	infoH *handler.InfoHandler,
) *gin.Engine {
	r := gin.New()

	// Routes are literal; anything else, including a wrong method or a
	// trailing slash, falls through to NoRoute.
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	r.GET("/", infoH.Welcome)
	r.GET("/health", healthH.Health)
	r.GET("/tariffs", tariffH.List)
	r.POST("/calculate", tariffH.Calculate)

	r.NoRoute(infoH.NotFound)

	return r
}
