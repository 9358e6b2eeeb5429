package handlers

import (
	"energyai/internal/logger"
	"energyai/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Current weather is public; it carries no user data.
	router.GET("/weather", h.getWeather)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// WebSocket analytics stream (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerPredictionRoutes(api)
		h.registerAnalyticsRoutes(api)
		h.registerSettingsRoutes(api)
		api.PUT("/profile", h.updateProfile)
		api.GET("/export/csv", h.exportCSV)
	}
}

func (h *Handler) registerPredictionRoutes(api *gin.RouterGroup) {
	api.POST("/predict", h.predict)
	predictions := api.Group("/predictions")
	{
		predictions.POST("", h.storePrediction)
		predictions.GET("", h.listPredictions)
	}
}

func (h *Handler) registerAnalyticsRoutes(api *gin.RouterGroup) {
	analytics := api.Group("/analytics")
	{
		analytics.GET("/insights", h.getInsights)
		analytics.GET("/efficiency", h.getEfficiency)
	}
}

func (h *Handler) registerSettingsRoutes(api *gin.RouterGroup) {
	settings := api.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}
