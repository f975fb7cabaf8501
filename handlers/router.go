package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the API, the swagger UI and the frontend bundle.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())
	r.Use(CORS())

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", h.HealthHandler)

	api := r.Group("/api/v1")
	api.GET("/gold/ticker/:symbol", h.TickerHandler)
	api.POST("/upload-csv", h.UploadCSVHandler)
	api.POST("/chat", h.ChatHandler)

	h.registerFrontend(r)

	return r
}
