package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/handlers"
)

// RegisterRoutes wires every handler under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
		appHandlers.ResultHandler.RegisterRoutes(api)
	}

	ginRouter.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Endpoint not found",
			"path":    c.Request.URL.Path,
		})
	})
}
