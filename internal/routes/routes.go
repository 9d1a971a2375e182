package routes

import (
	"net/http"

	"github.com/shivharejitendra/visora/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ImageHandler.RegisterRoutes(api)
	}

	// Корневой probe, как у оригинального API
	ginRouter.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API working")
	})
}
