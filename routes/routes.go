package routes

import (
	"net/http"

	"promotions-backend/handlers"
	"promotions-backend/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "promotions-backend/docs"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	promotionHandler := &handlers.PromotionHandler{
		Repo: repository.NewPromotionRepository(db),
	}

	// REST surface
	api := r.Group("/api")
	{
		api.GET("/", handlers.APIIndex)

		api.GET("/promotions", promotionHandler.ListPromotions)
		api.POST("/promotions", promotionHandler.CreatePromotion)
		api.GET("/promotions/:id", promotionHandler.GetPromotion)
		api.PUT("/promotions/:id", promotionHandler.UpdatePromotion)
		api.DELETE("/promotions/:id", promotionHandler.DeletePromotion)
		api.PUT("/promotions/:id/deactivate", promotionHandler.DeactivatePromotion)
	}

	// Health check
	r.GET("/health", handlers.Health)

	// Admin UI and API docs
	r.StaticFile("/", "./static/index.html")
	r.StaticFile("/ui", "./static/index.html")
	r.Static("/static", "./static")
	r.GET("/apidocs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Framework-level errors use the same JSON payload as the handlers.
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  http.StatusNotFound,
			"error":   http.StatusText(http.StatusNotFound),
			"message": "The requested URL was not found on the server.",
		})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"status":  http.StatusMethodNotAllowed,
			"error":   http.StatusText(http.StatusMethodNotAllowed),
			"message": "The method is not allowed for the requested URL.",
		})
	})
}
