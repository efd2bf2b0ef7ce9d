package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary  Liveness check
// @Tags     service
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
//
// Kept independent of the database so liveness/readiness probes stay stable.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// APIIndex godoc
// @Summary  API metadata
// @Tags     service
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   / [get]
func APIIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Promotions Service",
		"version":     "1.0.0",
		"description": "RESTful service for managing promotions",
		"paths": gin.H{
			"promotions": "/api/promotions",
		},
	})
}
