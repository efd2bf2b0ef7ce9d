package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorJSON writes the uniform error payload used across the service:
// {"status": <code>, "error": <label>, "message": <detail>}.
func errorJSON(c *gin.Context, status int, message string) {
	log.Printf("%s: %s %s: %s", http.StatusText(status), c.Request.Method, c.Request.URL.Path, message)
	c.JSON(status, gin.H{
		"status":  status,
		"error":   http.StatusText(status),
		"message": message,
	})
}

// databaseError logs the persistence failure server-side and returns a
// generic 500 payload so internals never reach the client.
func databaseError(c *gin.Context, err error) {
	log.Printf("Database error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  http.StatusInternalServerError,
		"error":   http.StatusText(http.StatusInternalServerError),
		"message": "An unexpected error occurred.",
	})
}

// requireJSON enforces the Content-Type guard on mutating endpoints.
func requireJSON(c *gin.Context) bool {
	if c.ContentType() != "application/json" {
		got := c.GetHeader("Content-Type")
		if got == "" {
			got = "none"
		}
		errorJSON(c, http.StatusUnsupportedMediaType, "Content-Type must be application/json; received "+got)
		return false
	}
	return true
}

// bindJSONObject decodes the request body into an untyped JSON object.
// Bodies that are not a JSON object (arrays, strings, malformed JSON) are
// rejected with 400 before any validation runs.
func bindJSONObject(c *gin.Context) (map[string]interface{}, bool) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid attribute: payload must be a JSON object")
		return nil, false
	}
	return data, true
}
