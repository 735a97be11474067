package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success bodies are the bare payload; error bodies are {error, details?}.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
func ErrorDetails(c *gin.Context, status int, msg string, err error) {
	c.JSON(status, gin.H{"error": msg, "details": err.Error()})
}
