package resp

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Production hides raw error text on 500s. Set once at boot from APP_ENV.
var Production bool

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	log.Printf("server error: %v", err)
	msg := err.Error()
	if Production {
		msg = "internal server error"
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": msg})
}
