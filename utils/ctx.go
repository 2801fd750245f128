package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the admin id AuthMiddleware stored on the context.
// Zero means the request carried no valid token.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint("userId")
}

// CurrentRole reads the role claim AuthMiddleware stored on the context.
func CurrentRole(c *gin.Context) string {
	return c.GetString("role")
}
