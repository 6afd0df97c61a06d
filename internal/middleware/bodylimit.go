package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps request bodies at maxMB megabytes. Catalog tiles carry
// embedded base64 images, so the cap is generous (50MB by default).
func BodyLimit(maxMB int64) gin.HandlerFunc {
	maxBytes := maxMB << 20
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
