package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const wildcardOrigin = "*"

// CORS returns a middleware that handles Cross-Origin Resource Sharing (CORS).
// A "*" entry in origins allows every origin. Preflight OPTIONS requests to any
// path are answered with 204 and no body.
func CORS(origins []string) gin.HandlerFunc {
	allowAll := false
	allowedOrigins := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == wildcardOrigin {
			allowAll = true
		}
		allowedOrigins[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		switch {
		case allowAll:
			c.Header("Access-Control-Allow-Origin", wildcardOrigin)
		case origin != "" && allowedOrigins[origin]:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight request
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
