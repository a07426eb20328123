package middlewares

import (
	"github.com/gin-gonic/gin"
)

const ContentSecurityPolicy = "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; font-src 'self'; connect-src 'self';"

// securityHeaders are written on every response, in this order.
var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"X-XSS-Protection", "1; mode=block"},
	{"Referrer-Policy", "no-referrer"},
	{"Content-Security-Policy", ContentSecurityPolicy},
}

// SecurityHeaders appends the fixed security headers before the handler writes.
// Values already present under the same name are kept; ours are added next to them.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for _, kv := range securityHeaders {
			h.Add(kv[0], kv[1])
		}
		c.Next()
	}
}
