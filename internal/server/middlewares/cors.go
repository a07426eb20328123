package middlewares

import (
	"net/http"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var anyMethod = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// CORS grants cross-origin access to the allow-listed origins only.
//
// Requests from any other origin get no Access-Control-* headers but are still
// served; the browser is the one that blocks the read. Allowed origins may use any
// method, any header and credentials.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := mapset.NewSet(allowedOrigins...)

	corsHandler := cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     anyMethod,
		AllowCredentials: true,
	})

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" || !allowed.Contains(origin) {
			c.Next()
			return
		}

		// gin-contrib/cors can only echo a fixed header list, reflect what the preflight asks for
		if c.Request.Method == http.MethodOptions {
			if reqHeaders := c.Request.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				c.Header("Access-Control-Allow-Headers", reqHeaders)
			}
		}

		corsHandler(c)
	}
}
