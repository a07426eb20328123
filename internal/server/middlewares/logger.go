package middlewares

import (
	"log/slog"
	"net/http"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gin-gonic/gin"
	slogGin "github.com/samber/slog-gin"
)

// Logger writes one access log line per request under the "http" group.
// A 200 on one of quietPaths is dropped, so container health checks polling
// every few seconds do not drown the log. Failures on those paths are still logged.
func Logger(quietPaths ...string) gin.HandlerFunc {
	httpLogger := slog.Default().WithGroup("http")
	quiet := mapset.NewThreadUnsafeSet(quietPaths...)

	return slogGin.NewWithConfig(httpLogger, slogGin.Config{
		DefaultLevel:      slog.LevelInfo,
		ClientErrorLevel:  slog.LevelWarn,
		ServerErrorLevel:  slog.LevelError,
		WithUserAgent:     true,
		WithRequestID:     true,
		WithRequestHeader: true,
		WithTraceID:       true,
		WithSpanID:        true,
		Filters: []slogGin.Filter{
			slogGin.Ignore(func(c *gin.Context) bool {
				return c.Writer.Status() == http.StatusOK && quiet.Contains(c.Request.URL.Path)
			}),
		},
	})
}
