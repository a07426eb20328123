package middlewares

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

var excludedExtensions = []string{
	".png", ".gif", ".jpeg", ".jpg", ".webp", ".ico",
	".woff", ".woff2", ".ttf", ".otf",
}

// GZIP compresses responses for clients that accept it, except already compressed assets.
func GZIP(excludedPaths ...string) gin.HandlerFunc {
	return gzip.Gzip(
		gzip.BestSpeed,
		gzip.WithExcludedPaths(excludedPaths),
		gzip.WithExcludedExtensions(excludedExtensions),
	)
}
