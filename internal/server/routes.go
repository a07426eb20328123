package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/eventtickets/eventtickets/internal/server/docs"
	"github.com/eventtickets/eventtickets/internal/server/handlers/api"
	"github.com/eventtickets/eventtickets/internal/server/handlers/apidocs"
	"github.com/eventtickets/eventtickets/internal/server/handlers/system"
	"github.com/eventtickets/eventtickets/internal/server/middlewares"
)

//go:generate swag init -g routes.go -d ./,./handlers/system -o ./docs --outputTypes go

//	@title						Event Ticket Manager API
//	@version					v1
//	@description				API for managing events, tickets, and payments
//	@BasePath					/
//	@securityDefinitions.apikey	ApiKey
//	@in							header
//	@name						X-API-Key
//	@description				API Key authentication

const (
	SwaggerPath = "/swagger"
	OpenAPIPath = "/openapi/v1"
)

// SetupRoutes builds the request pipeline. Order matters:
//
//	docs gate (development) | https redirect (everything else)
//	security headers
//	cors
//	rate limiter (when configured)
//	route dispatch
func SetupRoutes(cfg *Config) http.Handler {
	r := gin.New()
	// "/health/" is not "/health", it goes to NoRoute like any other miss
	r.RedirectTrailingSlash = false

	sysH := system.New(cfg.Env)

	r.Use(middlewares.Logger("/health"))
	r.Use(gin.CustomRecovery(api.Recovery))

	if cfg.IsDevelopment() {
		slog.Info("api docs enabled", "swagger", SwaggerPath+"/index.html", "openapi", OpenAPIPath+".json")
	} else {
		slog.Info("https redirect enabled", "httpsHost", cfg.HTTP.HTTPSHost, "tlsPort", cfg.TLSPort())
		r.Use(middlewares.HTTPSRedirect(cfg.HTTP.HTTPSHost, cfg.TLSPort()))
	}

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORS(cfg.AllowedOrigins))

	if cfg.HTTP.RateLimit != "" {
		slog.Info("rate limiter enabled", "rate", cfg.HTTP.RateLimit)
		r.Use(middlewares.RateLimiter(cfg.HTTP.RateLimit))
	}

	r.GET("/health", sysH.Health)
	r.GET("/api/v1/info", sysH.Info)

	if cfg.IsDevelopment() {
		docsH := apidocs.New(docs.SwaggerInfo.InstanceName())
		r.GET(SwaggerPath+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		r.GET(OpenAPIPath+".json", docsH.JSON)
		r.GET(OpenAPIPath+".yaml", docsH.YAML)
	}

	// a method mismatch is reported as not found too
	r.NoRoute(api.NotFound)

	return r.Handler()
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
