package system

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	env string
	now func() time.Time
}

func New(env string) *SystemHandler {
	return &SystemHandler{
		env: env,
		now: time.Now,
	}
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Reports that the API process is up, with the current UTC time
//	@Tags			System
//	@ID				HealthCheck
//	@Produce		json
//	@Success		200	{object}	HealthStatus
//	@Router			/health [get]
func (h *SystemHandler) Health(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, HealthStatus{
		Status:    StatusHealthy,
		Timestamp: h.now().UTC(),
	})
}

// Info godoc
//
//	@Summary		API information
//	@Description	Returns the API name, version and the environment the process runs in
//	@Tags			System
//	@ID				GetApiInfo
//	@Produce		json
//	@Success		200	{object}	APIInfo
//	@Router			/api/v1/info [get]
func (h *SystemHandler) Info(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, APIInfo{
		Name:        APIName,
		Version:     APIVersion,
		Environment: h.env,
	})
}
