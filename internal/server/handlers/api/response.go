package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func AbortWithError(ctx *gin.Context, status int, code string, err error) {
	ctx.Abort()
	ctx.Error(err)
	ctx.PureJSON(status, APIError{
		Code:    code,
		Message: err.Error(),
	})
}

// NotFound answers every request that did not match a route.
func NotFound(ctx *gin.Context) {
	ctx.PureJSON(http.StatusNotFound, APIError{
		Code:    CodeNotFound,
		Message: "not found",
	})
}

// Recovery is a gin.RecoveryFunc that hides the panic value from the client.
func Recovery(ctx *gin.Context, recovered any) {
	AbortWithError(ctx, http.StatusInternalServerError, CodeInternalError, fmt.Errorf("internal server error"))
	ctx.Error(fmt.Errorf("panic: %v", recovered))
}
