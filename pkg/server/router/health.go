package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbd54566975/buggy-website/pkg/server/framework"
)

const (
	HealthOK string = "OK"
)

type GetHealthCheckResponse struct {
	// Status is always equal to `OK`.
	Status string `json:"status"`
}

// Health godoc
//
// @Summary     Health Check
// @Description Reports that the process is up. It stays healthy while the crash route fails.
// @Tags        HealthCheck
// @Produce     json
// @Success     200 {object} GetHealthCheckResponse
// @Router      /health [get]
func Health(c *gin.Context) error {
	framework.Respond(c, GetHealthCheckResponse{Status: HealthOK}, http.StatusOK)
	return nil
}
