package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbd54566975/buggy-website/pkg/server/framework"
	"github.com/tbd54566975/buggy-website/pkg/service/crash"
	svcframework "github.com/tbd54566975/buggy-website/pkg/service/framework"
)

// CrashRouter serves the fault produced by the crash service.
type CrashRouter struct {
	service *crash.Service
}

func NewCrashRouter(s svcframework.Service) (*CrashRouter, error) {
	if s == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}
	crashService, ok := s.(*crash.Service)
	if !ok {
		return nil, fmt.Errorf("could not create crash router with service type: %s", s.Type())
	}
	return &CrashRouter{service: crashService}, nil
}

// CrashResponse is the body of every crash response.
type CrashResponse = crash.FaultResponse

// Crash godoc
//
// @Summary     Crash
// @Description Always fails with a 500 and a fixed body so an uptime agent has a known outage to detect.
// @Description The request method, headers, query and body are ignored.
// @Tags        CrashAPI
// @Produce     json
// @Failure     500 {object} CrashResponse
// @Router      /api/crash [get]
// @Router      /api/crash [post]
// @Router      /api/crash [put]
// @Router      /api/crash [patch]
// @Router      /api/crash [delete]
func (cr CrashRouter) Crash(c *gin.Context) error {
	framework.Respond(c, cr.service.Fault(), http.StatusInternalServerError)
	return nil
}
