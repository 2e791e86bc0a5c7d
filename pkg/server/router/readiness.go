package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbd54566975/buggy-website/pkg/server/framework"
	svcframework "github.com/tbd54566975/buggy-website/pkg/service/framework"
)

type GetReadinessResponse struct {
	Status          svcframework.Status                       `json:"status"`
	ServiceStatuses map[svcframework.Type]svcframework.Status `json:"serviceStatuses"`
}

// Readiness godoc
//
// @Summary     Readiness
// @Description Reports the status of every registered service. Always answers with a 200.
// @Tags        Readiness
// @Produce     json
// @Success     200 {object} GetReadinessResponse
// @Router      /readiness [get]
func Readiness(services []svcframework.Service) framework.Handler {
	return func(c *gin.Context) error {
		numServices := len(services)
		readyServices := 0
		statuses := make(map[svcframework.Type]svcframework.Status, numServices)
		for _, s := range services {
			status := s.Status()
			statuses[s.Type()] = status
			if status.IsReady() {
				readyServices++
			}
		}

		status := svcframework.Status{
			Status:  svcframework.StatusReady,
			Message: "all services ready",
		}
		if readyServices < numServices {
			status = svcframework.Status{
				Status:  svcframework.StatusNotReady,
				Message: fmt.Sprintf("out of [%d] services, [%d] are ready", numServices, readyServices),
			}
		}

		framework.Respond(c, GetReadinessResponse{Status: status, ServiceStatuses: statuses}, http.StatusOK)
		return nil
	}
}
