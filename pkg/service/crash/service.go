package crash

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/tbd54566975/buggy-website/config"
	"github.com/tbd54566975/buggy-website/pkg/service/framework"
)

// Service produces the fixed fault served by the crash route. It holds no mutable state, so a single
// instance is safe to share across concurrent requests.
type Service struct {
	config config.ServerConfig
}

func (s Service) Type() framework.Type {
	return framework.Crash
}

func (s Service) Status() framework.Status {
	if !strings.HasPrefix(s.config.CrashPath, "/") {
		return framework.Status{
			Status:  framework.StatusNotReady,
			Message: fmt.Sprintf("crash service is not ready: invalid crash path<%s>", s.config.CrashPath),
		}
	}
	return framework.Status{
		Status:  framework.StatusReady,
		Message: fmt.Sprintf("fault armed on %s", s.config.CrashPath),
	}
}

func (s Service) Config() config.ServerConfig {
	return s.config
}

// Path is the route the fault is served on.
func (s Service) Path() string {
	return s.config.CrashPath
}

func NewCrashService(config config.ServerConfig) (*Service, error) {
	service := Service{config: config}
	if !service.Status().IsReady() {
		return nil, errors.New(service.Status().Message)
	}
	return &service, nil
}

// Fault returns a freshly constructed fault payload.
func (Service) Fault() FaultResponse {
	return FaultResponse{
		Error:   FaultError,
		Message: FaultMessage,
	}
}
