package service

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tbd54566975/buggy-website/config"
	"github.com/tbd54566975/buggy-website/pkg/service/crash"
	"github.com/tbd54566975/buggy-website/pkg/service/framework"
)

// BuggyWebsite represents all services and their dependencies independent of transport
type BuggyWebsite struct {
	Crash *crash.Service
}

// InstantiateService creates all services independent of transport.
func InstantiateService(config config.ServerConfig) (*BuggyWebsite, error) {
	crashService, err := crash.NewCrashService(config)
	if err != nil {
		logrus.WithError(err).Error("could not instantiate the crash service")
		return nil, errors.Wrap(err, "could not instantiate the crash service")
	}

	return &BuggyWebsite{Crash: crashService}, nil
}

// GetServices returns all services
func (s *BuggyWebsite) GetServices() []framework.Service {
	return []framework.Service{s.Crash}
}
