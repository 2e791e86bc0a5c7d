// Package server contains the full set of handler functions and routes
// supported by the http api
package server

import (
	"net/http"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tbd54566975/buggy-website/config"
	"github.com/tbd54566975/buggy-website/pkg/server/framework"
	"github.com/tbd54566975/buggy-website/pkg/server/middleware"
	"github.com/tbd54566975/buggy-website/pkg/server/router"
	"github.com/tbd54566975/buggy-website/pkg/service"
)

const (
	HealthPrefix    = "/health"
	ReadinessPrefix = "/readiness"
	SwaggerPrefix   = "/swagger/*any"
)

// CrashServer exposes all dependencies needed to run a http server and all its services
type CrashServer struct {
	*config.ServerConfig
	*service.BuggyWebsite
	*framework.Server
}

// NewCrashServer does two things: instantiates all service and registers their HTTP bindings
func NewCrashServer(shutdown chan os.Signal, cfg config.CrashServiceConfig, reg prometheus.Registerer) (*CrashServer, error) {
	if err := middleware.RegisterMetrics(reg); err != nil {
		return nil, errors.Wrap(err, "registering request metrics")
	}

	// creates an HTTP server from the framework, and wrap it to extend it for the service
	engine := setUpEngine(cfg.Server, shutdown)
	httpServer := framework.NewServer(cfg.Server, engine, shutdown)
	website, err := service.InstantiateService(cfg.Server)
	if err != nil {
		return nil, errors.Wrap(err, "unable to instantiate buggy website service")
	}

	// service-level routers
	httpServer.Handle(http.MethodGet, HealthPrefix, router.Health)
	httpServer.Handle(http.MethodGet, ReadinessPrefix, router.Readiness(website.GetServices()))
	httpServer.Handle(http.MethodGet, SwaggerPrefix, router.Swagger)

	if err = CrashAPI(httpServer, website); err != nil {
		return nil, errors.Wrap(err, "unable to instantiate Crash API")
	}

	return &CrashServer{
		Server:       httpServer,
		BuggyWebsite: website,
		ServerConfig: &cfg.Server,
	}, nil
}

// setUpEngine creates the gin engine and sets up the middleware based on config
func setUpEngine(cfg config.ServerConfig, shutdown chan os.Signal) *gin.Engine {
	switch cfg.Environment {
	case config.EnvironmentDev:
		gin.SetMode(gin.DebugMode)
	case config.EnvironmentTest:
		gin.SetMode(gin.TestMode)
	case config.EnvironmentProd:
		gin.SetMode(gin.ReleaseMode)
	}

	middlewares := gin.HandlersChain{gin.Recovery()}
	if cfg.JaegerEnabled {
		middlewares = append(middlewares, otelgin.Middleware(config.ServiceName))
	}
	middlewares = append(middlewares,
		middleware.RequestID(),
		middleware.Logger(logrus.StandardLogger(), clock.New()),
		middleware.Errors(shutdown),
		middleware.Metrics(),
	)
	if cfg.EnableAllowAllCORS {
		middlewares = append(middlewares, middleware.CORS())
	}

	// set up engine and middleware
	engine := gin.New()
	engine.Use(middlewares...)
	engine.NoRoute(framework.NotFound)
	engine.HandleMethodNotAllowed = false
	return engine
}

// CrashAPI registers the crash route for every HTTP method
func CrashAPI(s *framework.Server, website *service.BuggyWebsite) error {
	crashRouter, err := router.NewCrashRouter(website.Crash)
	if err != nil {
		return errors.Wrap(err, "creating crash router")
	}

	s.Any(website.Crash.Path(), crashRouter.Crash)
	return nil
}
