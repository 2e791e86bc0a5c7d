// Package framework is a minimal web framework.
package framework

import (
	"net/http"
	"os"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbd54566975/buggy-website/config"
)

type contextKey string

const (
	TraceIDKey       contextKey = "traceID"
	ShutdownErrorKey contextKey = "shutdownError"
)

func (c contextKey) String() string {
	return string(c)
}

// anyMethods is every method gin registers for Any.
var anyMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
	http.MethodHead, http.MethodOptions, http.MethodDelete, http.MethodConnect,
	http.MethodTrace,
}

// Server is the entrypoint into our application and what configures our context object for each of our http router.
// Feel free to add any configuration data/logic on this Server struct.
type Server struct {
	*http.Server
	router   *gin.Engine
	tracer   trace.Tracer
	shutdown chan os.Signal
}

type Handler func(c *gin.Context) error

// NewServer creates a Server that handles a set of routes for the application.
func NewServer(cfg config.ServerConfig, handler *gin.Engine, shutdown chan os.Signal) *Server {
	var tracer trace.Tracer
	if cfg.JaegerEnabled {
		tracer = otel.Tracer(config.ServiceName)
	}

	return &Server{
		Server: &http.Server{
			Addr:              cfg.APIHost,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		router:   handler,
		tracer:   tracer,
		shutdown: shutdown,
	}
}

// Handle sets a handler function for a given HTTP method and path pair
// to the server mux. Route specific middleware runs before the handler.
func (s *Server) Handle(method string, path string, handler Handler, middleware ...gin.HandlerFunc) {
	h := func(c *gin.Context) {
		r := c.Request

		// init a span, but only if the tracer is initialized
		if s.tracer != nil {
			ctx, span := s.tracer.Start(r.Context(), path)
			defer span.End()

			c.Request = r.WithContext(ctx)
			c.Set(TraceIDKey.String(), span.SpanContext().TraceID().String())
			span.SetAttributes(
				attribute.String("method", r.Method),
				attribute.String("path", path),
				attribute.String("host", r.Host),
				attribute.String("user-agent", r.UserAgent()),
				attribute.String("proto", r.Proto),
			)
		}

		if err := handler(c); err != nil {
			// if there's still an error at this point the handler did not respond to it
			logrus.WithError(err).Errorf("request failed")
			if IsShutdown(err) {
				logrus.WithError(err).Errorf("unsafe error, shutting down")
				_ = c.Error(err)
				s.SignalShutdown()
				return
			}
			_ = c.Error(err)
			if !c.Writer.Written() {
				RespondError(c, err)
			}
		}
	}

	handlers := append(gin.HandlersChain{}, middleware...)
	s.router.Handle(method, path, append(handlers, h)...)
}

// Any registers the handler for every HTTP method on the given path.
func (s *Server) Any(path string, handler Handler, middleware ...gin.HandlerFunc) {
	for _, method := range anyMethods {
		s.Handle(method, path, handler, middleware...)
	}
}

// SignalShutdown is used to gracefully shut down the server when an integrity issue is identified.
// A shutdown that is already pending is not signalled twice.
func (s *Server) SignalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default:
	}
}
