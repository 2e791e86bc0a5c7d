package middleware

import (
	"os"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbd54566975/buggy-website/config"
	"github.com/tbd54566975/buggy-website/pkg/server/framework"
)

// Errors handles errors coming out of the call stack. Every recorded error is logged against the
// request's trace id. A shutdown error is stored on the context and signals the server to stop.
// Errors never rewrite a response that a handler already sent.
func Errors(shutdown chan os.Signal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		errs := c.Errors.ByType(gin.ErrorTypeAny)
		if len(errs) == 0 {
			return
		}

		tracer := trace.SpanFromContext(c.Request.Context()).TracerProvider().Tracer(config.ServiceName)
		_, span := tracer.Start(c.Request.Context(), "service.middleware.errors")
		defer span.End()

		for _, e := range errs {
			if framework.IsShutdown(e.Err) {
				c.Set(framework.ShutdownErrorKey.String(), e.Err)
				logrus.WithError(e.Err).Error("shutdown error received")
				select {
				case shutdown <- syscall.SIGTERM:
				default:
				}
				return
			}
		}

		logrus.WithFields(logrus.Fields{
			"traceID": span.SpanContext().TraceID().String(),
			"path":    c.FullPath(),
		}).Errorf("request errors: %v", errs.Errors())
		if !c.Writer.Written() {
			framework.RespondError(c, errs.Last().Err)
		}
	}
}
