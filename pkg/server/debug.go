package server

import (
	"expvar"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tbd54566975/buggy-website/config"
)

const (
	DebugVarsPath = "/debug/vars"
	MetricsPath   = "/metrics"
)

// NewDebugServer returns the listener for process introspection: expvar counters and Prometheus
// metrics.
// Returns nil when no debug host is configured.
func NewDebugServer(cfg config.ServerConfig, gatherer prometheus.Gatherer) *http.Server {
	if cfg.DebugHost == "" {
		return nil
	}

	return &http.Server{
		Addr:              cfg.DebugHost,
		Handler:           DebugMux(gatherer),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
}

// DebugMux routes the debug endpoints.
func DebugMux(gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(DebugVarsPath, expvar.Handler())
	mux.Handle(MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}
