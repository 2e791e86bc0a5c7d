package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbd54566975/buggy-website/config"
	"github.com/tbd54566975/buggy-website/pkg/server/framework"
	"github.com/tbd54566975/buggy-website/pkg/server/middleware"
	"github.com/tbd54566975/buggy-website/pkg/server/router"
	"github.com/tbd54566975/buggy-website/pkg/service/crash"
	svcframework "github.com/tbd54566975/buggy-website/pkg/service/framework"
)

const expectedCrashBody = `{"error":"Website intentionally down for Portia Uptime Agent testing","message":"This error is expected - Portia should detect and fix this"}`

func newTestServer(t *testing.T) *CrashServer {
	shutdown := make(chan os.Signal, 1)
	serviceConfig, err := config.LoadConfig("")
	require.NoError(t, err)
	serviceConfig.Server.Environment = config.EnvironmentTest

	server, err := NewCrashServer(shutdown, *serviceConfig, prometheus.NewRegistry())
	require.NoError(t, err)
	require.NotEmpty(t, server)
	return server
}

func serve(server *CrashServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)
	return w
}

func TestCrashAPI(t *testing.T) {
	server := newTestServer(t)

	t.Run("GET with empty body", func(tt *testing.T) {
		w := serve(server, httptest.NewRequest(http.MethodGet, "https://buggy-website.com/api/crash", nil))

		assert.Equal(tt, http.StatusInternalServerError, w.Code)
		assert.True(tt, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
		assert.Equal(tt, expectedCrashBody, w.Body.String())
	})

	t.Run("POST with arbitrary JSON body", func(tt *testing.T) {
		body := bytes.NewBufferString(`{"fix": true, "nested": {"list": [1, 2, 3]}}`)
		req := httptest.NewRequest(http.MethodPost, "https://buggy-website.com/api/crash", body)
		req.Header.Set("Content-Type", "application/json")
		w := serve(server, req)

		assert.Equal(tt, http.StatusInternalServerError, w.Code)
		assert.Equal(tt, expectedCrashBody, w.Body.String())
	})

	t.Run("every method fails the same way", func(tt *testing.T) {
		methods := []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
			http.MethodHead, http.MethodOptions, http.MethodConnect, http.MethodTrace,
		}
		for _, method := range methods {
			// CONNECT only accepts an authority or a bare path as its target
			w := serve(server, httptest.NewRequest(method, "/api/crash", nil))
			assert.Equal(tt, http.StatusInternalServerError, w.Code, method)
			if method != http.MethodHead {
				assert.Equal(tt, expectedCrashBody, w.Body.String(), method)
			}
		}
	})

	t.Run("request content is ignored", func(tt *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "https://buggy-website.com/api/crash?status=200&fixed=true", strings.NewReader("not json at all"))
		req.Header.Set("Accept", "text/html")
		req.Header.Set("Authorization", "Bearer token")
		req.Header.Set("X-Portia-Fix", "applied")
		w := serve(server, req)

		assert.Equal(tt, http.StatusInternalServerError, w.Code)
		assert.Equal(tt, expectedCrashBody, w.Body.String())
	})

	t.Run("body parses to the fixed object", func(tt *testing.T) {
		w := serve(server, httptest.NewRequest(http.MethodGet, "https://buggy-website.com/api/crash", nil))

		var resp router.CrashResponse
		require.NoError(tt, json.NewDecoder(w.Body).Decode(&resp))
		want := crash.FaultResponse{Error: crash.FaultError, Message: crash.FaultMessage}
		if diff := cmp.Diff(want, resp); diff != "" {
			tt.Errorf("crash body mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("repeated calls are byte identical", func(tt *testing.T) {
		first := serve(server, httptest.NewRequest(http.MethodGet, "https://buggy-website.com/api/crash", nil))
		for i := 0; i < 10; i++ {
			w := serve(server, httptest.NewRequest(http.MethodGet, "https://buggy-website.com/api/crash", nil))
			assert.Equal(tt, first.Code, w.Code)
			assert.Equal(tt, first.Body.Bytes(), w.Body.Bytes())
		}
	})

	t.Run("concurrent calls are independent", func(tt *testing.T) {
		var wg sync.WaitGroup
		bodies := make([]string, 32)
		codes := make([]int, 32)
		for i := range bodies {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := serve(server, httptest.NewRequest(http.MethodPost, "https://buggy-website.com/api/crash", strings.NewReader("{}")))
				codes[i] = w.Code
				bodies[i] = w.Body.String()
			}(i)
		}
		wg.Wait()

		for i := range bodies {
			assert.Equal(tt, http.StatusInternalServerError, codes[i])
			assert.Equal(tt, expectedCrashBody, bodies[i])
		}
	})

	t.Run("request id is echoed", func(tt *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "https://buggy-website.com/api/crash", nil)
		req.Header.Set(middleware.RequestIDHeader, "uptime-check-1")
		w := serve(server, req)

		assert.Equal(tt, http.StatusInternalServerError, w.Code)
		assert.Equal(tt, "uptime-check-1", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(tt, expectedCrashBody, w.Body.String())
	})
}

func TestCrashAPICustomPath(t *testing.T) {
	shutdown := make(chan os.Signal, 1)
	serviceConfig, err := config.LoadConfig("")
	require.NoError(t, err)
	serviceConfig.Server.Environment = config.EnvironmentTest
	serviceConfig.Server.CrashPath = "/down"

	server, err := NewCrashServer(shutdown, *serviceConfig, prometheus.NewRegistry())
	require.NoError(t, err)

	w := serve(server, httptest.NewRequest(http.MethodGet, "https://buggy-website.com/down", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, expectedCrashBody, w.Body.String())

	w = serve(server, httptest.NewRequest(http.MethodGet, "https://buggy-website.com/api/crash", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrashAPIWithAllowAllCORS(t *testing.T) {
	shutdown := make(chan os.Signal, 1)
	serviceConfig, err := config.LoadConfig("")
	require.NoError(t, err)
	serviceConfig.Server.Environment = config.EnvironmentTest
	serviceConfig.Server.EnableAllowAllCORS = true

	server, err := NewCrashServer(shutdown, *serviceConfig, prometheus.NewRegistry())
	require.NoError(t, err)

	t.Run("preflight is answered before the crash handler", func(tt *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "https://buggy-website.com/api/crash", nil)
		req.Header.Set("Origin", "https://uptime-agent.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := serve(server, req)

		assert.Equal(tt, http.StatusNoContent, w.Code)
		assert.Empty(tt, w.Body.String())
		assert.Equal(tt, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("cross origin GET still fails", func(tt *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "https://buggy-website.com/api/crash", nil)
		req.Header.Set("Origin", "https://uptime-agent.example")
		w := serve(server, req)

		assert.Equal(tt, http.StatusInternalServerError, w.Code)
		assert.Equal(tt, expectedCrashBody, w.Body.String())
		assert.Equal(tt, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestNewCrashServerBadConfig(t *testing.T) {
	shutdown := make(chan os.Signal, 1)
	serviceConfig, err := config.LoadConfig("")
	require.NoError(t, err)
	serviceConfig.Server.Environment = config.EnvironmentTest
	serviceConfig.Server.CrashPath = "no-leading-slash"

	server, err := NewCrashServer(shutdown, *serviceConfig, prometheus.NewRegistry())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unable to instantiate buggy website service")
	assert.Nil(t, server)
}

func TestHealthCheckAPI(t *testing.T) {
	server := newTestServer(t)

	w := serve(server, httptest.NewRequest(http.MethodGet, "https://buggy-website.com/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp router.GetHealthCheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, router.HealthOK, resp.Status)
}

func TestReadinessAPI(t *testing.T) {
	server := newTestServer(t)

	w := serve(server, httptest.NewRequest(http.MethodGet, "https://buggy-website.com/readiness", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp router.GetReadinessResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, svcframework.StatusReady, resp.Status.Status)
	require.Len(t, resp.ServiceStatuses, 1)
	assert.Equal(t, svcframework.StatusReady, resp.ServiceStatuses[svcframework.Crash].Status)
}

func TestSwaggerAPI(t *testing.T) {
	server := newTestServer(t)

	w := serve(server, httptest.NewRequest(http.MethodGet, "https://buggy-website.com/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/crash")
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer(t)

	w := serve(server, httptest.NewRequest(http.MethodGet, "https://buggy-website.com/api/other", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp framework.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "no route for GET /api/other", resp.Error)
}
