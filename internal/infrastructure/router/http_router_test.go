package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-audit-service/pkg/logger"
)

type pingRoutes struct{}

func (pingRoutes) Register(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
}

func TestNewHTTPRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "router_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	h := NewHTTPRouter(reg, logger.NewNopLogger(), pingRoutes{})

	for _, tc := range []struct {
		path string
		body string
	}{
		{"/health", "Healthy"},
		{"/ping", "pong"},
		{"/metrics", "router_test_total 1"},
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.Equal(t, http.StatusOK, rec.Code, tc.path)
		assert.True(t, strings.Contains(rec.Body.String(), tc.body), tc.path)
	}
}

func TestNewHTTPRouterUnknownPath(t *testing.T) {
	h := NewHTTPRouter(prometheus.NewRegistry(), logger.NewNopLogger())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
