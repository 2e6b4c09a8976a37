package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/solar-quote/internal/config"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/mock"
	"github.com/MKhiriev/solar-quote/internal/service"
	"github.com/MKhiriev/solar-quote/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_RegisteredRoutes(t *testing.T) {
	env := newTestEnv(t)

	want := map[string]string{
		"/api/version/":            http.MethodGet,
		"/api/address/suggestions": http.MethodGet,
		"/api/address/validate":    http.MethodPost,
		"/api/address/fallback":    http.MethodGet,
		"/api/crm/status":          http.MethodGet,
		"/api/crm/login-url":       http.MethodGet,
		"/api/quotes":              http.MethodPost,
	}

	got := map[string]string{}
	err := chi.Walk(env.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[route] = method
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInit_UnknownRouteIs404(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodGet, "/api/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodIs404(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodPost, "/api/version/"},
		{http.MethodDelete, "/api/quotes"},
		{http.MethodGet, "/api/address/validate"},
	} {
		rr := env.do(tc.method, tc.target, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.target)
	}
}

func TestInit_EveryResponseCarriesTraceID(t *testing.T) {
	env := newTestEnv(t)
	env.quotes.EXPECT().TestConnection(gomock.Any()).Return(true)

	rr := env.do(http.MethodGet, "/api/crm/status", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_GzipNegotiated(t *testing.T) {
	env := newTestEnv(t)
	env.quotes.EXPECT().TestConnection(gomock.Any()).Return(false)

	req := httptest.NewRequest(http.MethodGet, "/api/crm/status", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"connected":false}`, gunzip(t, rr.Body))
}

func TestInit_RequestTimeoutReachesServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mock.NewMockQuoteService(ctrl)
	router := NewHandler(&service.Services{QuoteService: quotes}, config.Server{RequestTimeout: time.Second}, logger.Nop()).Init()

	quotes.EXPECT().TestConnection(gomock.Any()).DoAndReturn(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
		return true
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/crm/status", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var status models.ConnectionStatus
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.True(t, status.Connected)
}

func TestInit_PanicsAreRecovered(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(context.Context) string {
		panic("version lookup exploded")
	})

	rr := env.do(http.MethodGet, "/api/version/", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
