package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/api/handler"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/jwt"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 5000, MaxBodyBytes: 1 << 20},
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-for-unit-testing",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
			LoginRateLimit:  20,
		},
	}
}

func TestSetup_RoutesRegistered(t *testing.T) {
	cfg := testConfig()
	r := Setup(cfg, handler.NewHandler(&service.Service{}), jwt.NewManager(&cfg.Auth), nil, nil, zap.NewNop())

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, key := range []string{
		"POST /api/v1/auth/signup",
		"POST /api/v1/auth/login",
		"GET /api/v1/availability",
		"GET /api/v1/lawyers/:id/availability",
		"POST /api/v1/bookings/:id/approve",
		"DELETE /api/v1/appointments/:id",
		"PATCH /api/v1/courtrooms/:id",
		"GET /api/v1/reports/bookings",
		"GET /api/v1/calendar.ics",
		"GET /health",
	} {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}


func TestSetup_ProtectedRoutesRequireToken(t *testing.T) {
	cfg := testConfig()
	r := Setup(cfg, handler.NewHandler(&service.Service{}), jwt.NewManager(&cfg.Auth), nil, nil, zap.NewNop())

	for _, path := range []string{"/api/v1/bookings", "/api/v1/cases", "/api/v1/calendar.ics", "/api/v1/users"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s: expected 401, got %d", path, w.Code)
		}
	}
}

func TestSetup_RoleGuard(t *testing.T) {
	cfg := testConfig()
	mgr := jwt.NewManager(&cfg.Auth)
	r := Setup(cfg, handler.NewHandler(&service.Service{}), mgr, nil, nil, zap.NewNop())
	tok, _ := mgr.GenerateAccessToken("client-1", "client")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/b1/approve", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("client approving a booking: expected 403, got %d", w.Code)
	}
}
