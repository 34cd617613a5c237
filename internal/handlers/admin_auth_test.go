package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/middleware"
)

func testServer() *Server {
	return &Server{
		Cfg: &config.Config{Timezone: time.UTC},
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSetAuthCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	setAuthCookies(rec, "access-token", "refresh-token", 15*time.Minute, 30*24*time.Hour, true)

	cookies := rec.Result().Cookies()
	access := cookieByName(cookies, middleware.AccessCookieName)
	if access == nil {
		t.Fatal("access cookie not set")
	}
	if access.Value != "access-token" || access.Path != "/" {
		t.Fatalf("access cookie = %+v", access)
	}
	if !access.HttpOnly || !access.Secure {
		t.Fatal("access cookie must be HttpOnly and Secure")
	}
	if access.MaxAge != int((15 * time.Minute).Seconds()) {
		t.Fatalf("access MaxAge = %d", access.MaxAge)
	}

	refresh := cookieByName(cookies, refreshCookieName)
	if refresh == nil {
		t.Fatal("refresh cookie not set")
	}
	if refresh.Path != "/api/v1/admin" {
		t.Fatalf("refresh path = %q, must be scoped to the admin tree", refresh.Path)
	}
}

func TestClearAuthCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	clearAuthCookies(rec, false)

	for _, name := range []string{middleware.AccessCookieName, refreshCookieName} {
		c := cookieByName(rec.Result().Cookies(), name)
		if c == nil {
			t.Fatalf("%s cookie not cleared", name)
		}
		if c.Value != "" || c.MaxAge != -1 {
			t.Fatalf("%s cookie not expired: %+v", name, c)
		}
	}
}

func TestAdminLogout(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/logout", nil)
	rec := httptest.NewRecorder()

	s.AdminLogout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if c := cookieByName(rec.Result().Cookies(), middleware.AccessCookieName); c == nil || c.MaxAge != -1 {
		t.Fatal("logout must expire the access cookie")
	}
}

func TestAdminRefreshWithoutToken(t *testing.T) {
	s := testServer()
	s.JWT = nil

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth/refresh", nil)
	rec := httptest.NewRecorder()
	s.AdminRefresh(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 when sessions are not configured", rec.Code)
	}
}
