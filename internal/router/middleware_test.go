package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cartnext/internal/constants"

	"github.com/gin-gonic/gin"
)

func setupSessionTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware())
	r.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, GetSessionID(c))
	})
	return r
}

func TestSessionMiddlewarePrefersHeader(t *testing.T) {
	r := setupSessionTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set(constants.SessionHeaderName, "sess-from-header")
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "sess-from-cookie"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() != "sess-from-header" {
		t.Fatalf("session want sess-from-header got %s", w.Body.String())
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			t.Fatal("should not reissue cookie when session already present")
		}
	}
}

func TestSessionMiddlewareFallsBackToCookie(t *testing.T) {
	r := setupSessionTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "sess-from-cookie"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() != "sess-from-cookie" {
		t.Fatalf("session want sess-from-cookie got %s", w.Body.String())
	}
}

func TestSessionMiddlewareIssuesNewSession(t *testing.T) {
	r := setupSessionTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	sessionID := w.Body.String()
	if sessionID == "" {
		t.Fatal("expected issued session id")
	}

	var issued *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			issued = cookie
		}
	}
	if issued == nil {
		t.Fatal("expected session cookie to be set")
	}
	if issued.Value != sessionID {
		t.Fatalf("cookie value want %s got %s", sessionID, issued.Value)
	}
	if issued.MaxAge != int(constants.CartTTL.Seconds()) {
		t.Fatalf("cookie max age want %d got %d", int(constants.CartTTL.Seconds()), issued.MaxAge)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, getRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set(requestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "req-123" {
		t.Fatalf("request id want req-123 got %s", w.Body.String())
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response header want req-123 got %s", w.Header().Get(requestIDHeader))
	}

	req = httptest.NewRequest(http.MethodGet, "/echo", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() == "" {
		t.Fatal("expected generated request id")
	}
}

func TestResolveAllowedOrigin(t *testing.T) {
	cases := []struct {
		name             string
		origin           string
		allowed          []string
		allowCredentials bool
		want             string
	}{
		{"wildcard no credentials", "https://a.example", []string{"*"}, false, "*"},
		{"wildcard with credentials echoes origin", "https://a.example", []string{"*"}, true, "https://a.example"},
		{"explicit match", "https://a.example", []string{"https://a.example"}, false, "https://a.example"},
		{"explicit match case insensitive", "https://A.example", []string{"https://a.example"}, false, "https://A.example"},
		{"no match", "https://b.example", []string{"https://a.example"}, false, ""},
		{"empty origin explicit list", "", []string{"https://a.example"}, false, ""},
	}
	for _, tc := range cases {
		got := resolveAllowedOrigin(tc.origin, tc.allowed, tc.allowCredentials)
		if got != tc.want {
			t.Fatalf("%s: want %q got %q", tc.name, tc.want, got)
		}
	}
}
