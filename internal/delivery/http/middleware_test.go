package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func corsTestRouter(allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(CORSMiddleware(allowedOrigins))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("allows exact origin match", func(t *testing.T) {
		router := corsTestRouter([]string{"http://localhost:8081"})

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:8081")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8081" {
			t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "http://localhost:8081")
		}
	})

	t.Run("allows wildcard prefix match", func(t *testing.T) {
		router := corsTestRouter([]string{"http://localhost:*"})

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:19006")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:19006" {
			t.Errorf("Access-Control-Allow-Origin = %q, want origin echoed", got)
		}
	})

	t.Run("ignores disallowed origin", func(t *testing.T) {
		router := corsTestRouter([]string{"http://localhost:8081"})

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, request itself should still proceed", w.Code)
		}
	})

	t.Run("handles preflight request", func(t *testing.T) {
		router := corsTestRouter([]string{"http://localhost:8081"})

		req, _ := http.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:8081")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
		}
	})
}

func TestIsAllowedOrigin(t *testing.T) {
	testCases := []struct {
		name    string
		origin  string
		allowed []string
		want    bool
	}{
		{"exact match", "http://localhost:8081", []string{"http://localhost:8081"}, true},
		{"wildcard match", "http://localhost:19006", []string{"http://localhost:*"}, true},
		{"no match", "https://evil.example", []string{"http://localhost:8081"}, false},
		{"empty origin", "", []string{"http://localhost:8081"}, false},
		{"empty allowlist", "http://localhost:8081", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isAllowedOrigin(tc.origin, tc.allowed); got != tc.want {
				t.Errorf("isAllowedOrigin(%q, %v) = %v, want %v", tc.origin, tc.allowed, got, tc.want)
			}
		})
	}
}
