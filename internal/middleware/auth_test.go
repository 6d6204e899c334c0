package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"relationship-os/config"
	"relationship-os/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestMiddleware(adminKey string) Middleware {
	cfg := &config.Config{}
	cfg.Admin.APIKey = adminKey
	cfg.Beta.CacheTTL = "5m"
	return New(&mockLogger{}, cfg, nil)
}

func TestAdminKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(mw Middleware) (*gin.Engine, *model.Scope) {
		var got model.Scope
		r := gin.New()
		r.GET("/admin", mw.AdminKey(), func(c *gin.Context) {
			sc, _ := GetScope(c)
			got = sc
			c.Status(http.StatusOK)
		})
		return r, &got
	}

	t.Run("Correct Key", func(t *testing.T) {
		r, got := newRouter(newTestMiddleware("secret-key"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(HeaderAdminKey, "secret-key")
		req.Header.Set(HeaderUserID, "u1")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got.Role != model.RoleAdmin || got.UserID != "u1" {
			t.Errorf("expected admin scope, got %+v", got)
		}
	})

	t.Run("Wrong Key", func(t *testing.T) {
		r, _ := newRouter(newTestMiddleware("secret-key"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(HeaderAdminKey, "wrong-key")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		r, _ := newRouter(newTestMiddleware("secret-key"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Unconfigured Key Rejects Everything", func(t *testing.T) {
		r, _ := newRouter(newTestMiddleware(""))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(HeaderAdminKey, "")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}
