package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/auth"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/config"
)

func testRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	secured := r.Group("/")
	secured.Use(AuthMiddleware(cfg))
	secured.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID).(uint),
			"role":    c.GetString(ContextUserRole),
		})
	})

	admin := secured.Group("/")
	admin.Use(RequireRole("admin"))
	admin.GET("/admin-only", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := testRouter(cfg)

	if w := doRequest(r, "/whoami", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := testRouter(cfg)

	token, err := auth.GenerateToken(7, "client", cfg.JWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if w := doRequest(r, "/whoami", token); w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := testRouter(cfg)

	token, err := auth.GenerateToken(7, "client", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if w := doRequest(r, "/whoami", token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for token signed with wrong secret, got %d", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := testRouter(cfg)

	clientToken, _ := auth.GenerateToken(7, "client", cfg.JWTSecret, time.Hour)
	adminToken, _ := auth.GenerateToken(1, "admin", cfg.JWTSecret, time.Hour)

	if w := doRequest(r, "/admin-only", clientToken); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for client on admin route, got %d", w.Code)
	}
	if w := doRequest(r, "/admin-only", adminToken); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
}
