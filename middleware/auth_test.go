package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyAdminKeyPlaintext(t *testing.T) {
	t.Setenv("ADMIN_KEY", "secret")
	t.Setenv("ADMIN_KEY_HASH", "")

	if !VerifyAdminKey("secret") {
		t.Fatal("expected matching key to verify")
	}
	for _, bad := range []string{"", "Secret", "secret "} {
		if VerifyAdminKey(bad) {
			t.Fatalf("expected %q to fail", bad)
		}
	}
}

func TestVerifyAdminKeyBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	t.Setenv("ADMIN_KEY_HASH", string(hash))
	t.Setenv("ADMIN_KEY", "something-else")

	if !VerifyAdminKey("secret") {
		t.Fatal("expected hashed key to verify")
	}
	if VerifyAdminKey("something-else") {
		t.Fatal("hash must take precedence over plaintext key")
	}
}

func TestVerifyAdminKeyUnconfigured(t *testing.T) {
	t.Setenv("ADMIN_KEY", "")
	t.Setenv("ADMIN_KEY_HASH", "")

	if VerifyAdminKey("anything") {
		t.Fatal("unconfigured server must reject every key")
	}
}

func gateRouter(handled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/gated", AdminAuthMiddleware(), func(c *gin.Context) {
		*handled = true
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestAdminAuthMiddlewareRejectsBeforeHandler(t *testing.T) {
	t.Setenv("ADMIN_KEY", "secret")
	t.Setenv("ADMIN_KEY_HASH", "")
	t.Setenv("JWT_SECRET", "jwt-secret")

	var handled bool
	router := gateRouter(&handled)

	cases := []map[string]string{
		{},
		{"X-Admin-Key": "wrong"},
		{"Authorization": "secret"},
		{"Authorization": "Bearer garbage"},
	}
	for _, headers := range cases {
		handled = false
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("headers %v: expected 401, got %d", headers, w.Code)
		}
		if handled {
			t.Fatalf("headers %v: handler must not run on auth failure", headers)
		}
	}
}

func TestAdminAuthMiddlewareAcceptsKeyAndToken(t *testing.T) {
	t.Setenv("ADMIN_KEY", "secret")
	t.Setenv("ADMIN_KEY_HASH", "")
	t.Setenv("JWT_SECRET", "jwt-secret")

	var handled bool
	router := gateRouter(&handled)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("X-Admin-Key", "secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !handled {
		t.Fatalf("expected shared key to pass, got %d", w.Code)
	}

	token, _, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	handled = false
	req = httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !handled {
		t.Fatalf("expected session token to pass, got %d", w.Code)
	}
}
