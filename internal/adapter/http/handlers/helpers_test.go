package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"cartas_marketplace/internal/adapter/http/middleware"
	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var (
	testBuyer  = entities.Principal{UserID: "buyer-1", Role: entities.RoleBuyer, KycLevel: 1}
	testSeller = entities.Principal{UserID: "seller-1", Role: entities.RoleSeller, KycLevel: 1}
	testAdmin  = entities.Principal{UserID: "admin-1", Role: entities.RoleAdmin, KycLevel: 3, MfaEnabled: true}
)

// newRouter returns a gin engine where every request is authenticated as p.
// A zero principal leaves the request unauthenticated.
func newRouter(p entities.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if p.UserID != "" {
		r.Use(func(c *gin.Context) {
			middleware.SetPrincipal(c, p)
			c.Next()
		})
	}
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var e pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return e
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected %d, got %d body=%s", status, w.Code, w.Body.String())
	}
	if got := decodeError(t, w).Code; got != code {
		t.Fatalf("expected code %s, got %s", code, got)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected %d, got %d body=%s", status, w.Code, w.Body.String())
	}
}
