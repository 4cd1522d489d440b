package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSignAndValidate(t *testing.T) {
	token, err := Sign("test-client")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.ClientID != "test-client" {
		t.Errorf("client = %q, want test-client", claims.ClientID)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatal("want error for malformed token")
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.ContextWithFallback = true
	g.GET("/whoami", Auth(), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, GetCurrentClient(ctx))
	})

	// no token
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	// valid bearer token
	token, err := Sign("client-a")
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	g.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", w.Code)
	}
	if w.Body.String() != "client-a" {
		t.Errorf("client = %q, want client-a", w.Body.String())
	}

	// token in query
	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami?access_token="+token, nil))
	if w.Code != http.StatusOK {
		t.Errorf("query token: status = %d, want 200", w.Code)
	}
}
