package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yusufoz/coursehub/internal/app/models/dto"
	"github.com/yusufoz/coursehub/internal/pkg/auth"
)

func newTestAuthSetup(t *testing.T) (*auth.JWTService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		TokenIssuer:    "coursehub.test",
		AccessTokenExp: time.Hour,
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", authMiddleware.RequireIdentity(), func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID.String(), "email": identity.Email})
	})
	router.GET("/open", authMiddleware.OptionalIdentity(), func(c *gin.Context) {
		_, ok := IdentityFromContext(c)
		c.JSON(http.StatusOK, gin.H{"resolved": ok})
	})

	return jwtService, router
}

func decodeErrorResponse(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("expected an error detail in the response")
	}
	return resp
}

func TestRequireIdentityValidToken(t *testing.T) {
	jwtService, router := newTestAuthSetup(t)
	userID := uuid.New()

	token, err := jwtService.MintToken(userID, "user@example.com")
	if err != nil {
		t.Fatalf("MintToken returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, but got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["user_id"] != userID.String() {
		t.Fatalf("expected user_id %s, but got %q", userID, body["user_id"])
	}
	if body["email"] != "user@example.com" {
		t.Fatalf("expected email claim forwarded, but got %q", body["email"])
	}
}

func TestRequireIdentityMissingToken(t *testing.T) {
	_, router := newTestAuthSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, but got %d", w.Code)
	}

	resp := decodeErrorResponse(t, w.Body.Bytes())
	if resp.Error.Code != dto.ErrorCodeUnauthorized {
		t.Fatalf("expected code %s, but got %s", dto.ErrorCodeUnauthorized, resp.Error.Code)
	}
}

func TestRequireIdentityMalformedToken(t *testing.T) {
	_, router := newTestAuthSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, but got %d", w.Code)
	}

	resp := decodeErrorResponse(t, w.Body.Bytes())
	if resp.Error.Code != dto.ErrorCodeInvalidToken {
		t.Fatalf("expected code %s, but got %s", dto.ErrorCodeInvalidToken, resp.Error.Code)
	}
}

func TestOptionalIdentityWithoutToken(t *testing.T) {
	_, router := newTestAuthSetup(t)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, but got %d", w.Code)
	}

	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["resolved"] {
		t.Fatal("expected no identity without a token")
	}
}

func TestOptionalIdentityWithToken(t *testing.T) {
	jwtService, router := newTestAuthSetup(t)

	token, err := jwtService.MintToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("MintToken returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, but got %d", w.Code)
	}

	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body["resolved"] {
		t.Fatal("expected identity resolved from a valid token")
	}
}
