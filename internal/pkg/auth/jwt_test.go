package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yusufoz/coursehub/internal/pkg/apperrors"
)

func newTestJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		TokenIssuer:    "coursehub.test",
		AccessTokenExp: time.Hour,
	})
}

func TestMintAndValidateToken(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	token, err := svc.MintToken(userID, "user@example.com")
	if err != nil {
		t.Fatalf("MintToken returned error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}

	if claims.Subject != userID.String() {
		t.Fatalf("expected subject %s, but got %s", userID, claims.Subject)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("expected email claim kept, but got %q", claims.Email)
	}
	if claims.Issuer != "coursehub.test" {
		t.Fatalf("expected issuer coursehub.test, but got %q", claims.Issuer)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestJWTService()

	past := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(past),
			Subject:   uuid.New().String(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Fatalf("expected expired token error, but got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})

	token, err := other.MintToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("MintToken returned error: %v", err)
	}

	if _, err := newTestJWTService().ValidateToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected invalid token error, but got %v", err)
	}
}

func TestValidateTokenNonUUIDSubject(t *testing.T) {
	svc := newTestJWTService()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Subject:   "not-a-uuid",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected invalid token error, but got %v", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := newTestJWTService().ValidateToken("not.a.jwt"); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected invalid token error, but got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for missing header, but got %v", err)
	}

	for _, header := range []string{"Bearer", "Bearer ", "Basic abc", "token-only"} {
		if _, err := ExtractBearerToken(header); !errors.Is(err, apperrors.ErrTokenInvalid) {
			t.Fatalf("header %q: expected invalid token error, but got %v", header, err)
		}
	}

	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken returned error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("expected token abc.def.ghi, but got %q", token)
	}

	token, err = ExtractBearerToken("bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("expected case-insensitive scheme, but got error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("expected token abc.def.ghi, but got %q", token)
	}
}
