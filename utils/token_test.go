package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/kenya-ni-yetu/api-go/config"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	data := map[string]interface{}{
		"user_id": "b3c2a1d0-0000-0000-0000-000000000001",
		"role":    "user",
	}

	token, err := CreateAccessToken(data, 0)
	if err != nil {
		t.Fatalf("CreateAccessToken() error = %v", err)
	}

	claims, ok := DecodeToken(token)
	if !ok {
		t.Fatal("DecodeToken() rejected a freshly issued token")
	}

	if claims["user_id"] != data["user_id"] {
		t.Errorf("user_id = %v, want %v", claims["user_id"], data["user_id"])
	}
	if claims["role"] != data["role"] {
		t.Errorf("role = %v, want %v", claims["role"], data["role"])
	}
	if claims["type"] != TokenTypeAccess {
		t.Errorf("type = %v, want %q", claims["type"], TokenTypeAccess)
	}
	if _, hasExp := claims["exp"]; !hasExp {
		t.Error("decoded claims missing exp")
	}
}

func TestRefreshTokenType(t *testing.T) {
	token, err := CreateRefreshToken(map[string]interface{}{"user_id": "abc"})
	if err != nil {
		t.Fatalf("CreateRefreshToken() error = %v", err)
	}

	claims, ok := DecodeToken(token)
	if !ok {
		t.Fatal("DecodeToken() rejected a refresh token")
	}
	if claims["type"] != TokenTypeRefresh {
		t.Errorf("type = %v, want %q", claims["type"], TokenTypeRefresh)
	}
}

func TestDecodeTokenExpired(t *testing.T) {
	// Sign a token that expired one second ago.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "abc",
		"type":    TokenTypeAccess,
		"exp":     time.Now().Add(-time.Second).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(config.Get().JWTSecretKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, ok := DecodeToken(tokenString); ok {
		t.Error("DecodeToken() accepted an expired token")
	}
}

func TestDecodeTokenInvalid(t *testing.T) {
	valid, err := CreateAccessToken(map[string]interface{}{"user_id": "abc"}, 0)
	if err != nil {
		t.Fatalf("CreateAccessToken() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not-a-token"},
		{"tampered signature", valid[:len(valid)-2] + "xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := DecodeToken(tt.token); ok {
				t.Errorf("DecodeToken(%q) accepted an invalid token", tt.token)
			}
		})
	}
}

func TestDecodeTokenRejectsUnsignedAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "abc",
		"type":    TokenTypeAccess,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, ok := DecodeToken(tokenString); ok {
		t.Error("DecodeToken() accepted an alg=none token")
	}
}

func TestVerificationTokenRoundTrip(t *testing.T) {
	token, err := CreateVerificationToken("a@b.com")
	if err != nil {
		t.Fatalf("CreateVerificationToken() error = %v", err)
	}

	email, ok := VerifyVerificationToken(token)
	if !ok {
		t.Fatal("VerifyVerificationToken() rejected a fresh verification token")
	}
	if email != "a@b.com" {
		t.Errorf("email = %q, want %q", email, "a@b.com")
	}
}

func TestVerifyVerificationTokenWrongType(t *testing.T) {
	// A valid access token must not pass verification, even though its
	// signature checks out.
	accessToken, err := CreateAccessToken(map[string]interface{}{"sub": "a@b.com"}, 0)
	if err != nil {
		t.Fatalf("CreateAccessToken() error = %v", err)
	}

	if _, ok := VerifyVerificationToken(accessToken); ok {
		t.Error("VerifyVerificationToken() accepted an access token")
	}
}
