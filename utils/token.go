package utils

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/kenya-ni-yetu/api-go/config"
)

// Every token carries a type discriminator so a refresh or verification token
// can never be replayed as an access token, even though all three share one
// signing key.
const (
	TokenTypeAccess       = "access"
	TokenTypeRefresh      = "refresh"
	TokenTypeVerification = "verification"
)

func signToken(data map[string]interface{}, tokenType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range data {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(ttl).Unix()
	claims["type"] = tokenType

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Get().JWTSecretKey))
}

// CreateAccessToken signs an access token embedding the given claims. A ttl of
// zero or less uses the configured default.
func CreateAccessToken(data map[string]interface{}, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = time.Duration(config.Get().AccessTokenExpireMinutes) * time.Minute
	}
	return signToken(data, TokenTypeAccess, ttl)
}

// CreateRefreshToken signs a refresh token with the configured day-based ttl.
func CreateRefreshToken(data map[string]interface{}) (string, error) {
	ttl := time.Duration(config.Get().RefreshTokenExpireDays) * 24 * time.Hour
	return signToken(data, TokenTypeRefresh, ttl)
}

// DecodeToken verifies signature and expiry and returns the claim set. All
// failure modes (expired, malformed, forged) collapse to ok=false; callers get
// no further detail.
func DecodeToken(tokenString string) (jwt.MapClaims, bool) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.Get().JWTSecretKey), nil
	})
	if err != nil || !parsed.Valid {
		return nil, false
	}
	return claims, true
}

// CreateVerificationToken signs a 24-hour token proving control of an email
// address, with the address as subject.
func CreateVerificationToken(email string) (string, error) {
	return signToken(map[string]interface{}{"sub": email}, TokenTypeVerification, 24*time.Hour)
}

// VerifyVerificationToken decodes a verification token and returns the email it
// was issued for. A valid token of any other type is rejected.
func VerifyVerificationToken(tokenString string) (string, bool) {
	claims, ok := DecodeToken(tokenString)
	if !ok {
		return "", false
	}
	if claims["type"] != TokenTypeVerification {
		return "", false
	}
	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
