// SPDX-License-Identifier: MIT
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thatcatcamp/themekit/internal/config"
)

// ScopeSettingsWrite allows changing the live theme settings.
const ScopeSettingsWrite = "settings:write"

// Claims represents JWT claims for settings access
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// getJWTSecret returns the JWT secret from env var or config
func getJWTSecret() string {
	// Environment variable takes precedence
	if secret := os.Getenv("THEMEKIT_JWT_SECRET"); secret != "" {
		return secret
	}
	return config.GetString("auth.jwt_secret")
}

// Enabled reports whether a signing secret is configured. Without one,
// settings writes are not protected.
func Enabled() bool {
	return getJWTSecret() != ""
}

// GenerateToken creates a settings write token for subject
func GenerateToken(subject string) (string, error) {
	secret := getJWTSecret()
	if secret == "" {
		return "", errors.New("no JWT secret configured (set auth.jwt_secret or THEMEKIT_JWT_SECRET)")
	}

	expiryHours := config.GetInt("auth.jwt_expiry_hours")
	if expiryHours == 0 {
		expiryHours = 8 // Default fallback
	}

	claims := Claims{
		Scope: ScopeSettingsWrite,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a JWT token
func ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(getJWTSecret()), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Scope != ScopeSettingsWrite {
		return nil, errors.New("token lacks settings scope")
	}

	return claims, nil
}
