package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sewago/sewago/internal/pkg/models"
)

// GenerateToken mints a session token for the given user. The jti claim
// identifies the session so logout and deactivation can revoke it without
// invalidating the signing key.
func GenerateToken(userID uuid.UUID, role string, cfg *models.Config) (string, string, int64, error) {
	// Set token expiration time
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()
	sessionID := uuid.New().String()

	// Create claims
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"jti":     sessionID,
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Sign token with configured secret
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", "", 0, err
	}

	return tokenString, sessionID, expiresAt, nil
}

// ValidateToken validates a session token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	// Parse token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, err
}
