package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/newsletter-server/internal/model"
)

const typePublisher = "publisher"

var _ model.PublisherTokenManager = (*JWT)(nil)

// Claims represents JWT claims with token type.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

// JWT implements PublisherTokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key and token lifetime.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{secretKey: secretKey, ttl: ttl, now: time.Now}
}

// GeneratePublisherToken creates a token authorizing subject to publish issues.
func (j *JWT) GeneratePublisherToken(subject string) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("publisher subject is empty")
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		TokenType: typePublisher,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign publisher token: %w", err)
	}

	return tokenString, nil
}

// ParsePublisherToken validates a publisher token and returns its subject.
func (j *JWT) ParsePublisherToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return "", fmt.Errorf("failed to parse publisher token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("publisher token is invalid")
	}
	if claims.TokenType != typePublisher {
		return "", fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("publisher token has no subject")
	}
	return claims.Subject, nil
}
