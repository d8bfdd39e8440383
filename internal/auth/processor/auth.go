package processor

import (
	"errors"
	"time"

	"intake-agent/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "intake-agent"
	tokenAudience = "intake-agent"
	tokenTTL      = 24 * time.Hour
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token expired")
	ErrFailedSignIn    = errors.New("failed to sign token")
	ErrMissingSecret   = errors.New("jwt secret is not configured")
)

// AuthProcessor issues and validates the bearer tokens that guard the
// intake read API.
type AuthProcessor struct {
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(jwtSecret string, logger *observability.Logger) (AuthProcessor, error) {
	if jwtSecret == "" {
		return AuthProcessor{}, ErrMissingSecret
	}
	return AuthProcessor{
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}, nil
}

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
}
