package token

import (
	"context"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"

	"skillio/pkg/logger"
)

type jwksClaims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWKSVerifier checks RS256 ID tokens against a remote key set, such as the
// Firebase secure token keys, without needing service account credentials.
type JWKSVerifier struct {
	jwks     *keyfunc.JWKS
	audience string
}

func NewJWKSVerifier(url, audience string) (*JWKSVerifier, error) {
	jwks, err := keyfunc.Get(url, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			logger.Warn("JWKS refresh failed: %v", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("load JWKS from %s: %w", url, err)
	}
	return &JWKSVerifier{jwks: jwks, audience: audience}, nil
}

func (v *JWKSVerifier) VerifyToken(ctx context.Context, raw string) (*Identity, error) {
	var claims jwksClaims
	parsed, err := jwt.ParseWithClaims(raw, &claims, v.jwks.Keyfunc)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid token")
	}
	if v.audience != "" && !claims.VerifyAudience(v.audience, true) {
		return nil, fmt.Errorf("token audience mismatch")
	}

	return &Identity{
		UID:   claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Kind:  KindUser,
	}, nil
}

func (v *JWKSVerifier) Close() {
	v.jwks.EndBackground()
}
