package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 60 * time.Minute

var (
	errMissingSigningSecret = errors.New("signing secret must be provided")
	errMissingSubjectClaim  = errors.New("subject claim must be provided")
	// ErrIdentityNotAllowed reports a verified Google identity that is not
	// on the owner allow-list.
	ErrIdentityNotAllowed = errors.New("auth: identity not allowed")
)

// Actor is the authenticated identity attached to a request.
type Actor struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type sessionTokenClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// TokenIssuerConfig configures the session JWT issuer.
type TokenIssuerConfig struct {
	SigningSecret []byte
	Issuer        string
	Audience      string
	TokenTTL      time.Duration
	// AllowedIdentities optionally restricts session issuance to the listed
	// Google subjects or email addresses. Empty means any verified identity
	// may sign in.
	AllowedIdentities []string
	Clock             func() time.Time
}

// TokenIssuer issues and validates the session JWT used by both the bearer
// header and the session cookie.
type TokenIssuer struct {
	config  TokenIssuerConfig
	allowed map[string]struct{}
	clock   func() time.Time
}

// NewTokenIssuer constructs a TokenIssuer with sane defaults.
func NewTokenIssuer(cfg TokenIssuerConfig) *TokenIssuer {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	allowed := make(map[string]struct{}, len(cfg.AllowedIdentities))
	for _, identity := range cfg.AllowedIdentities {
		allowed[identity] = struct{}{}
	}
	return &TokenIssuer{
		config: TokenIssuerConfig{
			SigningSecret:     cfg.SigningSecret,
			Issuer:            cfg.Issuer,
			Audience:          cfg.Audience,
			TokenTTL:          ttl,
			AllowedIdentities: cfg.AllowedIdentities,
			Clock:             clock,
		},
		allowed: allowed,
		clock:   clock,
	}
}

// IssueSessionToken produces a signed session JWT and its expiry (seconds)
// for the verified Google identity.
func (i *TokenIssuer) IssueSessionToken(_ context.Context, claims GoogleClaims) (string, int64, error) {
	if len(i.config.SigningSecret) == 0 {
		return "", 0, errMissingSigningSecret
	}
	if claims.Subject == "" {
		return "", 0, errMissingSubjectClaim
	}
	if !i.identityAllowed(claims) {
		return "", 0, ErrIdentityNotAllowed
	}

	now := i.clock().UTC()
	expiresAt := now.Add(i.config.TokenTTL).UTC()

	sessionClaims := sessionTokenClaims{
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			Issuer:    i.config.Issuer,
			Audience:  []string{i.config.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims)
	signed, err := token.SignedString(i.config.SigningSecret)
	if err != nil {
		return "", 0, err
	}

	return signed, int64(expiresAt.Sub(now).Seconds()), nil
}

// ValidateToken ensures the session JWT is well formed and returns the actor.
func (i *TokenIssuer) ValidateToken(tokenString string) (Actor, error) {
	if len(i.config.SigningSecret) == 0 {
		return Actor{}, errMissingSigningSecret
	}

	claims := &sessionTokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing algorithm: %s", token.Method.Alg())
			}
			return i.config.SigningSecret, nil
		},
		jwt.WithAudience(i.config.Audience),
		jwt.WithIssuer(i.config.Issuer),
		jwt.WithTimeFunc(i.clock),
	)
	if err != nil {
		return Actor{}, err
	}
	if claims.Subject == "" {
		return Actor{}, errMissingSubjectClaim
	}

	return Actor{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

func (i *TokenIssuer) identityAllowed(claims GoogleClaims) bool {
	if len(i.allowed) == 0 {
		return true
	}
	if _, ok := i.allowed[claims.Subject]; ok {
		return true
	}
	_, ok := i.allowed[claims.Email]
	return ok
}
