package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenIssuerIssuesSessionTokens(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("super-secret"),
		Issuer:        "portfolio-auth",
		Audience:      "portfolio-api",
		TokenTTL:      30 * time.Minute,
	})

	tokenString, expiresIn, err := issuer.IssueSessionToken(context.Background(), GoogleClaims{
		Subject: "user-123",
		Email:   "owner@example.com",
		Name:    "Site Owner",
	})
	if err != nil {
		t.Fatalf("expected successful issuance: %v", err)
	}
	if expiresIn != int64((30 * time.Minute).Seconds()) {
		t.Fatalf("unexpected expiry seconds %d", expiresIn)
	}

	claims := &sessionTokenClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("super-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse generated token: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("unexpected subject %s", claims.Subject)
	}
	if claims.Issuer != "portfolio-auth" {
		t.Fatalf("unexpected issuer %s", claims.Issuer)
	}
	if len(claims.Audience) == 0 || claims.Audience[0] != "portfolio-api" {
		t.Fatalf("unexpected audience %#v", claims.Audience)
	}
	if claims.Email != "owner@example.com" {
		t.Fatalf("unexpected email claim %s", claims.Email)
	}
}

func TestTokenIssuerRejectsMissingSecret(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		Issuer:   "portfolio-auth",
		Audience: "portfolio-api",
	})

	_, _, err := issuer.IssueSessionToken(context.Background(), GoogleClaims{Subject: "user-123"})
	if err == nil {
		t.Fatalf("expected issuance error for missing secret")
	}
}

func TestTokenIssuerRejectsMissingSubject(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("super-secret"),
	})

	_, _, err := issuer.IssueSessionToken(context.Background(), GoogleClaims{Email: "owner@example.com"})
	if err == nil {
		t.Fatalf("expected issuance error for missing subject")
	}
}

func TestTokenIssuerValidatesIssuedTokens(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("another-secret"),
		Issuer:        "portfolio-auth",
		Audience:      "portfolio-api",
		TokenTTL:      15 * time.Minute,
	})

	tokenString, _, err := issuer.IssueSessionToken(context.Background(), GoogleClaims{
		Subject: "user-321",
		Email:   "owner@example.com",
		Name:    "Site Owner",
		Picture: "https://example.com/avatar.png",
	})
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	actor, err := issuer.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("expected token to validate: %v", err)
	}
	if actor.Subject != "user-321" {
		t.Fatalf("unexpected subject %s", actor.Subject)
	}
	if actor.Email != "owner@example.com" || actor.Name != "Site Owner" || actor.Picture != "https://example.com/avatar.png" {
		t.Fatalf("unexpected actor %#v", actor)
	}
}

func TestTokenIssuerRejectsExpiredTokens(t *testing.T) {
	issuedAt := time.Unix(1750000000, 0).UTC()
	current := issuedAt

	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("expiring-secret"),
		Issuer:        "portfolio-auth",
		Audience:      "portfolio-api",
		TokenTTL:      time.Minute,
		Clock:         func() time.Time { return current },
	})

	tokenString, _, err := issuer.IssueSessionToken(context.Background(), GoogleClaims{Subject: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	current = issuedAt.Add(2 * time.Minute)
	_, err = issuer.ValidateToken(tokenString)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestTokenIssuerRejectsTokensSignedWithDifferentSecret(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("secret-a"),
		Issuer:        "portfolio-auth",
		Audience:      "portfolio-api",
	})
	other := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("secret-b"),
		Issuer:        "portfolio-auth",
		Audience:      "portfolio-api",
	})

	tokenString, _, err := other.IssueSessionToken(context.Background(), GoogleClaims{Subject: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	if _, err := issuer.ValidateToken(tokenString); err == nil {
		t.Fatalf("expected validation to fail for foreign signature")
	}
}

func TestTokenIssuerEnforcesIdentityAllowList(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret:     []byte("allow-secret"),
		Issuer:            "portfolio-auth",
		Audience:          "portfolio-api",
		AllowedIdentities: []string{"owner@example.com", "subject-42"},
	})

	tests := []struct {
		name    string
		claims  GoogleClaims
		allowed bool
	}{
		{name: "allowed email", claims: GoogleClaims{Subject: "user-1", Email: "owner@example.com"}, allowed: true},
		{name: "allowed subject", claims: GoogleClaims{Subject: "subject-42"}, allowed: true},
		{name: "unknown identity", claims: GoogleClaims{Subject: "user-2", Email: "visitor@example.com"}, allowed: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := issuer.IssueSessionToken(context.Background(), test.claims)
			if test.allowed && err != nil {
				t.Fatalf("expected issuance to succeed: %v", err)
			}
			if !test.allowed && !errors.Is(err, ErrIdentityNotAllowed) {
				t.Fatalf("expected ErrIdentityNotAllowed, got %v", err)
			}
		})
	}
}

func TestTokenIssuerAllowsAnyoneWhenListEmpty(t *testing.T) {
	issuer := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("open-secret"),
		Issuer:        "portfolio-auth",
		Audience:      "portfolio-api",
	})

	if _, _, err := issuer.IssueSessionToken(context.Background(), GoogleClaims{Subject: "anyone"}); err != nil {
		t.Fatalf("expected issuance without allow-list to succeed: %v", err)
	}
}
