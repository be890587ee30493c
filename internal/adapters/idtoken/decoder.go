package idtoken

// Package idtoken decodes identity-provider credentials (JWT id_tokens)
// locally, without signature verification. The user directory backend is the
// authority on whether a credential is acceptable; this decoder only surfaces
// the profile claims embedded in it.

import (
	"errors"
	"fmt"

	jwt "github.com/dgrijalva/jwt-go"
	domainauth "github.com/tradeport/tradeport-ui-api/internal/domain/auth"
)

// Decoder implements ports.CredentialDecoder for JWT credentials.
type Decoder struct {
	parser *jwt.Parser
}

// NewDecoder constructs a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{parser: new(jwt.Parser)}
}

// Decode parses the credential without verifying its signature and returns
// the profile claims it carries.
func (d *Decoder) Decode(credential string) (domainauth.Claims, error) {
	if credential == "" {
		return domainauth.Claims{}, errors.New("empty credential")
	}

	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(credential, claims); err != nil {
		return domainauth.Claims{}, fmt.Errorf("parse credential: %w", err)
	}

	return domainauth.Claims{
		Email:   stringClaim(claims, "email"),
		Name:    stringClaim(claims, "name"),
		Picture: stringClaim(claims, "picture"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
