// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"clinica/internal/domain/service"
)

// jwtDecoder is a concrete implementation of the TokenDecoder interface using
// the JWT standard. It performs structural decoding only: the backend signs
// and verifies tokens, the gateway merely reads the claims it carries.
type jwtDecoder struct {
	parser *jwt.Parser
}

// NewJWTDecoder is the constructor for jwtDecoder.
func NewJWTDecoder() service.TokenDecoder {
	return &jwtDecoder{parser: jwt.NewParser()}
}

// Decode extracts identity claims from a bearer token without verifying the
// signature. A malformed token yields an error; the session boundary maps it
// to "no session".
func (d *jwtDecoder) Decode(tokenString string) (*service.IdentityClaims, error) {
	token, _, err := d.parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims format")
	}

	email, _ := mapClaims["email"].(string)
	if email == "" {
		return nil, errors.New("token carries no email claim")
	}

	claims := &service.IdentityClaims{Email: email}
	claims.FullName, _ = mapClaims["nombre_completo"].(string)
	claims.Role, _ = mapClaims["role"].(string)

	// Numeric claims arrive as float64 from the JSON decoder.
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = int64(exp)
	}
	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = int64(iat)
	}

	return claims, nil
}
