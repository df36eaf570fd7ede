// Package service declares domain services implemented by the infrastructure layer.
package service

import "clinica/internal/domain/entity"

// IdentityClaims are the fields the backend embeds in the bearer token.
type IdentityClaims struct {
	Email     string
	FullName  string
	Role      string
	ExpiresAt int64 // Unix seconds; zero when the claim is absent.
	IssuedAt  int64 // Unix seconds; zero when the claim is absent.
}

// Identity projects the claims into the read-only identity view.
func (c *IdentityClaims) Identity() entity.Identity {
	role := c.Role
	if role == "" {
		role = "User"
	}

	return entity.Identity{
		Email:    c.Email,
		FullName: c.FullName,
		Role:     role,
	}
}

// TokenDecoder extracts identity claims from a bearer token.
//
// The gateway never verifies the signature or enforces expiration: the
// backend is the authority and rejects stale tokens on the next call. A
// token that fails structural decoding is treated as "no session" by the
// session manager, not surfaced as a typed error.
type TokenDecoder interface {
	Decode(token string) (*IdentityClaims, error)
}
