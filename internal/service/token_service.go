package service

import (
	"fmt"
	"time"

	"crypto-wallet-client/internal/core/domain"
	"crypto-wallet-client/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// UnverifiedTokenDecoder implements ports.TokenDecoder. The client never
// holds the backend's signing secret, so claims are extracted without
// signature verification; only well-formedness and expiry are checked here.
// Decoding is deterministic: the same token always yields the same identity.
type UnverifiedTokenDecoder struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewTokenDecoder creates a decoder using wall-clock time for expiry checks.
func NewTokenDecoder() *UnverifiedTokenDecoder {
	return &UnverifiedTokenDecoder{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// Decode extracts the identity claims (sub, id, role, public_key) from a
// session token. Malformed and expired tokens fail with AUTH_002.
func (d *UnverifiedTokenDecoder) Decode(token string) (*domain.Identity, error) {
	parsed, _, err := d.parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, apperror.ErrInvalidToken(fmt.Errorf("parsing token: %w", err))
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.ErrInvalidToken(fmt.Errorf("unexpected claims type %T", parsed.Claims))
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, apperror.ErrInvalidToken(fmt.Errorf("reading exp claim: %w", err))
	}
	if exp != nil && exp.Before(d.now()) {
		return nil, apperror.ErrInvalidToken(fmt.Errorf("token expired at %s", exp))
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, apperror.ErrInvalidToken(fmt.Errorf("missing subject claim"))
	}

	rawID, ok := claims["id"].(float64)
	if !ok || rawID <= 0 {
		return nil, apperror.ErrInvalidToken(fmt.Errorf("missing or invalid id claim"))
	}

	role, _ := claims["role"].(string)

	var publicKey *string
	if pk, ok := claims["public_key"].(string); ok && pk != "" {
		publicKey = &pk
	}

	return &domain.Identity{
		Username:  sub,
		ID:        int64(rawID),
		Role:      role,
		PublicKey: publicKey,
	}, nil
}
