// Package token derives session tokens from accounts. A token is a pure
// function of the account state at issuance; there is no server-side
// session record, so "rotating" a session just means issuing a new token
// from the re-fetched account.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/account"
)

// Lifetime is how long an issued token stays valid. It matches the
// session cookie's lifetime.
const Lifetime = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("token: invalid")

// Identity is the resolved content of a session token.
type Identity struct {
	AccountID string
	Profile   account.Profile
}

type claims struct {
	jwt.RegisteredClaims
	AccountID string          `json:"account_id"`
	Profile   account.Profile `json:"profile"`
}

type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret []byte) *Service {
	return &Service{secret: secret, ttl: Lifetime}
}

// Issue signs a token for the account's current state.
func (s *Service) Issue(a *account.Account) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		AccountID: a.ID.String(),
		Profile:   a.Profile(),
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Parse validates a raw token and returns the identity it encodes.
func (s *Service) Parse(raw string) (*Identity, error) {
	c := &claims{}

	t, err := jwt.ParseWithClaims(raw, c, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{
		AccountID: c.AccountID,
		Profile:   c.Profile,
	}, nil
}
