// Package account holds the account model and the store it lives in.
package account

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account is a registered user. VerifyKey is the hex secret mailed out at
// registration; it proves control of the email address and is compared
// byte-for-byte, never hashed.
type Account struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	VerifyKey    string
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public-facing slice of an account, returned to callers
// as the canonical "who am I" payload and embedded in session tokens.
type Profile struct {
	Username string `json:"username"`
	Verified bool   `json:"verified"`
}

func (a *Account) Profile() Profile {
	return Profile{
		Username: a.Username,
		Verified: a.Verified,
	}
}

// ValidatePassword reports whether plain matches the stored bcrypt hash.
func (a *Account) ValidatePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword(
		[]byte(a.PasswordHash),
		[]byte(plain),
	) == nil
}

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(plain),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
