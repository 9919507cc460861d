// Package session writes and clears the session cookie. The cookie is the
// only place session state lives; the server keeps no session table.
package session

import (
	"net/http"
	"time"
)

const (
	// CookieName is the fixed name of the session cookie.
	CookieName = "access_token"

	// Lifetime is the fixed session length, counted from issuance.
	Lifetime = 7 * 24 * time.Hour
)

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Path     string
	HttpOnly bool
	Secure   bool
	SameSite http.SameSite
	Domain   string
}

// normalize applies safe defaults without breaking callers
func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/"
	}
	if !o.HttpOnly {
		o.HttpOnly = true
	}
	return o
}

// Manager issues and revokes the session cookie. It holds no state of its
// own; both operations are plain writes against the outgoing response.
type Manager struct {
	opts CookieOptions
}

func NewManager(opts CookieOptions) *Manager {
	return &Manager{opts: opts.normalize()}
}

// Issue sets the session cookie carrying the given token for Lifetime.
func (m *Manager) Issue(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     m.opts.Path,
		Domain:   m.opts.Domain,
		MaxAge:   int(Lifetime.Seconds()),
		Expires:  time.Now().Add(Lifetime),
		HttpOnly: m.opts.HttpOnly,
		Secure:   m.opts.Secure,
		SameSite: m.opts.SameSite,
	})
}

// Revoke clears the session cookie: empty value, immediate expiry.
func (m *Manager) Revoke(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     m.opts.Path,
		Domain:   m.opts.Domain,
		MaxAge:   -1,
		HttpOnly: m.opts.HttpOnly,
		Secure:   m.opts.Secure,
		SameSite: m.opts.SameSite,
	})
}
