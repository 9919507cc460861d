package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssue_SetsSevenDayHTTPOnlyCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	m := NewManager(CookieOptions{})

	m.Issue(rec, "tok-123")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	require.Equal(t, CookieName, c.Name)
	require.Equal(t, "tok-123", c.Value)
	require.True(t, c.HttpOnly)
	require.Equal(t, int(Lifetime.Seconds()), c.MaxAge)
	require.Equal(t, "/", c.Path)
}

func TestRevoke_ClearsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	m := NewManager(CookieOptions{Secure: true, SameSite: http.SameSiteLaxMode})

	m.Revoke(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	require.Equal(t, CookieName, c.Name)
	require.Empty(t, c.Value)
	require.True(t, c.HttpOnly)
	require.Negative(t, c.MaxAge)
	require.True(t, c.Secure)
}
