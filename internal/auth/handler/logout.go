package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Logout clears the session cookie. No store access: there is no
// server-side session to tear down, so this works with or without a
// live session.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Revoke(c.Writer)
	c.Status(http.StatusNoContent)
}
