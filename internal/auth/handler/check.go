package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/middleware"
)

// Check returns the profile of the identity the session middleware
// resolved. The token was already validated upstream; this handler only
// consumes the result.
func (h *Handler) Check(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "not logged in"})
		return
	}

	c.JSON(http.StatusOK, ident.Profile)
}
