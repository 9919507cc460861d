package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/account"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/logger"
)

// Exists reports whether an email or username is taken. Deliberately
// unauthenticated: the signup form polls it while the user types.
func (h *Handler) Exists(c *gin.Context) {
	key := c.Param("key")
	value := c.Param("value")

	var (
		acct *account.Account
		err  error
	)
	if key == "email" {
		acct, err = h.accounts.FindByEmail(c.Request.Context(), value)
	} else {
		acct, err = h.accounts.FindByUsername(c.Request.Context(), value)
	}

	if err != nil && !errors.Is(err, account.ErrNotFound) {
		logger.Error("account lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": acct != nil})
}
