package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/account"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/logger"
)

type verifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Key   string `json:"key" binding:"required,hexadecimal"`
}

// Verify upgrades an account to verified when the caller presents the
// key that was mailed to it, then rotates the session token so the
// cookie reflects the new profile. The order matters: lookup, update,
// re-fetch, reissue. The re-fetch is what guarantees the fresh token is
// derived from the post-update account.
func (h *Handler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()

	acct, err := h.accounts.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, account.ErrNotFound) {
		logger.Error("account lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account lookup failed"})
		return
	}

	// An unknown email answers exactly like a wrong key.
	if acct == nil || acct.VerifyKey != req.Key {
		c.JSON(http.StatusForbidden, gin.H{"error": "verification failed"})
		return
	}

	if err := h.accounts.SetVerified(ctx, acct.ID); err != nil {
		logger.Error("account update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account update failed"})
		return
	}

	acct, err = h.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("account refetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account lookup failed"})
		return
	}

	tok, err := h.tokens.Issue(acct)
	if err != nil {
		logger.Error("token issuance failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}

	h.sessions.Issue(c.Writer, tok)
	c.Status(http.StatusOK)
}
