package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/account"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/logger"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	acct, err := h.accounts.FindByEmail(c.Request.Context(), req.Email)
	if err != nil && !errors.Is(err, account.ErrNotFound) {
		logger.Error("account lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account lookup failed"})
		return
	}

	// One answer for "no such account" and "wrong password" so the
	// response does not reveal which check failed.
	if acct == nil || !acct.ValidatePassword(req.Password) {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid credentials"})
		return
	}

	tok, err := h.tokens.Issue(acct)
	if err != nil {
		logger.Error("token issuance failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}

	h.sessions.Issue(c.Writer, tok)
	c.JSON(http.StatusOK, acct.Profile())
}
