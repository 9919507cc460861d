// Package handler implements the authentication endpoints: local login,
// existence check, logout, session check and email verification.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/account"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/session"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/token"
)

type Handler struct {
	accounts account.Store
	tokens   *token.Service
	sessions *session.Manager
}

func NewHandler(
	accounts account.Store,
	tokens *token.Service,
	sessions *session.Manager,
) *Handler {
	return &Handler{
		accounts: accounts,
		tokens:   tokens,
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	auth.POST("/login", h.Login)
	auth.GET("/exists/:key/:value", h.Exists)
	auth.POST("/logout", h.Logout)
	auth.GET("/check", h.Check)
	auth.POST("/verify", h.Verify)
}
