// Package handler implements the room endpoints. These are plain CRUD
// passthroughs over the store; the only policy here is that mutations
// require a session.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/logger"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/middleware"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/rooms"
)

type Handler struct {
	rooms rooms.Store
	cache *rooms.ListCache
}

func NewHandler(store rooms.Store, cache *rooms.ListCache) *Handler {
	return &Handler{rooms: store, cache: cache}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, auth *middleware.SessionMiddleware) {
	grp := r.Group("/rooms")
	grp.GET("", h.List)
	grp.GET("/:username", h.GetByUsername)

	protected := grp.Group("")
	protected.Use(auth.RequireAuth())
	protected.PATCH("/profile", h.UpdateProfile)
	protected.PATCH("/profile/thumbnail", h.UpdateThumbnail)
	protected.POST("/playerlist", h.JoinPlayerlist)
}

func (h *Handler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	ctx := c.Request.Context()

	if cached, ok := h.cache.Get(ctx, page); ok {
		c.JSON(http.StatusOK, gin.H{"rooms": cached})
		return
	}

	list, err := h.rooms.List(ctx, page)
	if err != nil {
		logger.Error("room listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "room listing failed"})
		return
	}
	if list == nil {
		list = []rooms.Room{}
	}

	h.cache.Set(ctx, page, list)
	c.JSON(http.StatusOK, gin.H{"rooms": list})
}

func (h *Handler) GetByUsername(c *gin.Context) {
	room, err := h.rooms.FindByUsername(c.Request.Context(), c.Param("username"))
	if errors.Is(err, rooms.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	if err != nil {
		logger.Error("room lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "room lookup failed"})
		return
	}

	c.JSON(http.StatusOK, room)
}

type updateProfileRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ident, _ := middleware.IdentityFromContext(c.Request.Context())

	err := h.rooms.UpdateProfile(c.Request.Context(), ident.Profile.Username, req.Title, req.Description)
	if err != nil {
		h.writeError(c, err, "room update failed")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}

type updateThumbnailRequest struct {
	Thumbnail string `json:"thumbnail" binding:"required"`
}

func (h *Handler) UpdateThumbnail(c *gin.Context) {
	var req updateThumbnailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ident, _ := middleware.IdentityFromContext(c.Request.Context())

	err := h.rooms.UpdateThumbnail(c.Request.Context(), ident.Profile.Username, req.Thumbnail)
	if err != nil {
		h.writeError(c, err, "room update failed")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}

type joinPlayerlistRequest struct {
	Host string `json:"host" binding:"required"`
}

func (h *Handler) JoinPlayerlist(c *gin.Context) {
	var req joinPlayerlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ident, _ := middleware.IdentityFromContext(c.Request.Context())

	err := h.rooms.AddPlayer(c.Request.Context(), req.Host, ident.Profile.Username)
	if err != nil {
		h.writeError(c, err, "playerlist update failed")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error, msg string) {
	if errors.Is(err, rooms.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	logger.Error(msg, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
