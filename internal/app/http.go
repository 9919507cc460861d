package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/account"
	authhandler "github.com/jeongyunjae/BangGuseokTV-backend/internal/auth/handler"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/config"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/logger"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/middleware"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/rooms"
	roomhandler "github.com/jeongyunjae/BangGuseokTV-backend/internal/rooms/handler"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/session"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/token"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	if cfg.TokenSecret == "" {
		return nil, nil, errors.New("TOKEN_SECRET is required")
	}

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	var accounts account.Store
	var roomStore rooms.Store
	if infra.DB != nil {
		accounts = account.NewPostgresStore(infra.DB)
		roomStore = rooms.NewPostgresStore(infra.DB)
	} else {
		logger.Warn("no DATABASE_DSN set, using in-memory stores")
		accounts = account.NewMemoryStore()
		roomStore = rooms.NewMemoryStore()
	}

	var cache *rooms.ListCache
	if infra.Redis != nil {
		cache = rooms.NewListCache(infra.Redis.Client)
	}

	tokens := token.NewService([]byte(cfg.TokenSecret))

	sessions := session.NewManager(session.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	sessionMW := middleware.NewSessionMiddleware(tokens)

	authHandler := authhandler.NewHandler(accounts, tokens, sessions)
	roomHandler := roomhandler.NewHandler(roomStore, cache)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(sessionMW.Resolve())

	authHandler.RegisterRoutes(router)
	roomHandler.RegisterRoutes(router, sessionMW)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	cleanup := func() error {
		if infra.Redis != nil {
			_ = infra.Redis.Close()
		}
		if infra.DB != nil {
			return infra.DB.Close()
		}
		return nil
	}

	return router, cleanup, nil
}
