package app

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/config"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/db"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/logger"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/redis"
)

// Infra bundles external dependencies. DB and Redis are nil when the
// corresponding setting is absent; callers fall back to in-memory
// stores and no caching.
type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	if cfg.DatabaseDSN != "" {
		sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}

		if err := db.RunMigration(ctx, sqlDB); err != nil {
			return nil, err
		}

		logger.Info("database ready")
		infra.DB = &db.DB{DB: sqlDB}
	}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}

		logger.Info("redis ready")
		infra.Redis = redisClient
	}

	return infra, nil
}
