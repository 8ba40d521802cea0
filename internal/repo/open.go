package repo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"player-registry/internal/core/config"
	"player-registry/internal/core/database"
	"player-registry/internal/domain"
)

// Open 按 store.backend 创建玩家存储；返回的 cleanup 负责释放连接
func Open(ctx context.Context, cfg *config.Config, l *zap.Logger) (domain.PlayerRepository, func(), error) {
	switch cfg.Store.Backend {
	case "", "gorm":
		db, err := database.NewGorm(database.Opts{
			Driver:             cfg.DB.Driver,
			DSN:                cfg.DB.DSN,
			Username:           cfg.DB.Username,
			Password:           cfg.DB.Password,
			MaxOpenConns:       cfg.DB.MaxOpenConns,
			MaxIdleConns:       cfg.DB.MaxIdleConns,
			ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
			LogLevel:           cfg.DB.LogLevel,
			Logger:             l,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open db: %w", err)
		}
		l.Info("database connected", zap.String("driver", cfg.DB.Driver))
		r := NewPlayerRepo(db)
		if cfg.DB.AutoMigrate {
			if err := r.Migrate(ctx); err != nil {
				return nil, nil, fmt.Errorf("automigrate: %w", err)
			}
			l.Info("automigrate done")
		}
		cleanup := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return r, cleanup, nil

	case "redis":
		rdb, err := database.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis: %w", err)
		}
		l.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
		r := NewRedisPlayerRepo(rdb)
		return r, func() { _ = r.Close() }, nil

	case "memory":
		l.Warn("using in-memory player store; data is lost on exit")
		return NewMemoryPlayerRepo(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
