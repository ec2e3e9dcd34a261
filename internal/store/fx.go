package store

import (
	"context"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/catalog/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the Store and owns its lifecycle: the connection is
// verified before the application starts serving and closed on shutdown.
var Module = fx.Module("store",
	fx.Provide(New),
)

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Log       *zap.Logger
}

// New builds the configured Store implementation.
func New(p Params) (Store, error) {
	var s Store
	switch p.Config.StoreDriver {
	case config.DriverMemory:
		s = NewMemoryStore()
	default:
		client := redis.NewClient(&redis.Options{
			Addr:     p.Config.RedisAddr,
			Password: p.Config.RedisPassword,
			DB:       p.Config.RedisDB,
		})
		s = NewRedisStore(client, p.Config.RedisTimeout)
	}

	log := p.Log.Named("store")
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := s.Ping(ctx); err != nil {
				return err
			}
			log.Info("store ready",
				zap.String("driver", p.Config.StoreDriver),
			)
			return nil
		},
		OnStop: func(context.Context) error {
			return s.Close()
		},
	})

	return s, nil
}
