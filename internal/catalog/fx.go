package catalog

import (
	"context"

	"github.com/smallbiznis/catalog/internal/catalog/domain"
	"github.com/smallbiznis/catalog/internal/catalog/repository"
	"github.com/smallbiznis/catalog/internal/catalog/service"
	"github.com/smallbiznis/catalog/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Invoke(reconcileOnStart),
)

// reconcileOnStart rebuilds the derived indexes before serving traffic when
// STORE_RECONCILE_ON_START is set.
func reconcileOnStart(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, repo domain.Repository) {
	if !cfg.ReconcileOnStart {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("reconciling catalog indexes")
			return repo.Reconcile(ctx)
		},
	})
}
