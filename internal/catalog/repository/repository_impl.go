// Package repository maintains the product record hash together with its
// three secondary structures: the insertion-ordered id list, the name→id
// index and the running counter.
package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/smallbiznis/catalog/internal/catalog/domain"
	"github.com/smallbiznis/catalog/internal/store"
	"github.com/smallbiznis/catalog/pkg/log/ctxlogger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	productKeyPrefix  = "product:"
	productKeyPattern = "product:*"
	namesKey          = "product:names"
	idsKey            = "product:ids"
	counterKey        = "product:counter"
)

func productKey(id string) string { return productKeyPrefix + id }

type repo struct {
	store store.Store
	log   *zap.Logger
}

type Params struct {
	fx.In

	Store store.Store
	Log   *zap.Logger
}

func Provide(p Params) domain.Repository {
	return &repo{
		store: p.Store,
		log:   p.Log.Named("catalog.repository"),
	}
}

// Insert writes the four structures in a fixed order: record hash, id list,
// name index, counter. The writes are independent store calls; a failure
// between steps leaves earlier writes in place until Reconcile repairs them.
func (r *repo) Insert(ctx context.Context, p *domain.Product) error {
	if err := r.store.HSet(ctx, productKey(p.ID), p.Fields()); err != nil {
		return domain.NewStorageError("write product record", err)
	}
	if err := r.store.RPush(ctx, idsKey, p.ID); err != nil {
		return domain.NewStorageError("append product id", err)
	}
	if err := r.store.HSet(ctx, namesKey, map[string]string{p.Name: p.ID}); err != nil {
		return domain.NewStorageError("index product name", err)
	}
	if _, err := r.store.Incr(ctx, counterKey); err != nil {
		return domain.NewStorageError("increment product counter", err)
	}
	return nil
}

func (r *repo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	fields, err := r.store.HGetAll(ctx, productKey(id))
	if err != nil {
		return nil, domain.NewStorageError("read product record", err)
	}

	p, err := domain.FromFields(fields)
	if err != nil {
		if errors.Is(err, domain.ErrIncompleteRecord) {
			return nil, domain.NewNotFoundError(id)
		}
		return nil, domain.NewStorageError("decode product record", err)
	}
	return p, nil
}

// FindIDByName resolves a name through the name index. An index entry whose
// record has vanished or has been renamed since is stale; it is removed and
// the name reported as unused.
func (r *repo) FindIDByName(ctx context.Context, name string) (string, error) {
	id, err := r.store.HGet(ctx, namesKey, name)
	if err != nil {
		return "", domain.NewStorageError("resolve product name", err)
	}
	if id == "" {
		return "", nil
	}

	fields, err := r.store.HGetAll(ctx, productKey(id))
	if err != nil {
		return "", domain.NewStorageError("read product record", err)
	}
	if len(fields) == 0 || fields["name"] != name {
		ctxlogger.FromContext(ctx).Warn("dropping stale name index entry",
			zap.String("name", name),
			zap.String("product_id", id),
		)
		if err := r.store.HDel(ctx, namesKey, name); err != nil {
			return "", domain.NewStorageError("drop stale name entry", err)
		}
		return "", nil
	}
	return id, nil
}

func (r *repo) Save(ctx context.Context, p *domain.Product, previousName string) error {
	if err := r.store.HSet(ctx, productKey(p.ID), p.Fields()); err != nil {
		return domain.NewStorageError("write product record", err)
	}
	if previousName != p.Name {
		if err := r.store.HDel(ctx, namesKey, previousName); err != nil {
			return domain.NewStorageError("unindex previous name", err)
		}
		if err := r.store.HSet(ctx, namesKey, map[string]string{p.Name: p.ID}); err != nil {
			return domain.NewStorageError("index product name", err)
		}
	}
	return nil
}

func (r *repo) Remove(ctx context.Context, p *domain.Product) error {
	if err := r.store.Del(ctx, productKey(p.ID)); err != nil {
		return domain.NewStorageError("delete product record", err)
	}
	if err := r.store.LRem(ctx, idsKey, p.ID); err != nil {
		return domain.NewStorageError("remove product id", err)
	}
	if err := r.store.HDel(ctx, namesKey, p.Name); err != nil {
		return domain.NewStorageError("unindex product name", err)
	}
	if _, err := r.store.Decr(ctx, counterKey); err != nil {
		return domain.NewStorageError("decrement product counter", err)
	}
	return nil
}

// FindAll materializes every live product in id-list order. Ids whose record
// has gone missing are a detected-but-tolerated inconsistency: they are
// skipped with a warning rather than failing the listing.
func (r *repo) FindAll(ctx context.Context) ([]domain.Product, error) {
	ids, err := r.store.LRange(ctx, idsKey)
	if err != nil {
		return nil, domain.NewStorageError("read product ids", err)
	}

	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		fields, err := r.store.HGetAll(ctx, productKey(id))
		if err != nil {
			return nil, domain.NewStorageError("read product record", err)
		}
		p, err := domain.FromFields(fields)
		if err != nil {
			ctxlogger.FromContext(ctx).Warn("skipping inconsistent product in id list",
				zap.String("product_id", id),
				zap.Error(err),
			)
			continue
		}
		products = append(products, *p)
	}
	return products, nil
}

func (r *repo) Count(ctx context.Context) (int64, error) {
	count, err := r.store.GetInt(ctx, counterKey)
	if err != nil {
		return 0, domain.NewStorageError("read product counter", err)
	}
	return count, nil
}

// Clear removes every key matching the product pattern, including the index
// structures. Test and seed teardown only; not safe for production use.
func (r *repo) Clear(ctx context.Context) error {
	keys, err := r.store.Keys(ctx, productKeyPattern)
	if err != nil {
		return domain.NewStorageError("scan product keys", err)
	}
	if err := r.store.Del(ctx, keys...); err != nil {
		return domain.NewStorageError("delete product keys", err)
	}
	return nil
}

// Reconcile rebuilds the name index and counter from the id list, dropping
// ids whose record no longer exists. It closes the divergence window left by
// non-transactional multi-structure writes.
func (r *repo) Reconcile(ctx context.Context) error {
	ids, err := r.store.LRange(ctx, idsKey)
	if err != nil {
		return domain.NewStorageError("read product ids", err)
	}

	names := make(map[string]string, len(ids))
	live := 0
	for _, id := range ids {
		fields, err := r.store.HGetAll(ctx, productKey(id))
		if err != nil {
			return domain.NewStorageError("read product record", err)
		}
		p, err := domain.FromFields(fields)
		if err != nil {
			ctxlogger.FromContext(ctx).Warn("dropping orphaned product id",
				zap.String("product_id", id),
				zap.Error(err),
			)
			if err := r.store.LRem(ctx, idsKey, id); err != nil {
				return domain.NewStorageError("remove orphaned id", err)
			}
			continue
		}
		names[p.Name] = p.ID
		live++
	}

	if err := r.store.Del(ctx, namesKey); err != nil {
		return domain.NewStorageError("reset name index", err)
	}
	if len(names) > 0 {
		if err := r.store.HSet(ctx, namesKey, names); err != nil {
			return domain.NewStorageError("rebuild name index", err)
		}
	}
	if err := r.store.Set(ctx, counterKey, strconv.Itoa(live)); err != nil {
		return domain.NewStorageError("reset product counter", err)
	}

	r.log.Info("catalog reconciled", zap.Int("live_products", live))
	return nil
}
