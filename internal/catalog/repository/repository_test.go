package repository

import (
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/catalog/internal/catalog/domain"
	"github.com/smallbiznis/catalog/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) (*repo, *store.MemoryStore) {
	t.Helper()

	mem := store.NewMemoryStore()
	r := &repo{store: mem, log: zap.NewNop()}
	return r, mem
}

func newProduct(t *testing.T, name string, price float64) *domain.Product {
	t.Helper()

	desc := "a description long enough"
	qty := 3.0
	p := domain.New(domain.CreateProductRequest{
		Name:        &name,
		Description: &desc,
		Price:       &price,
		Qty:         &qty,
	}, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	return p
}

func TestInsert_WritesAllFourStructures(t *testing.T) {
	r, mem := newTestRepo(t)
	ctx := context.Background()

	p := newProduct(t, "Widget", 19.99)
	require.NoError(t, r.Insert(ctx, p))

	fields, err := mem.HGetAll(ctx, productKey(p.ID))
	require.NoError(t, err)
	assert.Equal(t, "Widget", fields["name"])
	assert.Equal(t, "19.99", fields["price"])

	ids, err := mem.LRange(ctx, idsKey)
	require.NoError(t, err)
	assert.Equal(t, []string{p.ID}, ids)

	id, err := mem.HGet(ctx, namesKey, "Widget")
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)

	count, err := mem.GetInt(ctx, counterKey)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFindByID_RoundTrip(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	p := newProduct(t, "Widget", 19.99)
	require.NoError(t, r.Insert(ctx, p))

	found, err := r.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
	assert.Equal(t, p.Name, found.Name)
	assert.Equal(t, p.Price, found.Price)
}

func TestFindByID_MissingIsNotFound(t *testing.T) {
	r, _ := newTestRepo(t)

	_, err := r.FindByID(context.Background(), "f47ac10b-58cc-4372-a567-0e02b2c3d479")
	assert.True(t, domain.IsNotFound(err))
}

func TestFindIDByName_DropsStaleEntry(t *testing.T) {
	r, mem := newTestRepo(t)
	ctx := context.Background()

	p := newProduct(t, "Widget", 19.99)
	require.NoError(t, r.Insert(ctx, p))

	// Simulate a crash between deleting the record and cleaning the index.
	require.NoError(t, mem.Del(ctx, productKey(p.ID)))

	id, err := r.FindIDByName(ctx, "Widget")
	require.NoError(t, err)
	assert.Empty(t, id)

	// The stale entry is gone for good.
	raw, err := mem.HGet(ctx, namesKey, "Widget")
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestSave_MovesNameIndexOnRename(t *testing.T) {
	r, mem := newTestRepo(t)
	ctx := context.Background()

	p := newProduct(t, "Widget", 19.99)
	require.NoError(t, r.Insert(ctx, p))

	previous := p.Name
	p.Name = "Gadget"
	require.NoError(t, r.Save(ctx, p, previous))

	old, err := mem.HGet(ctx, namesKey, "Widget")
	require.NoError(t, err)
	assert.Empty(t, old)

	id, err := mem.HGet(ctx, namesKey, "Gadget")
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)
}

func TestRemove_CleansAllFourStructures(t *testing.T) {
	r, mem := newTestRepo(t)
	ctx := context.Background()

	p := newProduct(t, "Widget", 19.99)
	require.NoError(t, r.Insert(ctx, p))
	require.NoError(t, r.Remove(ctx, p))

	fields, err := mem.HGetAll(ctx, productKey(p.ID))
	require.NoError(t, err)
	assert.Empty(t, fields)

	ids, err := mem.LRange(ctx, idsKey)
	require.NoError(t, err)
	assert.Empty(t, ids)

	id, err := mem.HGet(ctx, namesKey, "Widget")
	require.NoError(t, err)
	assert.Empty(t, id)

	count, err := mem.GetInt(ctx, counterKey)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestFindAll_PreservesInsertionOrder(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	names := []string{"Alpha", "Bravo", "Charlie"}
	for _, name := range names {
		require.NoError(t, r.Insert(ctx, newProduct(t, name, 10)))
	}

	products, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i, name := range names {
		assert.Equal(t, name, products[i].Name)
	}
}

func TestFindAll_SkipsOrphanedIDs(t *testing.T) {
	r, mem := newTestRepo(t)
	ctx := context.Background()

	keep := newProduct(t, "Keep", 10)
	lose := newProduct(t, "Lose", 20)
	require.NoError(t, r.Insert(ctx, keep))
	require.NoError(t, r.Insert(ctx, lose))

	require.NoError(t, mem.Del(ctx, productKey(lose.ID)))

	products, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Keep", products[0].Name)
}

func TestReconcile_RepairsIndexesAndCounter(t *testing.T) {
	r, mem := newTestRepo(t)
	ctx := context.Background()

	keep := newProduct(t, "Keep", 10)
	lose := newProduct(t, "Lose", 20)
	require.NoError(t, r.Insert(ctx, keep))
	require.NoError(t, r.Insert(ctx, lose))

	// Orphan one record and corrupt the counter.
	require.NoError(t, mem.Del(ctx, productKey(lose.ID)))
	require.NoError(t, mem.Set(ctx, counterKey, "99"))

	require.NoError(t, r.Reconcile(ctx))

	ids, err := mem.LRange(ctx, idsKey)
	require.NoError(t, err)
	assert.Equal(t, []string{keep.ID}, ids)

	stale, err := mem.HGet(ctx, namesKey, "Lose")
	require.NoError(t, err)
	assert.Empty(t, stale)

	count, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestClear_RemovesEverything(t *testing.T) {
	r, mem := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, newProduct(t, "Widget", 19.99)))
	require.NoError(t, r.Clear(ctx))

	keys, err := mem.Keys(ctx, productKeyPattern)
	require.NoError(t, err)
	assert.Empty(t, keys)

	count, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
