package domain

import "context"

// Repository is the sole owner of the four store-resident structures: the
// per-product hash, the insertion-ordered id list, the name index and the
// running counter. Successful operations leave all four consistent; the
// individual writes are not transactional, so a mid-sequence store failure
// can leave them divergent until Reconcile runs.
type Repository interface {
	// Insert writes the record and seeds the id list, name index and
	// counter. It does not check name uniqueness; the service does.
	Insert(ctx context.Context, p *Product) error

	// FindByID returns the record or a NotFound error when the hash is
	// missing or incomplete.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindIDByName resolves a live name to its product id, or "" when the
	// name is unused. Stale index entries are dropped on sight.
	FindIDByName(ctx context.Context, name string) (string, error)

	// Save rewrites the record and, when previousName differs from the
	// current name, moves the name index entry.
	Save(ctx context.Context, p *Product, previousName string) error

	// Remove deletes the record and unwinds all index structures.
	Remove(ctx context.Context, p *Product) error

	// FindAll resolves every id in the ordering list, skipping ids whose
	// record has gone missing.
	FindAll(ctx context.Context) ([]Product, error)

	// Count returns the cached counter value, which can drift until the
	// next Reconcile.
	Count(ctx context.Context) (int64, error)

	// Clear removes every product key. Test and seed teardown only.
	Clear(ctx context.Context) error

	// Reconcile rebuilds the name index and counter from the id list and
	// drops orphaned ids.
	Reconcile(ctx context.Context) error
}
