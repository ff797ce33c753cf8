package league

import "context"

type Repository interface {
	// Upsert inserts the league when the (name, season) pair is new and
	// returns the stored row either way.
	Upsert(ctx context.Context, item League) (League, error)
	GetByName(ctx context.Context, name string) (League, bool, error)
}
