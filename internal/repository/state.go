package repository

import (
	"context"

	"github.com/puzpuzpuz/xsync"
)

// StateRepository holds the pending CSRF state of each tenant. At most one
// authorization is in flight per tenant: Set overwrites any previous value.
type StateRepository interface {
	Set(ctx context.Context, tenantID, state string) error

	// CheckAndClear reports whether state matches the pending value for the
	// tenant. A matching state is consumed and can never be presented again.
	CheckAndClear(ctx context.Context, tenantID, state string) (bool, error)
}

type inMemoryStateRepository struct {
	states *xsync.MapOf[string, string]
}

func NewInMemoryStateRepository() *inMemoryStateRepository {
	return &inMemoryStateRepository{states: xsync.NewMapOf[string]()}
}

func (r *inMemoryStateRepository) Set(ctx context.Context, tenantID, state string) error {
	r.states.Store(tenantID, state)
	return nil
}

func (r *inMemoryStateRepository) CheckAndClear(
	ctx context.Context, tenantID, state string,
) (bool, error) {
	pending, ok := r.states.LoadAndDelete(tenantID)
	if !ok {
		return false, nil
	}

	if pending != state {
		// A mismatch must not consume the pending state. LoadOrStore keeps a
		// newer state written by a concurrent initiate.
		r.states.LoadOrStore(tenantID, pending)
		return false, nil
	}

	return true, nil
}
