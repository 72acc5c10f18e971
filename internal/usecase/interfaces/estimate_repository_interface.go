package interfaces

import (
	"context"
	"errors"

	"contractor_crm/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the conditional write loses an
// optimistic-concurrency race. Callers retry at their discretion; the engine
// never merges silently.
var ErrVersionConflict = errors.New("estimate was modified concurrently")

// IEstimateRepository abstracts DynamoDB persistence for the Estimate
// aggregate.
//
// Contract notes:
//   - Get* return a zero-value Estimate (ID == "") when nothing matches.
//   - Update is a conditional write keyed on expectedVersion; every mutation
//     of the engine goes through it so revision counters stay gap-free and
//     the accepted-lock guard cannot be raced past.
//   - ListOrderedByNumber returns estimates ordered by estimate number,
//     ascending.
//   - NextSequence atomically advances the per-year numbering counter.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByToken(ctx context.Context, token string) (entities.Estimate, error)
	ListOrderedByNumber(ctx context.Context) ([]entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate, expectedVersion int64) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	NextSequence(ctx context.Context, year int) (int, error)
}
