package interfaces

import (
	"context"
	"time"

	"gestao_reparos/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote.
//
// Lookups return a zero Quote (empty ID) and a nil error when nothing matches;
// the use case turns that into a not-found error.
//
// TransitionStatus must be atomic: the status is changed only when the stored
// value equals from. When it does not, the current quote is returned with
// ok=false so the caller can report the actual status. at becomes the new
// UpdatedAt.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.QuoteStatus, at time.Time) (q entities.Quote, ok bool, err error)
}
