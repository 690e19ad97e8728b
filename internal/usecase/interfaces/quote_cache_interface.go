package interfaces

import (
	"context"
	"gestao_reparos/internal/domain/entities"
)

// IQuoteListCache is an optional read-through cache for the quote listing.
// GetList returns (nil, nil) on a miss.
//
// Every Invalidate bumps the generation. SetList stores the list only while
// the generation still equals the one read before the repository was queried,
// so a list read before a write can never be cached after it.

type IQuoteListCache interface {
	GetList(ctx context.Context) ([]entities.Quote, error)
	Generation(ctx context.Context) (int64, error)
	SetList(ctx context.Context, generation int64, quotes []entities.Quote) error
	Invalidate(ctx context.Context) error
}
