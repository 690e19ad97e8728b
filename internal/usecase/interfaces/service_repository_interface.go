package interfaces

import (
	"context"
	"gestao_reparos/internal/domain/entities"
)

// IServiceRepository abstracts persistence for in-progress Service records.
//
// Same conventions as IQuoteRepository: zero value means not found, and
// TransitionStatus is an atomic compare-and-set on the status field.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListByStatus(ctx context.Context, status entities.ServiceStatus) ([]entities.Service, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.ServiceStatus) (s entities.Service, ok bool, err error)
}
