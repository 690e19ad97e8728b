package memory

import (
	"context"
	"sync"
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase/interfaces"
)

// Store is the process-wide in-memory database. One RWMutex serializes all
// writes; every repository method runs its whole read-modify-write under it.
//
// Each collection is kept newest-first: Create prepends.
type Store struct {
	mu       sync.RWMutex
	quotes   []entities.Quote
	services []entities.Service
	finished []entities.FinishedService
	expenses []entities.Expense
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Quotes() *QuoteRepository { return &QuoteRepository{s: s} }

func (s *Store) Services() *ServiceRepository { return &ServiceRepository{s: s} }

func (s *Store) FinishedServices() *FinishedServiceRepository {
	return &FinishedServiceRepository{s: s}
}

func (s *Store) Expenses() *ExpenseRepository { return &ExpenseRepository{s: s} }

func prepend[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, v)
	return append(out, list...)
}

func clone[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}

type QuoteRepository struct{ s *Store }

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func (r *QuoteRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.quotes {
		if existing.ID == q.ID {
			return entities.Quote{}, ErrDuplicateID
		}
	}
	r.s.quotes = prepend(r.s.quotes, q)
	return q, nil
}

func (r *QuoteRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, q := range r.s.quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Quote{}, nil
}

func (r *QuoteRepository) List(_ context.Context) ([]entities.Quote, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return clone(r.s.quotes), nil
}

func (r *QuoteRepository) TransitionStatus(_ context.Context, id string, from, to entities.QuoteStatus, at time.Time) (entities.Quote, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.quotes {
		q := &r.s.quotes[i]
		if q.ID != id {
			continue
		}
		if q.Status != from {
			return *q, false, nil
		}
		q.Status = to
		q.UpdatedAt = at.UTC()
		return *q, true, nil
	}
	return entities.Quote{}, false, nil
}

type ServiceRepository struct{ s *Store }

var _ interfaces.IServiceRepository = (*ServiceRepository)(nil)

func (r *ServiceRepository) Create(_ context.Context, svc entities.Service) (entities.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.services {
		if existing.ID == svc.ID {
			return entities.Service{}, ErrDuplicateID
		}
	}
	r.s.services = prepend(r.s.services, svc)
	return svc, nil
}

func (r *ServiceRepository) GetByID(_ context.Context, id string) (entities.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, svc := range r.s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return entities.Service{}, nil
}

func (r *ServiceRepository) ListByStatus(_ context.Context, status entities.ServiceStatus) ([]entities.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Service, 0, len(r.s.services))
	for _, svc := range r.s.services {
		if svc.Status == status {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (r *ServiceRepository) TransitionStatus(_ context.Context, id string, from, to entities.ServiceStatus) (entities.Service, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.services {
		svc := &r.s.services[i]
		if svc.ID != id {
			continue
		}
		if svc.Status != from {
			return *svc, false, nil
		}
		svc.Status = to
		return *svc, true, nil
	}
	return entities.Service{}, false, nil
}

type FinishedServiceRepository struct{ s *Store }

var _ interfaces.IFinishedServiceRepository = (*FinishedServiceRepository)(nil)

func (r *FinishedServiceRepository) Create(_ context.Context, f entities.FinishedService) (entities.FinishedService, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.finished = prepend(r.s.finished, f)
	return f, nil
}

func (r *FinishedServiceRepository) List(_ context.Context) ([]entities.FinishedService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return clone(r.s.finished), nil
}

type ExpenseRepository struct{ s *Store }

var _ interfaces.IExpenseRepository = (*ExpenseRepository)(nil)

func (r *ExpenseRepository) Create(_ context.Context, e entities.Expense) (entities.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.expenses = prepend(r.s.expenses, e)
	return e, nil
}

func (r *ExpenseRepository) List(_ context.Context) ([]entities.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return clone(r.s.expenses), nil
}
