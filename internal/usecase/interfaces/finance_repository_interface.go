package interfaces

import (
	"context"
	"gestao_reparos/internal/domain/entities"
)

// IFinishedServiceRepository stores the immutable revenue facts.
type IFinishedServiceRepository interface {
	Create(ctx context.Context, f entities.FinishedService) (entities.FinishedService, error)
	List(ctx context.Context) ([]entities.FinishedService, error)
}

// IExpenseRepository stores the immutable expense records.
type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
}
