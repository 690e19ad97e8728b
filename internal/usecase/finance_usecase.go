package usecase

import (
	"context"
	"log"
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type RecordExpenseInput struct {
	Description string
	Value       string
}

// IFinanceUseCase exposes the financial aggregator.
//
// Every summary read loads both collections again; there are no running
// totals to keep in sync.

type IFinanceUseCase interface {
	FinancialSummary(ctx context.Context) (entities.FinancialSummary, error)
	RecordExpense(ctx context.Context, in RecordExpenseInput) (entities.Expense, error)
	ListExpenses(ctx context.Context) ([]entities.Expense, error)
	ListFinishedServices(ctx context.Context) ([]entities.FinishedService, error)
}

type FinanceUseCase struct {
	finishedRepo interfaces.IFinishedServiceRepository
	expenseRepo  interfaces.IExpenseRepository
	now          func() time.Time
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(finishedRepo interfaces.IFinishedServiceRepository, expenseRepo interfaces.IExpenseRepository) *FinanceUseCase {
	return &FinanceUseCase{finishedRepo: finishedRepo, expenseRepo: expenseRepo, now: utcNow}
}

func (u *FinanceUseCase) WithClock(now func() time.Time) *FinanceUseCase {
	u.now = now
	return u
}

func (u *FinanceUseCase) FinancialSummary(ctx context.Context) (entities.FinancialSummary, error) {
	finished, err := u.finishedRepo.List(ctx)
	if err != nil {
		return entities.FinancialSummary{}, err
	}
	expenses, err := u.expenseRepo.List(ctx)
	if err != nil {
		return entities.FinancialSummary{}, err
	}
	return entities.Summarize(finished, expenses), nil
}

func (u *FinanceUseCase) TotalRevenue(ctx context.Context) (float64, error) {
	s, err := u.FinancialSummary(ctx)
	return s.TotalRevenue, err
}

func (u *FinanceUseCase) TotalExpenses(ctx context.Context) (float64, error) {
	s, err := u.FinancialSummary(ctx)
	return s.TotalExpenses, err
}

func (u *FinanceUseCase) NetProfit(ctx context.Context) (float64, error) {
	s, err := u.FinancialSummary(ctx)
	return s.NetProfit, err
}

func (u *FinanceUseCase) AverageTicket(ctx context.Context) (float64, error) {
	s, err := u.FinancialSummary(ctx)
	return s.AverageTicket, err
}

func (u *FinanceUseCase) RecordExpense(ctx context.Context, in RecordExpenseInput) (entities.Expense, error) {
	description, err := requireText("description", in.Description)
	if err != nil {
		return entities.Expense{}, err
	}
	value, err := parseAmount("value", in.Value)
	if err != nil {
		return entities.Expense{}, err
	}

	e := entities.Expense{
		ID:          uuid.NewString(),
		Description: description,
		Value:       value,
		RecordedAt:  u.now(),
	}
	created, err := u.expenseRepo.Create(ctx, e)
	if err != nil {
		log.Printf("[finance][usecase] expense create failed err=%v", err)
		return entities.Expense{}, err
	}
	log.Printf("[finance][usecase] expense recorded expense_id=%s value=%.2f", created.ID, created.Value)
	return created, nil
}

func (u *FinanceUseCase) ListExpenses(ctx context.Context) ([]entities.Expense, error) {
	return u.expenseRepo.List(ctx)
}

func (u *FinanceUseCase) ListFinishedServices(ctx context.Context) ([]entities.FinishedService, error) {
	return u.finishedRepo.List(ctx)
}
