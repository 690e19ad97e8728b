package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase"
)

type ledger struct {
	quotes   *usecase.QuoteUseCase
	services *usecase.ServiceUseCase
	finance  *usecase.FinanceUseCase
}

func newLedger() ledger {
	s := NewStore()
	return ledger{
		quotes:   usecase.NewQuoteUseCase(s.Quotes(), s.Services(), nil),
		services: usecase.NewServiceUseCase(s.Services(), s.FinishedServices()),
		finance:  usecase.NewFinanceUseCase(s.FinishedServices(), s.Expenses()),
	}
}

func createQuote(t *testing.T, l ledger, client string) entities.Quote {
	t.Helper()
	q, err := l.quotes.CreateQuote(context.Background(), usecase.CreateQuoteInput{
		ClientName: client, Address: "Rua do Sol, 321", ServiceType: "pintura", Value: "2100",
	})
	if err != nil {
		t.Fatalf("create quote: %v", err)
	}
	return q
}

func TestStore_QuotesNewestFirst(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	first := createQuote(t, l, "Ana Costa")
	second := createQuote(t, l, "Pedro Costa")

	list, err := l.quotes.ListQuotes(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}
	if list[0].Status != entities.QuoteStatusPendente {
		t.Fatalf("expected pendente, got %s", list[0].Status)
	}

	again, _ := l.quotes.ListQuotes(ctx)
	if len(again) != len(list) || again[0] != list[0] || again[1] != list[1] {
		t.Fatalf("expected idempotent reads")
	}
}

func TestStore_TransitionExclusivity(t *testing.T) {
	ctx := context.Background()

	t.Run("accept then reject", func(t *testing.T) {
		l := newLedger()
		q := createQuote(t, l, "Maria Santos")
		if _, err := l.quotes.AcceptQuote(ctx, q.ID, time.Time{}); err != nil {
			t.Fatalf("accept: %v", err)
		}
		if _, err := l.quotes.RejectQuote(ctx, q.ID); !errors.Is(err, usecase.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("reject then accept", func(t *testing.T) {
		l := newLedger()
		q := createQuote(t, l, "Maria Santos")
		if _, err := l.quotes.RejectQuote(ctx, q.ID); err != nil {
			t.Fatalf("reject: %v", err)
		}
		if _, err := l.quotes.AcceptQuote(ctx, q.ID, time.Time{}); !errors.Is(err, usecase.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		services, _ := l.services.ListInProgress(ctx)
		if len(services) != 0 {
			t.Fatalf("rejected quote must not open a service, got %d", len(services))
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		l := newLedger()
		if _, err := l.quotes.AcceptQuote(ctx, "missing", time.Time{}); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestStore_AcceptProducesOneService(t *testing.T) {
	l := newLedger()
	ctx := context.Background()
	q := createQuote(t, l, "Fernanda Lima")

	before, _ := l.services.ListInProgress(ctx)
	if _, err := l.quotes.AcceptQuote(ctx, q.ID, time.Time{}); err != nil {
		t.Fatalf("accept: %v", err)
	}
	after, _ := l.services.ListInProgress(ctx)
	if len(after) != len(before)+1 {
		t.Fatalf("expected exactly one new service, got %d -> %d", len(before), len(after))
	}
	svc := after[0]
	if svc.QuoteID != q.ID || svc.Value != q.Value || svc.ClientName != q.ClientName || svc.ServiceType != q.ServiceType {
		t.Fatalf("service does not mirror quote: %+v vs %+v", svc, q)
	}
}

func TestStore_ConcurrentAcceptOnlyOneWins(t *testing.T) {
	l := newLedger()
	ctx := context.Background()
	q := createQuote(t, l, "Carlos Oliveira")

	const callers = 16
	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, err = l.quotes.AcceptQuote(ctx, q.ID, time.Time{})
			} else {
				_, err = l.quotes.RejectQuote(ctx, q.ID)
			}
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case !errors.Is(err, usecase.ErrInvalidTransition):
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one successful transition, got %d", wins)
	}
}

func TestStore_FinalizeFeedsFinance(t *testing.T) {
	l := newLedger()
	ctx := context.Background()
	q := createQuote(t, l, "Ana Costa")

	svc, err := l.quotes.AcceptQuote(ctx, q.ID, time.Time{})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := l.finance.RecordExpense(ctx, usecase.RecordExpenseInput{Description: "Material de pintura", Value: "450"}); err != nil {
		t.Fatalf("record expense: %v", err)
	}

	fact, err := l.services.FinalizeService(ctx, svc.ID, time.Time{})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if fact.Value != 2100 {
		t.Fatalf("unexpected fact: %+v", fact)
	}
	if _, err := l.services.FinalizeService(ctx, svc.ID, time.Time{}); !errors.Is(err, usecase.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on second finalize, got %v", err)
	}

	inProgress, _ := l.services.ListInProgress(ctx)
	if len(inProgress) != 0 {
		t.Fatalf("finalized service still listed: %+v", inProgress)
	}

	summary, err := l.finance.FinancialSummary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalRevenue != 2100 || summary.TotalExpenses != 450 || summary.NetProfit != 1650 || summary.AverageTicket != 2100 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestStore_ListsAreCopies(t *testing.T) {
	l := newLedger()
	ctx := context.Background()
	createQuote(t, l, "João Silva")

	list, _ := l.quotes.ListQuotes(ctx)
	list[0].Status = entities.QuoteStatusAceito

	again, _ := l.quotes.ListQuotes(ctx)
	if again[0].Status != entities.QuoteStatusPendente {
		t.Fatalf("caller mutation leaked into the store")
	}
}
