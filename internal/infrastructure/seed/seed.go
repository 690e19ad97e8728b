package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase/interfaces"
)

// Repositories groups the stores the demo data is written to.
type Repositories struct {
	Quotes           interfaces.IQuoteRepository
	Services         interfaces.IServiceRepository
	FinishedServices interfaces.IFinishedServiceRepository
	Expenses         interfaces.IExpenseRepository
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Records are listed oldest first so that stores which keep insertion order
// still read back newest-first.

func demoQuotes() []entities.Quote {
	return []entities.Quote{
		{ID: "seed-quote-1", ClientName: "João Silva", Address: "Rua das Flores, 123", ServiceType: entities.ServiceTypeReparo, Value: 1500, Status: entities.QuoteStatusAceito, CreatedAt: day(2024, 1, 15)},
		{ID: "seed-quote-3", ClientName: "Pedro Costa", Address: "Rua do Comércio, 789", ServiceType: entities.ServiceTypeReparo, Value: 800, Status: entities.QuoteStatusRecusado, CreatedAt: day(2024, 1, 18)},
		{ID: "seed-quote-2", ClientName: "Maria Santos", Address: "Av. Central, 456", ServiceType: entities.ServiceTypePintura, Value: 3200, Status: entities.QuoteStatusPendente, CreatedAt: day(2024, 1, 20)},
	}
}

func demoServices() []entities.Service {
	return []entities.Service{
		{ID: "seed-service-3", ClientName: "Ana Costa", Address: "Rua do Sol, 321", ServiceType: entities.ServiceTypePintura, Value: 2100, StartedAt: day(2024, 1, 18), Deadline: day(2024, 2, 10)},
		{ID: "seed-service-1", QuoteID: "seed-quote-1", ClientName: "João Silva", Address: "Rua das Flores, 123", ServiceType: entities.ServiceTypeReparo, Value: 1500, StartedAt: day(2024, 1, 20), Deadline: day(2024, 2, 15)},
		{ID: "seed-service-4", ClientName: "Carlos Oliveira", Address: "Av. das Palmeiras, 654", ServiceType: entities.ServiceTypeReparo, Value: 900, StartedAt: day(2024, 1, 22), Deadline: day(2024, 2, 5)},
		{ID: "seed-service-2", ClientName: "Maria Santos", Address: "Av. Central, 456", ServiceType: entities.ServiceTypePintura, Value: 3200, StartedAt: day(2024, 1, 25), Deadline: day(2024, 2, 28)},
		{ID: "seed-service-5", ClientName: "Fernanda Lima", Address: "Rua Nova, 987", ServiceType: entities.ServiceTypePintura, Value: 4500, StartedAt: day(2024, 1, 30), Deadline: day(2024, 3, 10)},
	}
}

func demoFinishedServices() []entities.FinishedService {
	return []entities.FinishedService{
		{ID: "seed-finished-1", ClientName: "João Silva", ServiceType: entities.ServiceTypeReparo, Value: 1500, FinishedAt: day(2024, 1, 15)},
		{ID: "seed-finished-2", ClientName: "Maria Santos", ServiceType: entities.ServiceTypePintura, Value: 3200, FinishedAt: day(2024, 1, 20)},
		{ID: "seed-finished-3", ClientName: "Ana Costa", ServiceType: entities.ServiceTypePintura, Value: 2100, FinishedAt: day(2024, 1, 25)},
	}
}

func demoExpenses() []entities.Expense {
	return []entities.Expense{
		{ID: "seed-expense-1", Description: "Material de pintura", Value: 450, RecordedAt: day(2024, 1, 10)},
		{ID: "seed-expense-2", Description: "Ferramentas de reparo", Value: 280, RecordedAt: day(2024, 1, 18)},
	}
}

// Load writes the demo dataset. It does nothing when quotes already exist,
// so restarting against a durable backend does not duplicate rows.
func Load(ctx context.Context, repos Repositories) error {
	existing, err := repos.Quotes.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list quotes: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("[seed] store already has %d quotes, skipping", len(existing))
		return nil
	}

	for _, q := range demoQuotes() {
		q.UpdatedAt = q.CreatedAt
		if _, err := repos.Quotes.Create(ctx, q); err != nil {
			return fmt.Errorf("seed: quote %s: %w", q.ID, err)
		}
	}
	for _, s := range demoServices() {
		s.Status = entities.ServiceStatusEmAndamento
		if _, err := repos.Services.Create(ctx, s); err != nil {
			return fmt.Errorf("seed: service %s: %w", s.ID, err)
		}
	}
	for _, f := range demoFinishedServices() {
		if _, err := repos.FinishedServices.Create(ctx, f); err != nil {
			return fmt.Errorf("seed: finished service %s: %w", f.ID, err)
		}
	}
	for _, e := range demoExpenses() {
		if _, err := repos.Expenses.Create(ctx, e); err != nil {
			return fmt.Errorf("seed: expense %s: %w", e.ID, err)
		}
	}

	log.Printf("[seed] loaded demo data")
	return nil
}
