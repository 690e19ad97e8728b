package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:          "q-1",
		ClientName:  "João Silva",
		Address:     "Rua das Flores, 123",
		ServiceType: entities.ServiceTypeReparo,
		Value:       1500,
		Status:      entities.QuoteStatusAceito,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.ClientName != "João Silva" || res.Address != "Rua das Flores, 123" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.ServiceType != "reparo" || res.Status != "aceito" || res.Value != 1500 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	if list := FromQuotes(nil); list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", list)
	}
}

func TestFromService_NoUrgency(t *testing.T) {
	res := FromService(entities.Service{ID: "s-1", QuoteID: "q-1", Status: entities.ServiceStatusEmAndamento})
	if res.Urgency != nil {
		t.Fatalf("expected no urgency, got %+v", res.Urgency)
	}
	b, _ := json.Marshal(res)
	if strings.Contains(string(b), "urgency") {
		t.Fatalf("urgency must be omitted: %s", b)
	}
}

func TestFromTrackedServices(t *testing.T) {
	deadline := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	tracked := []usecase.TrackedService{{
		Service: entities.Service{ID: "s-4", ClientName: "Carlos Oliveira", ServiceType: entities.ServiceTypeReparo, Value: 900, Status: entities.ServiceStatusEmAndamento, Deadline: deadline},
		Urgency: entities.ComputeUrgency(deadline, deadline.Add(48*time.Hour)),
	}}

	res := FromTrackedServices(tracked)
	if len(res) != 1 || res[0].Urgency == nil {
		t.Fatalf("unexpected response: %+v", res)
	}
	u := res[0].Urgency
	if u.Kind != "overdue" || u.Days != 2 || u.DaysRemaining != -2 || u.Severity != "destructive" || u.Label != "2 dias atrasado" {
		t.Fatalf("unexpected urgency: %+v", u)
	}
	if res[0].Status != "em_andamento" || !res[0].Deadline.Equal(deadline) {
		t.Fatalf("unexpected service fields: %+v", res[0])
	}
}

func TestFromFinanceEntities(t *testing.T) {
	finished := FromFinishedServices([]entities.FinishedService{{ID: "f-1", ServiceID: "s-1", ClientName: "Ana Costa", ServiceType: entities.ServiceTypePintura, Value: 2100}})
	if len(finished) != 1 || finished[0].ServiceType != "pintura" || finished[0].ServiceID != "s-1" {
		t.Fatalf("unexpected finished services: %+v", finished)
	}

	expenses := FromExpenses([]entities.Expense{{ID: "e-1", Description: "Material de pintura", Value: 450}})
	if len(expenses) != 1 || expenses[0].Description != "Material de pintura" || expenses[0].Value != 450 {
		t.Fatalf("unexpected expenses: %+v", expenses)
	}

	summary := FromFinancialSummary(entities.FinancialSummary{TotalRevenue: 6800, TotalExpenses: 730, NetProfit: 6070, AverageTicket: 2266.67, FinishedCount: 3, ExpenseCount: 2})
	if summary.NetProfit != 6070 || summary.AverageTicket != 2266.67 || summary.FinishedCount != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestFromDashboardStats(t *testing.T) {
	res := FromDashboardStats(usecase.DashboardStats{
		QuotesThisMonth:     2,
		RepairsInProgress:   2,
		PaintingsInProgress: 3,
		MonthlyRevenue:      []usecase.MonthlyRevenue{{Month: "2024-01", Value: 6800}},
	})
	if res.QuotesThisMonth != 2 || res.RepairsInProgress != 2 || res.PaintingsInProgress != 3 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if len(res.MonthlyRevenue) != 1 || res.MonthlyRevenue[0].Month != "2024-01" || res.MonthlyRevenue[0].Value != 6800 {
		t.Fatalf("unexpected months: %+v", res.MonthlyRevenue)
	}
}
