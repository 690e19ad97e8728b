package response

import (
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase"
)

type FinishedServiceResponse struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id,omitempty"`
	ClientName  string    `json:"client_name"`
	ServiceType string    `json:"service_type"`
	Value       float64   `json:"value"`
	FinishedAt  time.Time `json:"finished_at"`
}

func FromFinishedService(f entities.FinishedService) FinishedServiceResponse {
	return FinishedServiceResponse{
		ID:          f.ID,
		ServiceID:   f.ServiceID,
		ClientName:  f.ClientName,
		ServiceType: string(f.ServiceType),
		Value:       f.Value,
		FinishedAt:  f.FinishedAt,
	}
}

func FromFinishedServices(list []entities.FinishedService) []FinishedServiceResponse {
	out := make([]FinishedServiceResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FromFinishedService(f))
	}
	return out
}

type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	RecordedAt  time.Time `json:"recorded_at"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Value:       e.Value,
		RecordedAt:  e.RecordedAt,
	}
}

func FromExpenses(list []entities.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromExpense(e))
	}
	return out
}

type FinancialSummaryResponse struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	AverageTicket float64 `json:"average_ticket"`
	FinishedCount int     `json:"finished_count"`
	ExpenseCount  int     `json:"expense_count"`
}

func FromFinancialSummary(s entities.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalRevenue:  s.TotalRevenue,
		TotalExpenses: s.TotalExpenses,
		NetProfit:     s.NetProfit,
		AverageTicket: s.AverageTicket,
		FinishedCount: s.FinishedCount,
		ExpenseCount:  s.ExpenseCount,
	}
}

type MonthlyRevenueResponse struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type DashboardResponse struct {
	QuotesThisMonth     int                      `json:"quotes_this_month"`
	RepairsInProgress   int                      `json:"repairs_in_progress"`
	PaintingsInProgress int                      `json:"paintings_in_progress"`
	MonthlyRevenue      []MonthlyRevenueResponse `json:"monthly_revenue"`
}

func FromDashboardStats(s usecase.DashboardStats) DashboardResponse {
	months := make([]MonthlyRevenueResponse, 0, len(s.MonthlyRevenue))
	for _, m := range s.MonthlyRevenue {
		months = append(months, MonthlyRevenueResponse{Month: m.Month, Value: m.Value})
	}
	return DashboardResponse{
		QuotesThisMonth:     s.QuotesThisMonth,
		RepairsInProgress:   s.RepairsInProgress,
		PaintingsInProgress: s.PaintingsInProgress,
		MonthlyRevenue:      months,
	}
}
