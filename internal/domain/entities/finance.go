package entities

import "math"

// FinancialSummary aggregates revenue and costs. Values are rounded to cents.
type FinancialSummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	AverageTicket float64 `json:"average_ticket"`
	FinishedCount int     `json:"finished_count"`
	ExpenseCount  int     `json:"expense_count"`
}

// Summarize computes the summary from full snapshots of both collections.
// It keeps no state between calls.
func Summarize(finished []FinishedService, expenses []Expense) FinancialSummary {
	revenue := TotalRevenue(finished)
	costs := TotalExpenses(expenses)
	return FinancialSummary{
		TotalRevenue:  RoundCents(revenue),
		TotalExpenses: RoundCents(costs),
		NetProfit:     RoundCents(revenue - costs),
		AverageTicket: RoundCents(AverageTicket(finished)),
		FinishedCount: len(finished),
		ExpenseCount:  len(expenses),
	}
}

func TotalRevenue(finished []FinishedService) float64 {
	total := 0.0
	for _, f := range finished {
		total += f.Value
	}
	return total
}

func TotalExpenses(expenses []Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += e.Value
	}
	return total
}

// AverageTicket is revenue per finished service, 0 when there are none.
func AverageTicket(finished []FinishedService) float64 {
	if len(finished) == 0 {
		return 0
	}
	return TotalRevenue(finished) / float64(len(finished))
}

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
