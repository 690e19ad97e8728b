package usecase

import (
	"context"
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase/interfaces"
)

const DefaultDashboardMonths = 6

// MonthlyRevenue is the revenue of finished services in one calendar month.
type MonthlyRevenue struct {
	Month string  `json:"month"` // YYYY-MM
	Value float64 `json:"value"`
}

type DashboardStats struct {
	QuotesThisMonth     int              `json:"quotes_this_month"`
	RepairsInProgress   int              `json:"repairs_in_progress"`
	PaintingsInProgress int              `json:"paintings_in_progress"`
	MonthlyRevenue      []MonthlyRevenue `json:"monthly_revenue"`
}

type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type DashboardUseCase struct {
	quoteRepo    interfaces.IQuoteRepository
	serviceRepo  interfaces.IServiceRepository
	finishedRepo interfaces.IFinishedServiceRepository
	months       int
	now          func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(quoteRepo interfaces.IQuoteRepository, serviceRepo interfaces.IServiceRepository, finishedRepo interfaces.IFinishedServiceRepository, months int) *DashboardUseCase {
	if months <= 0 {
		months = DefaultDashboardMonths
	}
	return &DashboardUseCase{
		quoteRepo:    quoteRepo,
		serviceRepo:  serviceRepo,
		finishedRepo: finishedRepo,
		months:       months,
		now:          utcNow,
	}
}

func (u *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	u.now = now
	return u
}

func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	quotes, err := u.quoteRepo.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	services, err := u.serviceRepo.ListByStatus(ctx, entities.ServiceStatusEmAndamento)
	if err != nil {
		return DashboardStats{}, err
	}
	finished, err := u.finishedRepo.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	now := u.now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	nextMonth := currentMonth.AddDate(0, 1, 0)

	var stats DashboardStats
	for _, q := range quotes {
		created := q.CreatedAt.UTC()
		if !created.Before(currentMonth) && created.Before(nextMonth) {
			stats.QuotesThisMonth++
		}
	}
	for _, s := range services {
		switch s.ServiceType {
		case entities.ServiceTypeReparo:
			stats.RepairsInProgress++
		case entities.ServiceTypePintura:
			stats.PaintingsInProgress++
		}
	}
	stats.MonthlyRevenue = monthlyRevenue(finished, currentMonth, u.months)
	return stats, nil
}

// monthlyRevenue buckets finished services into the `months` calendar months
// ending at current, oldest first. Empty months are reported as zero.
func monthlyRevenue(finished []entities.FinishedService, current time.Time, months int) []MonthlyRevenue {
	out := make([]MonthlyRevenue, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		key := current.AddDate(0, i-months+1, 0).Format("2006-01")
		out[i] = MonthlyRevenue{Month: key}
		index[key] = i
	}
	for _, f := range finished {
		if i, ok := index[f.FinishedAt.UTC().Format("2006-01")]; ok {
			out[i].Value += f.Value
		}
	}
	for i := range out {
		out[i].Value = entities.RoundCents(out[i].Value)
	}
	return out
}
