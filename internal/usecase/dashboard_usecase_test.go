package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_reparos/internal/domain/entities"
	mock_interfaces "gestao_reparos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Stats(t *testing.T) {
	t.Run("quote repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewDashboardUseCase(quotes, nil, nil, 0)

		quotes.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Stats(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		finished := mock_interfaces.NewMockIFinishedServiceRepository(ctrl)
		uc := NewDashboardUseCase(quotes, services, finished, 3).WithClock(fixedClock)

		quotes.EXPECT().List(gomock.Any()).Return([]entities.Quote{
			{ID: "q-5", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "q-4", CreatedAt: time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)},
			{ID: "q-3", CreatedAt: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)},
			{ID: "q-2", CreatedAt: time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)},
			{ID: "q-1", CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		}, nil)
		services.EXPECT().ListByStatus(gomock.Any(), entities.ServiceStatusEmAndamento).Return([]entities.Service{
			{ServiceType: entities.ServiceTypeReparo},
			{ServiceType: entities.ServiceTypeReparo},
			{ServiceType: entities.ServiceTypePintura},
		}, nil)
		finished.EXPECT().List(gomock.Any()).Return([]entities.FinishedService{
			{Value: 1500, FinishedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
			{Value: 3200, FinishedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
			{Value: 700, FinishedAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)},
			{Value: 999, FinishedAt: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

		stats, err := uc.Stats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.QuotesThisMonth != 2 {
			t.Fatalf("expected 2 quotes this month, got %d", stats.QuotesThisMonth)
		}
		if stats.RepairsInProgress != 2 || stats.PaintingsInProgress != 1 {
			t.Fatalf("unexpected in-progress counts: %+v", stats)
		}
		want := []MonthlyRevenue{{Month: "2023-12", Value: 0}, {Month: "2024-01", Value: 4700}, {Month: "2024-02", Value: 700}}
		if len(stats.MonthlyRevenue) != len(want) {
			t.Fatalf("unexpected months: %+v", stats.MonthlyRevenue)
		}
		for i := range want {
			if stats.MonthlyRevenue[i] != want[i] {
				t.Fatalf("month %d: expected %+v, got %+v", i, want[i], stats.MonthlyRevenue[i])
			}
		}
	})
}
