package response

import (
	"time"

	"gestao_reparos/internal/domain/entities"
	"gestao_reparos/internal/usecase"
)

type QuoteResponse struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	Address     string    `json:"address"`
	ServiceType string    `json:"service_type"`
	Value       float64   `json:"value"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		ClientName:  q.ClientName,
		Address:     q.Address,
		ServiceType: string(q.ServiceType),
		Value:       q.Value,
		Status:      string(q.Status),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

type UrgencyResponse struct {
	DaysRemaining int    `json:"days_remaining"`
	Kind          string `json:"kind"`
	Days          int    `json:"days"`
	Severity      string `json:"severity"`
	Label         string `json:"label"`
}

// ServiceResponse carries urgency only on tracker listings; the service
// returned by an acceptance has none.
type ServiceResponse struct {
	ID          string           `json:"id"`
	QuoteID     string           `json:"quote_id"`
	ClientName  string           `json:"client_name"`
	Address     string           `json:"address"`
	ServiceType string           `json:"service_type"`
	Value       float64          `json:"value"`
	Status      string           `json:"status"`
	StartedAt   time.Time        `json:"started_at"`
	Deadline    time.Time        `json:"deadline"`
	Urgency     *UrgencyResponse `json:"urgency,omitempty"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		QuoteID:     s.QuoteID,
		ClientName:  s.ClientName,
		Address:     s.Address,
		ServiceType: string(s.ServiceType),
		Value:       s.Value,
		Status:      string(s.Status),
		StartedAt:   s.StartedAt,
		Deadline:    s.Deadline,
	}
}

func FromTrackedService(t usecase.TrackedService) ServiceResponse {
	res := FromService(t.Service)
	res.Urgency = &UrgencyResponse{
		DaysRemaining: t.Urgency.DaysRemaining,
		Kind:          string(t.Urgency.Kind),
		Days:          t.Urgency.Days,
		Severity:      string(t.Urgency.Severity),
		Label:         t.Urgency.Label,
	}
	return res
}

func FromTrackedServices(services []usecase.TrackedService) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromTrackedService(s))
	}
	return out
}
