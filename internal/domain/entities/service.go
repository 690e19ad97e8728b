package entities

import "time"

type ServiceStatus string

const (
	ServiceStatusEmAndamento ServiceStatus = "em_andamento"
	ServiceStatusFinalizado  ServiceStatus = "finalizado"
)

// Service is work in progress created when a quote is accepted.
//
// ClientName, Address, ServiceType and Value are copied from the quote at
// acceptance time and are not kept in sync afterwards.
// Urgency is intentionally absent: it depends on the current time and is
// computed on every read with ComputeUrgency.
type Service struct {
	ID          string        `json:"id"`
	QuoteID     string        `json:"quote_id"`
	ClientName  string        `json:"client_name"`
	Address     string        `json:"address"`
	ServiceType ServiceType   `json:"service_type"`
	Value       float64       `json:"value"`
	Status      ServiceStatus `json:"status"`
	StartedAt   time.Time     `json:"started_at"`
	Deadline    time.Time     `json:"deadline"`
}

// NewServiceFromQuote builds the in-progress service for an accepted quote.
func NewServiceFromQuote(id string, q Quote, startedAt, deadline time.Time) Service {
	return Service{
		ID:          id,
		QuoteID:     q.ID,
		ClientName:  q.ClientName,
		Address:     q.Address,
		ServiceType: q.ServiceType,
		Value:       q.Value,
		Status:      ServiceStatusEmAndamento,
		StartedAt:   startedAt,
		Deadline:    deadline,
	}
}

func (s Service) InProgress() bool {
	return s.Status == ServiceStatusEmAndamento
}

// FinishedService is a completed job contributing to revenue. Immutable once
// recorded. ServiceID is empty for facts imported without an originating
// service.
type FinishedService struct {
	ID          string      `json:"id"`
	ServiceID   string      `json:"service_id,omitempty"`
	ClientName  string      `json:"client_name"`
	ServiceType ServiceType `json:"service_type"`
	Value       float64     `json:"value"`
	FinishedAt  time.Time   `json:"finished_at"`
}

// Finish produces the financial fact for s.
func (s Service) Finish(id string, finishedAt time.Time) FinishedService {
	return FinishedService{
		ID:          id,
		ServiceID:   s.ID,
		ClientName:  s.ClientName,
		ServiceType: s.ServiceType,
		Value:       s.Value,
		FinishedAt:  finishedAt,
	}
}
