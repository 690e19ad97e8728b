package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Transitions:
//   - pendente -> aceito   (creates a Service)
//   - pendente -> recusado
//
// aceito and recusado are terminal for the quote itself; the work that follows
// an acceptance is tracked by Service.

type QuoteStatus string

const (
	QuoteStatusPendente QuoteStatus = "pendente"
	QuoteStatusAceito   QuoteStatus = "aceito"
	QuoteStatusRecusado QuoteStatus = "recusado"
)

// ServiceType is the kind of job a quote or service refers to.
type ServiceType string

const (
	ServiceTypeReparo  ServiceType = "reparo"
	ServiceTypePintura ServiceType = "pintura"
)

// Valid reports whether t is one of the supported job kinds.
func (t ServiceType) Valid() bool {
	return t == ServiceTypeReparo || t == ServiceTypePintura
}

// Quote is a price proposal for a repair or painting job.
type Quote struct {
	ID          string      `json:"id"`
	ClientName  string      `json:"client_name"`
	Address     string      `json:"address"`
	ServiceType ServiceType `json:"service_type"`
	Value       float64     `json:"value"`
	Status      QuoteStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// IsPending reports whether the quote still accepts a decision.
func (q Quote) IsPending() bool {
	return q.Status == QuoteStatusPendente
}
