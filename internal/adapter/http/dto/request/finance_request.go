package request

import "gestao_reparos/internal/usecase"

// FinalizeServiceRequest is optional; finished_at defaults to now.
type FinalizeServiceRequest struct {
	FinishedAt Date `json:"finished_at" swaggertype:"string" example:"2024-01-25"`
}

// RecordExpenseRequest mirrors the "Nova Despesa" form.
type RecordExpenseRequest struct {
	Description string `json:"description"`
	Value       Amount `json:"value" swaggertype:"string" example:"450"`
}

func (r RecordExpenseRequest) ToInput() usecase.RecordExpenseInput {
	return usecase.RecordExpenseInput{
		Description: r.Description,
		Value:       string(r.Value),
	}
}
