package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gestao_reparos/internal/usecase"
)

var (
	ErrInvalidAmount = errors.New("amount must be a number or a string")
	ErrInvalidDate   = errors.New("date must be RFC3339 or YYYY-MM-DD")
)

// Amount is a monetary value sent either as a JSON number (1500.5) or as the
// text typed in the dashboard form ("1500,50"). The raw text is kept and
// parsed by the use case.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ErrInvalidAmount
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidAmount
	}
	*a = Amount(n.String())
	return nil
}

// Date accepts a full RFC3339 timestamp or a calendar date from a date input.
// A bare date is read as midnight UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidDate
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t.UTC()
		return nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return ErrInvalidDate
	}
	d.Time = t
	return nil
}

// CreateQuoteRequest mirrors the "Novo Orçamento" form.
type CreateQuoteRequest struct {
	ClientName  string `json:"client_name"`
	Address     string `json:"address"`
	ServiceType string `json:"service_type"`
	Value       Amount `json:"value" swaggertype:"string" example:"1500,00"`
}

func (r CreateQuoteRequest) ToInput() usecase.CreateQuoteInput {
	return usecase.CreateQuoteInput{
		ClientName:  r.ClientName,
		Address:     r.Address,
		ServiceType: r.ServiceType,
		Value:       string(r.Value),
	}
}

// AcceptQuoteRequest is optional; without a deadline the default window applies.
type AcceptQuoteRequest struct {
	Deadline Date `json:"deadline" swaggertype:"string" example:"2024-02-15"`
}
