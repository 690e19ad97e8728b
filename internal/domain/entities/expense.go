package entities

import "time"

// Expense is a recorded business cost. There is no update or delete.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	RecordedAt  time.Time `json:"recorded_at"`
}
