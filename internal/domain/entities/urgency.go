package entities

import (
	"math"
	"strconv"
	"time"
)

type UrgencyKind string

const (
	UrgencyOverdue  UrgencyKind = "overdue"
	UrgencyDueToday UrgencyKind = "due_today"
	UrgencyOnTrack  UrgencyKind = "on_track"
)

type Severity string

const (
	SeverityDestructive Severity = "destructive"
	SeverityWarning     Severity = "warning"
	SeverityNormal      Severity = "normal"
)

// warningWindowDays is the last stretch before a deadline flagged as warning.
const warningWindowDays = 3

const day = 24 * time.Hour

// Urgency is the deadline projection of an in-progress service at a given
// instant. DaysRemaining is negative when overdue; Days is always >= 0.
type Urgency struct {
	DaysRemaining int         `json:"days_remaining"`
	Kind          UrgencyKind `json:"kind"`
	Days          int         `json:"days"`
	Severity      Severity    `json:"severity"`
	Label         string      `json:"label"`
}

// ComputeUrgency derives the urgency of a deadline as seen at now.
//
// Days remaining are rounded up, so anything due later today or within the
// next partial day counts as 1 day left, and a deadline that passed less
// than a day ago still counts as due today.
func ComputeUrgency(deadline, now time.Time) Urgency {
	days := DaysUntil(deadline, now)

	u := Urgency{DaysRemaining: days}
	switch {
	case days < 0:
		u.Kind = UrgencyOverdue
		u.Days = -days
		u.Label = strconv.Itoa(u.Days) + " dias atrasado"
	case days == 0:
		u.Kind = UrgencyDueToday
		u.Label = "Prazo hoje"
	default:
		u.Kind = UrgencyOnTrack
		u.Days = days
		u.Label = strconv.Itoa(u.Days) + " dias restantes"
	}

	switch {
	case days < 0:
		u.Severity = SeverityDestructive
	case days <= warningWindowDays:
		u.Severity = SeverityWarning
	default:
		u.Severity = SeverityNormal
	}
	return u
}

// DaysUntil returns ceil((deadline - now) / 24h).
func DaysUntil(deadline, now time.Time) int {
	diff := deadline.Sub(now)
	d := math.Ceil(float64(diff) / float64(day))
	// math.Ceil(-0.4) is -0; normalize so it compares as zero everywhere.
	if d == 0 {
		return 0
	}
	return int(d)
}
