package entities

import "time"

// ScheduleMode determines how schedule entry values are interpreted:
// percentages of the total, or absolute amounts.

type ScheduleMode string

const (
	ScheduleModePercentage ScheduleMode = "percentage"
	ScheduleModeAmount     ScheduleMode = "amount"
)

type ScheduleEntry struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Value       float64    `json:"value"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// PaymentSchedule is a planned breakdown of when portions of the total are
// due. The entries' sum must not exceed the total (amount mode) or 100
// (percentage mode); that rule is enforced at save time by the engine, not by
// this type.
type PaymentSchedule struct {
	Mode    ScheduleMode    `json:"mode,omitempty"`
	Entries []ScheduleEntry `json:"entries,omitempty"`
}
