package estimate

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"contractor_crm/internal/domain/entities"
)

var (
	ErrInvalidScheduleMode = errors.New("invalid payment schedule mode")

	// ErrScheduleExceedsTotal is returned at save time when schedule entries
	// sum past 100% (percentage mode) or past the document total (amount
	// mode).
	ErrScheduleExceedsTotal = errors.New("payment schedule exceeds estimate total")
)

// ValidateSchedule enforces the save-time rule on payment schedules. An empty
// schedule is always valid.
func ValidateSchedule(s entities.PaymentSchedule, total float64) error {
	if len(s.Entries) == 0 {
		return nil
	}

	sum := decimal.Zero
	for _, entry := range s.Entries {
		sum = sum.Add(decimal.NewFromFloat(entry.Value))
	}

	switch s.Mode {
	case entities.ScheduleModePercentage:
		if sum.GreaterThan(oneHundred) {
			return fmt.Errorf("%w: entries sum to %s%%", ErrScheduleExceedsTotal, sum.String())
		}
	case entities.ScheduleModeAmount:
		if sum.GreaterThan(decimal.NewFromFloat(total)) {
			return fmt.Errorf("%w: entries sum to %s against total %.2f", ErrScheduleExceedsTotal, sum.String(), total)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidScheduleMode, s.Mode)
	}
	return nil
}
