package request

import (
	"strings"
	"time"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/usecase"
)

type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateEstimateRequest creates a new draft document. The customer block is
// snapshotted onto the estimate; at least a name or an email is required,
// which the usecase enforces.
type CreateEstimateRequest struct {
	Customer       CustomerRequest `json:"customer"`
	ServiceAddress string          `json:"service_address"`
	TaxRate        float64         `json:"tax_rate"`
	ValidUntil     *time.Time      `json:"valid_until"`
}

func (r CreateEstimateRequest) ToCommand() usecase.CreateEstimateCommand {
	return usecase.CreateEstimateCommand{
		Customer: entities.CustomerSnapshot{
			Name:  strings.TrimSpace(r.Customer.Name),
			Email: strings.TrimSpace(r.Customer.Email),
			Phone: strings.TrimSpace(r.Customer.Phone),
		},
		ServiceAddress: r.ServiceAddress,
		TaxRate:        r.TaxRate,
		ValidUntil:     r.ValidUntil,
	}
}

type ScheduleEntryRequest struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Value       float64    `json:"value"`
	DueDate     *time.Time `json:"due_date"`
}

type PaymentScheduleRequest struct {
	Mode    string                 `json:"mode"`
	Entries []ScheduleEntryRequest `json:"entries"`
}

// UpdateFinancialsRequest is a partial update; absent fields stay untouched.
type UpdateFinancialsRequest struct {
	Discount        *float64                `json:"discount"`
	DiscountType    *string                 `json:"discount_type"`
	TaxRate         *float64                `json:"tax_rate"`
	DepositType     *string                 `json:"deposit_type"`
	DepositValue    *float64                `json:"deposit_value"`
	PaymentSchedule *PaymentScheduleRequest `json:"payment_schedule"`
	ValidUntil      *time.Time              `json:"valid_until"`
	ModifiedBy      string                  `json:"modified_by"`
}

func (r UpdateFinancialsRequest) ToCommand() usecase.UpdateFinancialsCommand {
	cmd := usecase.UpdateFinancialsCommand{
		Discount:     r.Discount,
		TaxRate:      r.TaxRate,
		DepositValue: r.DepositValue,
		ValidUntil:   r.ValidUntil,
		ModifiedBy:   strings.TrimSpace(r.ModifiedBy),
	}
	if r.DiscountType != nil {
		dt := entities.DiscountType(*r.DiscountType)
		cmd.DiscountType = &dt
	}
	if r.DepositType != nil {
		dt := entities.DepositType(*r.DepositType)
		cmd.DepositType = &dt
	}
	if r.PaymentSchedule != nil {
		s := entities.PaymentSchedule{Mode: entities.ScheduleMode(r.PaymentSchedule.Mode)}
		for _, entry := range r.PaymentSchedule.Entries {
			s.Entries = append(s.Entries, entities.ScheduleEntry{
				ID:          entry.ID,
				Description: entry.Description,
				Value:       entry.Value,
				DueDate:     entry.DueDate,
			})
		}
		cmd.PaymentSchedule = &s
	}
	return cmd
}
