package request

import (
	"strings"
	"time"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/usecase"
)

type RecordPaymentRequest struct {
	Amount    float64    `json:"amount" binding:"required"`
	Date      *time.Time `json:"date"`
	Method    string     `json:"method" binding:"required"`
	Notes     string     `json:"notes"`
	CreatedBy string     `json:"created_by"`
}

func (r RecordPaymentRequest) ToCommand() usecase.RecordPaymentCommand {
	cmd := usecase.RecordPaymentCommand{
		Amount:    r.Amount,
		Method:    normalizePaymentMethod(r.Method),
		Notes:     r.Notes,
		CreatedBy: strings.TrimSpace(r.CreatedBy),
	}
	if r.Date != nil {
		cmd.Date = *r.Date
	}
	return cmd
}

// normalizePaymentMethod accepts any casing for the known methods; unknown
// values pass through for the usecase to reject.
func normalizePaymentMethod(s string) entities.PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return entities.PaymentMethodCash
	case "card":
		return entities.PaymentMethodCard
	case "online":
		return entities.PaymentMethodOnline
	case "check":
		return entities.PaymentMethodCheck
	case "other":
		return entities.PaymentMethodOther
	}
	return entities.PaymentMethod(strings.TrimSpace(s))
}
