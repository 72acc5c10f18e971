package response

import (
	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/usecase"
)

// PaymentSummaryResponse is one estimate's payment ledger plus derived
// figures.
type PaymentSummaryResponse struct {
	Payments  []entities.PaymentRecord `json:"payments"`
	TotalPaid float64                  `json:"total_paid"`
	Balance   float64                  `json:"balance"`
}

func FromPaymentSummary(s usecase.PaymentSummary) PaymentSummaryResponse {
	payments := s.Payments
	if payments == nil {
		payments = []entities.PaymentRecord{}
	}
	return PaymentSummaryResponse{
		Payments:  payments,
		TotalPaid: s.TotalPaid,
		Balance:   s.Balance,
	}
}
