package response

import (
	"time"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/domain/estimate"
)

// EstimateResponse is the full aggregate view served to the contractor side.
// ClientState is the derived state: an expired validity window shows as
// "expired" regardless of what is stored.
type EstimateResponse struct {
	ID             string `json:"id"`
	EstimateNumber string `json:"estimate_number"`
	EstimateState  string `json:"estimate_state"`
	ClientState    string `json:"client_state"`

	Customer       entities.CustomerSnapshot `json:"customer"`
	ServiceAddress string                    `json:"service_address,omitempty"`

	LineItems []entities.LineItem `json:"line_items"`

	Discount     float64 `json:"discount"`
	DiscountType string  `json:"discount_type"`
	TaxRate      float64 `json:"tax_rate"`
	DepositType  string  `json:"deposit_type"`
	DepositValue float64 `json:"deposit_value"`

	Totals    estimate.Totals `json:"totals"`
	TotalPaid float64         `json:"total_paid"`
	Balance   float64         `json:"balance"`

	PaymentSchedule entities.PaymentSchedule `json:"payment_schedule"`
	Payments        []entities.PaymentRecord `json:"payments"`

	Communications []entities.CommunicationEntry `json:"communications,omitempty"`
	ClientComments []entities.ClientComment      `json:"client_comments,omitempty"`

	CurrentRevision int `json:"current_revision"`

	PurchaseOrderIDs []string `json:"purchase_order_ids,omitempty"`
	ParentEstimateID string   `json:"parent_estimate_id,omitempty"`

	SentDate  *time.Time `json:"sent_date,omitempty"`
	ViewCount int        `json:"view_count"`

	ValidUntil *time.Time `json:"valid_until,omitempty"`
	Version    int64      `json:"version"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:               e.ID,
		EstimateNumber:   e.EstimateNumber,
		EstimateState:    string(e.EstimateState),
		ClientState:      string(estimate.EffectiveClientState(&e, time.Now().UTC())),
		Customer:         e.Customer,
		ServiceAddress:   e.ServiceAddress,
		LineItems:        e.LineItems,
		Discount:         e.Discount,
		DiscountType:     string(e.DiscountType),
		TaxRate:          e.TaxRate,
		DepositType:      string(e.DepositType),
		DepositValue:     e.DepositValue,
		Totals:           estimate.TotalsOf(&e),
		TotalPaid:        e.TotalPaid(),
		Balance:          e.Balance(),
		PaymentSchedule:  e.PaymentSchedule,
		Payments:         e.Payments,
		Communications:   e.Communications,
		ClientComments:   e.ClientComments,
		CurrentRevision:  e.CurrentRevision,
		PurchaseOrderIDs: e.PurchaseOrderIDs,
		ParentEstimateID: e.ParentEstimateID,
		SentDate:         e.SentDate,
		ViewCount:        e.ViewCount,
		ValidUntil:       e.ValidUntil,
		Version:          e.Version,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}

// PreparedEstimateResponse is the send endpoint's answer; the token lets a
// caller that dispatches its own email build the client review link.
type PreparedEstimateResponse struct {
	Estimate EstimateResponse `json:"estimate"`
	Token    string           `json:"token"`
}

// PurchaseOrderResponse links the generated PO id to the updated aggregate.
type PurchaseOrderResponse struct {
	Estimate        EstimateResponse `json:"estimate"`
	PurchaseOrderID string           `json:"purchase_order_id"`
}
