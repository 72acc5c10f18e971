package response

import (
	"time"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/domain/estimate"
)

// ClientEstimateResponse is the snapshot served through the token surface.
// Internal bookkeeping (revision log, payments ledger, version, token) is
// withheld from clients.
type ClientEstimateResponse struct {
	EstimateNumber string `json:"estimate_number"`
	EstimateState  string `json:"estimate_state"`
	ClientState    string `json:"client_state"`

	Customer       entities.CustomerSnapshot `json:"customer"`
	ServiceAddress string                    `json:"service_address,omitempty"`

	LineItems []entities.LineItem `json:"line_items"`
	Totals    estimate.Totals     `json:"totals"`

	PaymentSchedule entities.PaymentSchedule `json:"payment_schedule"`
	ClientComments  []entities.ClientComment `json:"client_comments,omitempty"`

	ValidUntil *time.Time `json:"valid_until,omitempty"`
	SentDate   *time.Time `json:"sent_date,omitempty"`
}

func FromEstimateForClient(e entities.Estimate) ClientEstimateResponse {
	return ClientEstimateResponse{
		EstimateNumber:  e.EstimateNumber,
		EstimateState:   string(e.EstimateState),
		ClientState:     string(estimate.EffectiveClientState(&e, time.Now().UTC())),
		Customer:        e.Customer,
		ServiceAddress:  e.ServiceAddress,
		LineItems:       e.LineItems,
		Totals:          estimate.TotalsOf(&e),
		PaymentSchedule: e.PaymentSchedule,
		ClientComments:  e.ClientComments,
		ValidUntil:      e.ValidUntil,
		SentDate:        e.SentDate,
	}
}
