package entities

import "time"

// EstimateState represents the internal document type of an estimate as it
// evolves from a priced proposal into an invoice or change order.
//
// Domain notes:
//   - Transitions are monotonic along a single directed graph; there is no
//     path back to draft.
//   - State legality is enforced by the estimate domain package, never by
//     callers.

type EstimateState string

const (
	EstimateStateDraft       EstimateState = "draft"
	EstimateStateEstimate    EstimateState = "estimate"
	EstimateStateInvoice     EstimateState = "invoice"
	EstimateStateChangeOrder EstimateState = "change-order"
)

// ClientState is the customer-facing engagement status, independent of the
// internal estimate type. The zero value means the client has not been
// contacted yet.
//
// ClientStateExpired is derived at read time from ValidUntil and is never
// persisted.

type ClientState string

const (
	ClientStateNone     ClientState = ""
	ClientStateSent     ClientState = "sent"
	ClientStateViewed   ClientState = "viewed"
	ClientStateAccepted ClientState = "accepted"
	ClientStateDenied   ClientState = "denied"
	ClientStateOnHold   ClientState = "on-hold"
	ClientStateExpired  ClientState = "expired"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeAmount     DiscountType = "amount"
)

type DepositType string

const (
	DepositTypeNone       DepositType = "none"
	DepositTypePercentage DepositType = "percentage"
	DepositTypeAmount     DepositType = "amount"
)

// CustomerSnapshot is the customer contact data frozen onto the estimate at
// creation time. The CRM customer record may change afterwards; the document
// keeps what it was quoted against.
type CustomerSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// CommunicationEntry records one outbound send attempt. Append-only.
type CommunicationEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	SentBy  string    `json:"sent_by,omitempty"`
}

// ClientComment is a comment left through the client-facing token view.
// Append-only.
type ClientComment struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	AuthorName string    `json:"author_name"`
	Message    string    `json:"message"`
}

// Estimate is the aggregate persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (email_token-index): email_token
//   - GSI2 (record_type-estimate_number-index): ordered listing by number
//   - version attribute guards every read-modify-write (conditional put)
//
// Monetary representation:
//   - Amounts are float64 at the aggregate/JSON boundary; all derivation of
//     totals goes through the decimal-based calculator in domain/estimate.

type Estimate struct {
	ID             string        `json:"id"`
	EstimateNumber string        `json:"estimate_number"`
	EstimateState  EstimateState `json:"estimate_state"`
	ClientState    ClientState   `json:"client_state"`

	Customer       CustomerSnapshot `json:"customer"`
	ServiceAddress string           `json:"service_address,omitempty"`

	LineItems []LineItem `json:"line_items"`

	Discount     float64      `json:"discount"`
	DiscountType DiscountType `json:"discount_type"`
	TaxRate      float64      `json:"tax_rate"`
	DepositType  DepositType  `json:"deposit_type"`
	DepositValue float64      `json:"deposit_value"`

	PaymentSchedule PaymentSchedule `json:"payment_schedule"`
	Payments        []PaymentRecord `json:"payments"`

	Communications []CommunicationEntry `json:"communications,omitempty"`
	ClientComments []ClientComment      `json:"client_comments,omitempty"`

	RevisionsHistory []Revision `json:"revisions_history"`
	CurrentRevision  int        `json:"current_revision"`

	PurchaseOrderIDs []string `json:"purchase_order_ids,omitempty"`
	ParentEstimateID string   `json:"parent_estimate_id,omitempty"`

	EmailToken string     `json:"email_token,omitempty"`
	SentDate   *time.Time `json:"sent_date,omitempty"`
	ViewCount  int        `json:"view_count"`

	Total      float64    `json:"total"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`

	// Version is the optimistic-concurrency counter used by the repository's
	// conditional writes. It is not part of the document's business state.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindLineItem returns a pointer into LineItems for the given id, or nil.
func (e *Estimate) FindLineItem(id string) *LineItem {
	for i := range e.LineItems {
		if e.LineItems[i].ID == id {
			return &e.LineItems[i]
		}
	}
	return nil
}

// FindPayment returns a pointer into Payments for the given id, or nil.
func (e *Estimate) FindPayment(id string) *PaymentRecord {
	for i := range e.Payments {
		if e.Payments[i].ID == id {
			return &e.Payments[i]
		}
	}
	return nil
}
