package estimate

import (
	"errors"
	"fmt"
	"time"

	"contractor_crm/internal/domain/entities"
)

// Sentinel errors for rejected transitions and guard violations. The usecase
// layer surfaces these unchanged so every caller (API, script, test harness)
// gets the same rules.
var (
	// ErrLineItemsLocked is returned for any ledger mutation once the client
	// accepted the document or it became an invoice. Further scope changes go
	// through a change order.
	ErrLineItemsLocked = errors.New("line items are locked")

	// ErrInvalidTransition is the base error for every rejected state change.
	ErrInvalidTransition = errors.New("invalid state transition")
)

func transitionErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransition, fmt.Sprintf(format, args...))
}

// CanMutateLineItems is the guard every ledger mutation entry point must pass.
// Violations are rejected preconditions, never silent no-ops.
func CanMutateLineItems(e *entities.Estimate) error {
	if e.ClientState == entities.ClientStateAccepted {
		return fmt.Errorf("%w: client already accepted", ErrLineItemsLocked)
	}
	if e.EstimateState == entities.EstimateStateInvoice {
		return fmt.Errorf("%w: document is an invoice", ErrLineItemsLocked)
	}
	return nil
}

// PrepareForSending moves a draft to estimate and stamps a fresh email token.
// Re-preparing an already-sendable document only rotates the token.
func PrepareForSending(e *entities.Estimate, token string) error {
	if e.EstimateState == entities.EstimateStateInvoice {
		return transitionErr("cannot prepare an invoice for sending")
	}
	if e.EstimateState == entities.EstimateStateDraft {
		e.EstimateState = entities.EstimateStateEstimate
	}
	e.EmailToken = token
	return nil
}

// RecordSent marks the document as sent to the client and stamps the send
// date. Only estimates and change orders that have not progressed past "sent"
// qualify; a viewed or decided document never reverts.
func RecordSent(e *entities.Estimate, now time.Time) error {
	switch e.EstimateState {
	case entities.EstimateStateEstimate, entities.EstimateStateChangeOrder:
	default:
		return transitionErr("cannot record sent from estimate state %q", e.EstimateState)
	}
	switch e.ClientState {
	case entities.ClientStateNone, entities.ClientStateSent:
	default:
		return transitionErr("cannot record sent from client state %q", e.ClientState)
	}
	e.ClientState = entities.ClientStateSent
	e.SentDate = &now
	return nil
}

// RecordViewed handles a token-based client view: every view bumps the
// counter, the first view after a recorded send moves sent to viewed, and the
// client state never moves backwards. A view before the send is recorded
// leaves the state alone.
func RecordViewed(e *entities.Estimate) {
	e.ViewCount++
	if e.ClientState == entities.ClientStateSent {
		e.ClientState = entities.ClientStateViewed
	}
}

// RecordClientDecision applies the client's accept/deny/hold decision. A
// decision requires the client to have seen the document (or to be revisiting
// an on-hold one).
func RecordClientDecision(e *entities.Estimate, decision entities.ClientState) error {
	switch decision {
	case entities.ClientStateAccepted, entities.ClientStateDenied, entities.ClientStateOnHold:
	default:
		return transitionErr("%q is not a client decision", decision)
	}
	switch e.ClientState {
	case entities.ClientStateViewed, entities.ClientStateOnHold:
	default:
		return transitionErr("cannot decide from client state %q", e.ClientState)
	}
	e.ClientState = decision
	return nil
}

// ConvertToInvoice turns an accepted estimate into an invoice. The document is
// mutated in place; it keeps its number and revision log, and its line items
// become permanently locked.
func ConvertToInvoice(e *entities.Estimate) error {
	if e.EstimateState != entities.EstimateStateEstimate {
		return transitionErr("only an estimate can become an invoice, got %q", e.EstimateState)
	}
	if e.ClientState != entities.ClientStateAccepted {
		return transitionErr("estimate must be accepted, got client state %q", e.ClientState)
	}
	e.EstimateState = entities.EstimateStateInvoice
	return nil
}

// NewChangeOrder derives a new change-order document from an accepted
// estimate. The source is not mutated: the new document copies the current
// line items (with fresh row ids from newID), carries the source's financial
// settings, and points back via ParentEstimateID.
func NewChangeOrder(src *entities.Estimate, id, number string, newID func() string, now time.Time) (entities.Estimate, error) {
	if src.EstimateState != entities.EstimateStateEstimate {
		return entities.Estimate{}, transitionErr("only an estimate can spawn a change order, got %q", src.EstimateState)
	}
	if src.ClientState != entities.ClientStateAccepted {
		return entities.Estimate{}, transitionErr("estimate must be accepted, got client state %q", src.ClientState)
	}

	items := make([]entities.LineItem, len(src.LineItems))
	copy(items, src.LineItems)
	for i := range items {
		items[i].ID = newID()
	}

	co := entities.Estimate{
		ID:               id,
		EstimateNumber:   number,
		EstimateState:    entities.EstimateStateChangeOrder,
		ClientState:      entities.ClientStateNone,
		Customer:         src.Customer,
		ServiceAddress:   src.ServiceAddress,
		LineItems:        items,
		Discount:         src.Discount,
		DiscountType:     src.DiscountType,
		TaxRate:          src.TaxRate,
		DepositType:      entities.DepositTypeNone,
		ParentEstimateID: src.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	co.Total = TotalsOf(&co).Total
	return co, nil
}

// IsExpired reports whether a non-invoice document has outlived its validity.
// Expiry is a read-time check, not a stored transition; no data is destroyed.
func IsExpired(e *entities.Estimate, now time.Time) bool {
	if e.EstimateState == entities.EstimateStateInvoice {
		return false
	}
	return e.ValidUntil != nil && e.ValidUntil.Before(now)
}

// EffectiveClientState is the client state reported to readers, with the
// derived expired status layered on top of the stored value.
func EffectiveClientState(e *entities.Estimate, now time.Time) entities.ClientState {
	if IsExpired(e, now) {
		return entities.ClientStateExpired
	}
	return e.ClientState
}
