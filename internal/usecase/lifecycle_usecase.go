package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/domain/estimate"
	"contractor_crm/internal/infrastructure/observability"
	"contractor_crm/internal/usecase/interfaces"
)

// SendEstimateCommand dispatches the document to the client and, on success,
// records the send.
type SendEstimateCommand struct {
	RecipientEmail string
	RecipientName  string
	Subject        string
	Message        string
	CC             []string
	SentBy         string
}

// PrepareForSending rotates the estimate's opaque email token and, for a
// draft, promotes it to a proper estimate. The client state stays untouched
// until RecordSent: the caller owns the actual dispatch.
func (u *EstimateUseCase) PrepareForSending(ctx context.Context, id, contractorEmail string) (entities.Estimate, string, error) {
	if strings.TrimSpace(contractorEmail) == "" {
		return entities.Estimate{}, "", ErrMissingRecipient
	}

	var token string
	updated, err := u.mutate(ctx, id, func(e *entities.Estimate) error {
		token = u.newID()
		return estimate.PrepareForSending(e, token)
	})
	if err != nil {
		return entities.Estimate{}, "", err
	}
	log.Printf("[estimate][usecase] prepared for sending id=%s state=%s", updated.ID, updated.EstimateState)
	return updated, token, nil
}

// RecordSent stamps the sent date after the caller dispatched the email.
func (u *EstimateUseCase) RecordSent(ctx context.Context, id string) (entities.Estimate, error) {
	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		return estimate.RecordSent(e, u.now())
	})
}

// SendEstimate is the full coordinator: prepare, dispatch through the email
// collaborator, then record the send and log the communication. The prepared
// token survives a dispatch failure; only the sent state does not advance.
func (u *EstimateUseCase) SendEstimate(ctx context.Context, id string, cmd SendEstimateCommand) (entities.Estimate, error) {
	cmd.RecipientEmail = strings.TrimSpace(cmd.RecipientEmail)
	if cmd.RecipientEmail == "" {
		return entities.Estimate{}, ErrMissingRecipient
	}
	if u.email == nil {
		return entities.Estimate{}, fmt.Errorf("%w: email dispatcher not configured", ErrEmailDispatchFailed)
	}

	prepared, token, err := u.PrepareForSending(ctx, id, cmd.RecipientEmail)
	if err != nil {
		return entities.Estimate{}, err
	}

	subject := cmd.Subject
	if subject == "" {
		subject = fmt.Sprintf("Estimate %s", prepared.EstimateNumber)
	}
	err = u.email.Send(ctx, interfaces.EmailMessage{
		To:      cmd.RecipientEmail,
		ToName:  cmd.RecipientName,
		Subject: subject,
		Body:    cmd.Message,
		CC:      cmd.CC,
		Token:   token,
	})
	if err != nil {
		log.Printf("[estimate][usecase] email dispatch failed id=%s err=%v", prepared.ID, err)
		return entities.Estimate{}, fmt.Errorf("%w: %v", ErrEmailDispatchFailed, err)
	}

	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		if err := estimate.RecordSent(e, u.now()); err != nil {
			return err
		}
		e.Communications = append(e.Communications, entities.CommunicationEntry{
			ID:      u.newID(),
			Date:    u.now(),
			To:      cmd.RecipientEmail,
			Subject: subject,
			SentBy:  cmd.SentBy,
		})
		return nil
	})
}

// ConvertToInvoice flips an accepted estimate into an invoice in place and
// records the conversion in the change log.
func (u *EstimateUseCase) ConvertToInvoice(ctx context.Context, id, modifiedBy string) (entities.Estimate, error) {
	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		if err := estimate.ConvertToInvoice(e); err != nil {
			return err
		}
		estimate.AppendRevision(e, entities.ChangeFinancial,
			entities.RevisionDetails{ChangedFields: []string{"estimate_state"}},
			"Converted to invoice",
			modifiedBy, u.now())
		return nil
	})
}

// CreateChangeOrder derives a new change-order document from an accepted
// estimate; the source is read, never written.
func (u *EstimateUseCase) CreateChangeOrder(ctx context.Context, id string) (entities.Estimate, error) {
	src, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := u.now()
	seq, err := u.repo.NextSequence(ctx, now.Year())
	if err != nil {
		return entities.Estimate{}, err
	}

	co, err := estimate.NewChangeOrder(&src, u.newID(), formatEstimateNumber(now.Year(), seq), u.newID, now)
	if err != nil {
		return entities.Estimate{}, err
	}

	created, err := u.repo.Create(ctx, co)
	if err != nil {
		return entities.Estimate{}, err
	}
	observability.EstimatesCreated.Inc()
	log.Printf("[estimate][usecase] change order created id=%s parent=%s", created.ID, created.ParentEstimateID)
	return created, nil
}

// GeneratePurchaseOrder hands the estimate's physical-product rows to the
// procurement collaborator and links the returned PO id. A non-empty link set
// short-circuits instead of creating a duplicate PO.
func (u *EstimateUseCase) GeneratePurchaseOrder(ctx context.Context, id string) (entities.Estimate, string, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, "", err
	}
	if len(e.PurchaseOrderIDs) > 0 {
		return entities.Estimate{}, "", ErrPurchaseOrderExists
	}

	var items []entities.LineItem
	for _, li := range e.LineItems {
		if li.Purchasable() {
			items = append(items, li)
		}
	}
	if len(items) == 0 {
		return entities.Estimate{}, "", ErrNoPurchasableItems
	}
	if u.po == nil {
		return entities.Estimate{}, "", fmt.Errorf("%w: procurement service not configured", ErrProcurementFailed)
	}

	poID, err := u.po.CreatePurchaseOrder(ctx, e.ID, items)
	if err != nil {
		log.Printf("[estimate][usecase] purchase order creation failed id=%s err=%v", e.ID, err)
		return entities.Estimate{}, "", fmt.Errorf("%w: %v", ErrProcurementFailed, err)
	}

	updated, err := u.mutate(ctx, id, func(e *entities.Estimate) error {
		if len(e.PurchaseOrderIDs) > 0 {
			// A concurrent writer linked one first; the external PO already
			// exists, so keep both ids rather than lose the reference.
			log.Printf("[estimate][usecase] concurrent purchase order link id=%s", e.ID)
		}
		e.PurchaseOrderIDs = append(e.PurchaseOrderIDs, poID)
		return nil
	})
	if err != nil {
		return entities.Estimate{}, "", err
	}
	return updated, poID, nil
}

// ViewByToken serves the client-facing token view: it bumps the view counter,
// moves sent → viewed on the first visit, and persists both.
func (u *EstimateUseCase) ViewByToken(ctx context.Context, token string) (entities.Estimate, error) {
	updated, err := u.mutateByToken(ctx, token, func(e *entities.Estimate) error {
		estimate.RecordViewed(e)
		return nil
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	observability.ClientViews.Inc()
	return updated, nil
}

// RecordClientDecision applies an accept/deny/hold decision arriving through
// the token endpoint.
func (u *EstimateUseCase) RecordClientDecision(ctx context.Context, token, decision string) (entities.Estimate, error) {
	state := entities.ClientState(strings.ToLower(strings.TrimSpace(decision)))
	switch state {
	case entities.ClientStateAccepted, entities.ClientStateDenied, entities.ClientStateOnHold:
	default:
		return entities.Estimate{}, fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}

	return u.mutateByToken(ctx, token, func(e *entities.Estimate) error {
		return estimate.RecordClientDecision(e, state)
	})
}

// AddClientComment appends to the estimate's client comment log.
func (u *EstimateUseCase) AddClientComment(ctx context.Context, token, authorName, message string) (entities.Estimate, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.Estimate{}, ErrInvalidComment
	}

	return u.mutateByToken(ctx, token, func(e *entities.Estimate) error {
		e.ClientComments = append(e.ClientComments, entities.ClientComment{
			ID:         u.newID(),
			Date:       u.now(),
			AuthorName: strings.TrimSpace(authorName),
			Message:    message,
		})
		return nil
	})
}
