package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/domain/estimate"
	"contractor_crm/internal/infrastructure/observability"
	"contractor_crm/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrInvalidCustomer   = errors.New("estimate requires a customer name or email")
	ErrInvalidFinancials = errors.New("invalid financial settings")
	ErrEmptyUpdate       = errors.New("no fields to update")

	ErrInvalidLineItem  = errors.New("invalid line item")
	ErrLineItemNotFound = errors.New("line item not found")

	ErrTokenNotFound        = errors.New("no estimate matches this token")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidDecision      = errors.New("invalid client decision")
	ErrInvalidComment       = errors.New("comment requires a message")
	ErrMissingRecipient     = errors.New("missing recipient email")
	ErrEmailDispatchFailed  = errors.New("email dispatch failed")
	ErrInvalidCollectionID  = errors.New("invalid collection id")
	ErrCatalogUnavailable   = errors.New("catalog lookup failed")
	ErrPurchaseOrderExists  = errors.New("purchase order already generated for current line items")
	ErrNoPurchasableItems   = errors.New("estimate has no purchasable line items")
	ErrProcurementFailed    = errors.New("purchase order service failed")
)

// IEstimateUseCase exposes the estimate document engine: CRUD, the line-item
// ledger, the revision history, and the send/decision/conversion lifecycle.
//
// Every mutation runs as {guard → apply → append revision → recompute totals →
// conditional persist}; a lost optimistic-concurrency race surfaces as
// interfaces.ErrVersionConflict for the caller to retry.

type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, cmd CreateEstimateCommand) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	UpdateFinancials(ctx context.Context, id string, cmd UpdateFinancialsCommand) (entities.Estimate, error)
	RevisionHistory(ctx context.Context, id string) ([]estimate.DayGroup, error)

	AddLineItem(ctx context.Context, id string, cmd AddLineItemCommand) (entities.Estimate, error)
	UpdateLineItem(ctx context.Context, id, itemID string, cmd UpdateLineItemCommand) (entities.Estimate, error)
	DeleteLineItem(ctx context.Context, id, itemID, modifiedBy string) (entities.Estimate, error)
	ReorderLineItems(ctx context.Context, id string, orderedIDs []string, modifiedBy string) (entities.Estimate, error)
	FindDuplicateLineItems(ctx context.Context, id string) ([][]entities.LineItem, error)
	ImportCollection(ctx context.Context, id string, cmd ImportCollectionCommand) (entities.Estimate, error)

	PrepareForSending(ctx context.Context, id, contractorEmail string) (entities.Estimate, string, error)
	SendEstimate(ctx context.Context, id string, cmd SendEstimateCommand) (entities.Estimate, error)
	RecordSent(ctx context.Context, id string) (entities.Estimate, error)
	ConvertToInvoice(ctx context.Context, id, modifiedBy string) (entities.Estimate, error)
	CreateChangeOrder(ctx context.Context, id string) (entities.Estimate, error)
	GeneratePurchaseOrder(ctx context.Context, id string) (entities.Estimate, string, error)

	ViewByToken(ctx context.Context, token string) (entities.Estimate, error)
	RecordClientDecision(ctx context.Context, token, decision string) (entities.Estimate, error)
	AddClientComment(ctx context.Context, token, authorName, message string) (entities.Estimate, error)
}

// CreateEstimateCommand creates a new draft document.
type CreateEstimateCommand struct {
	Customer       entities.CustomerSnapshot
	ServiceAddress string
	ValidUntil     *time.Time
	TaxRate        float64
}

// UpdateFinancialsCommand is a partial update of the document's financial
// settings; nil fields stay untouched. Applying it records one
// financial_change revision listing the changed fields.
type UpdateFinancialsCommand struct {
	Discount        *float64
	DiscountType    *entities.DiscountType
	TaxRate         *float64
	DepositType     *entities.DepositType
	DepositValue    *float64
	PaymentSchedule *entities.PaymentSchedule
	ValidUntil      *time.Time
	ModifiedBy      string
}

type EstimateUseCase struct {
	repo    interfaces.IEstimateRepository
	email   interfaces.IEmailDispatcher
	po      interfaces.IPurchaseOrderService
	catalog interfaces.ICatalogSource

	// Injected for deterministic revision dates, ids and tokens in tests.
	now   func() time.Time
	newID func() string
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, email interfaces.IEmailDispatcher, po interfaces.IPurchaseOrderService, catalog interfaces.ICatalogSource) *EstimateUseCase {
	return &EstimateUseCase{
		repo:    repo,
		email:   email,
		po:      po,
		catalog: catalog,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, cmd CreateEstimateCommand) (entities.Estimate, error) {
	if strings.TrimSpace(cmd.Customer.Name) == "" && strings.TrimSpace(cmd.Customer.Email) == "" {
		return entities.Estimate{}, ErrInvalidCustomer
	}
	if cmd.TaxRate < 0 {
		return entities.Estimate{}, ErrInvalidFinancials
	}

	now := u.now()
	seq, err := u.repo.NextSequence(ctx, now.Year())
	if err != nil {
		return entities.Estimate{}, err
	}

	e := entities.Estimate{
		ID:             u.newID(),
		EstimateNumber: formatEstimateNumber(now.Year(), seq),
		EstimateState:  entities.EstimateStateDraft,
		ClientState:    entities.ClientStateNone,
		Customer:       cmd.Customer,
		ServiceAddress: strings.TrimSpace(cmd.ServiceAddress),
		DiscountType:   entities.DiscountTypePercentage,
		TaxRate:        cmd.TaxRate,
		DepositType:    entities.DepositTypeNone,
		ValidUntil:     cmd.ValidUntil,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	observability.EstimatesCreated.Inc()
	log.Printf("[estimate][usecase] created id=%s number=%s", created.ID, created.EstimateNumber)
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.ListOrderedByNumber(ctx)
}

// Delete removes the whole aggregate, revision log included. There is no
// soft delete.
func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *EstimateUseCase) UpdateFinancials(ctx context.Context, id string, cmd UpdateFinancialsCommand) (entities.Estimate, error) {
	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		var changed []string

		if cmd.Discount != nil || cmd.DiscountType != nil || cmd.TaxRate != nil ||
			cmd.DepositType != nil || cmd.DepositValue != nil {
			// Price-affecting settings fall under the accepted lock; schedule
			// and validity edits stay open.
			if err := estimate.CanMutateLineItems(e); err != nil {
				return err
			}
		}

		if cmd.Discount != nil {
			if *cmd.Discount < 0 {
				return fmt.Errorf("%w: negative discount", ErrInvalidFinancials)
			}
			e.Discount = *cmd.Discount
			changed = append(changed, "discount")
		}
		if cmd.DiscountType != nil {
			switch *cmd.DiscountType {
			case entities.DiscountTypePercentage, entities.DiscountTypeAmount:
			default:
				return fmt.Errorf("%w: discount type %q", ErrInvalidFinancials, *cmd.DiscountType)
			}
			e.DiscountType = *cmd.DiscountType
			changed = append(changed, "discount_type")
		}
		if cmd.TaxRate != nil {
			if *cmd.TaxRate < 0 {
				return fmt.Errorf("%w: negative tax rate", ErrInvalidFinancials)
			}
			e.TaxRate = *cmd.TaxRate
			changed = append(changed, "tax_rate")
		}
		if cmd.DepositType != nil {
			switch *cmd.DepositType {
			case entities.DepositTypeNone, entities.DepositTypePercentage, entities.DepositTypeAmount:
			default:
				return fmt.Errorf("%w: deposit type %q", ErrInvalidFinancials, *cmd.DepositType)
			}
			e.DepositType = *cmd.DepositType
			changed = append(changed, "deposit_type")
		}
		if cmd.DepositValue != nil {
			if *cmd.DepositValue < 0 {
				return fmt.Errorf("%w: negative deposit", ErrInvalidFinancials)
			}
			e.DepositValue = *cmd.DepositValue
			changed = append(changed, "deposit_value")
		}
		if cmd.PaymentSchedule != nil {
			s := *cmd.PaymentSchedule
			for i := range s.Entries {
				if s.Entries[i].ID == "" {
					s.Entries[i].ID = u.newID()
				}
			}
			e.PaymentSchedule = s
			changed = append(changed, "payment_schedule")
		}
		if cmd.ValidUntil != nil {
			e.ValidUntil = cmd.ValidUntil
			changed = append(changed, "valid_until")
		}

		if len(changed) == 0 {
			return ErrEmptyUpdate
		}

		estimate.AppendRevision(e, entities.ChangeFinancial,
			entities.RevisionDetails{ChangedFields: changed},
			"Updated "+strings.Join(changed, ", "),
			cmd.ModifiedBy, u.now())
		return nil
	})
}

func (u *EstimateUseCase) RevisionHistory(ctx context.Context, id string) ([]estimate.DayGroup, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return estimate.GroupRevisionsByDay(e.LineItems, e.RevisionsHistory), nil
}

// mutate is the single write path for estimate mutations: load, apply the
// change, recompute totals, validate the payment schedule against the new
// total, then persist with a conditional write on the loaded version.
func (u *EstimateUseCase) mutate(ctx context.Context, id string, apply func(e *entities.Estimate) error) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return u.applyAndPersist(ctx, e, apply)
}

// mutateByToken is mutate for the client-facing surface, resolving the
// aggregate through its email token.
func (u *EstimateUseCase) mutateByToken(ctx context.Context, token string, apply func(e *entities.Estimate) error) (entities.Estimate, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Estimate{}, ErrInvalidToken
	}
	e, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrTokenNotFound
	}
	return u.applyAndPersist(ctx, e, apply)
}

func (u *EstimateUseCase) applyAndPersist(ctx context.Context, e entities.Estimate, apply func(e *entities.Estimate) error) (entities.Estimate, error) {
	expected := e.Version
	revisionsBefore := e.CurrentRevision

	if err := apply(&e); err != nil {
		return entities.Estimate{}, err
	}

	e.Total = estimate.TotalsOf(&e).Total
	if err := estimate.ValidateSchedule(e.PaymentSchedule, e.Total); err != nil {
		return entities.Estimate{}, err
	}
	e.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, e, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			observability.VersionConflicts.Inc()
		}
		return entities.Estimate{}, err
	}
	if appended := updated.CurrentRevision - revisionsBefore; appended > 0 {
		observability.RevisionsAppended.Add(float64(appended))
	}
	return updated, nil
}

func formatEstimateNumber(year, seq int) string {
	return fmt.Sprintf("EST-%d-%04d", year, seq)
}
