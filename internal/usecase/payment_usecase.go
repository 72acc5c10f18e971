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
	"contractor_crm/internal/infrastructure/observability"
	"contractor_crm/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrGatewayDeclined      = errors.New("payment gateway declined the charge")
)

// RecordPaymentCommand appends one payment against the estimate's balance.
type RecordPaymentCommand struct {
	Amount    float64
	Date      time.Time
	Method    entities.PaymentMethod
	Notes     string
	CreatedBy string
}

// PaymentSummary is the payment ledger of one estimate plus its derived
// figures.
type PaymentSummary struct {
	Payments  []entities.PaymentRecord
	TotalPaid float64
	Balance   float64
}

// IPaymentUseCase is the payment ledger: records and balance only.
// Overpayment is allowed; the balance simply goes negative.
type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, estimateID string, cmd RecordPaymentCommand) (entities.Estimate, error)
	DeletePayment(ctx context.Context, estimateID, paymentID string) (entities.Estimate, error)
	GetPayments(ctx context.Context, estimateID string) (PaymentSummary, error)
}

type PaymentUseCase struct {
	repo    interfaces.IEstimateRepository
	gateway interfaces.IPaymentGateway

	now   func() time.Time
	newID func() string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase builds the payment ledger service. The gateway may be nil;
// Online payments are then recorded without provider settlement.
func NewPaymentUseCase(repo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{
		repo:    repo,
		gateway: gateway,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, estimateID string, cmd RecordPaymentCommand) (entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if cmd.Amount <= 0 {
		return entities.Estimate{}, ErrInvalidPaymentAmount
	}
	if !entities.ValidPaymentMethod(cmd.Method) {
		return entities.Estimate{}, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, cmd.Method)
	}

	e, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	record := entities.PaymentRecord{
		ID:        u.newID(),
		Amount:    cmd.Amount,
		Date:      cmd.Date,
		Method:    cmd.Method,
		Notes:     strings.TrimSpace(cmd.Notes),
		CreatedBy: cmd.CreatedBy,
		CreatedAt: u.now(),
	}
	if record.Date.IsZero() {
		record.Date = record.CreatedAt
	}

	// Online payments settle through the provider before anything persists;
	// a declined or failed charge leaves the ledger untouched.
	if cmd.Method == entities.PaymentMethodOnline && u.gateway != nil {
		providerID, status, err := u.gateway.ChargeOnline(ctx, e.ID, cmd.Amount, e.Customer.Email,
			fmt.Sprintf("Payment on %s", e.EstimateNumber))
		if err != nil {
			log.Printf("[payment][usecase] gateway charge failed estimate_id=%s err=%v", e.ID, err)
			return entities.Estimate{}, fmt.Errorf("%w: %v", ErrGatewayDeclined, err)
		}
		record.ProviderPaymentID = providerID
		record.ProviderStatus = status
	}

	expected := e.Version
	e.Payments = append(e.Payments, record)
	e.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, e, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			observability.VersionConflicts.Inc()
		}
		return entities.Estimate{}, err
	}
	observability.PaymentsRecorded.WithLabelValues(string(cmd.Method)).Inc()
	log.Printf("[payment][usecase] recorded estimate_id=%s payment_id=%s amount=%.2f method=%s balance=%.2f",
		updated.ID, record.ID, record.Amount, record.Method, updated.Balance())
	return updated, nil
}

func (u *PaymentUseCase) DeletePayment(ctx context.Context, estimateID, paymentID string) (entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	paymentID = strings.TrimSpace(paymentID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if paymentID == "" {
		return entities.Estimate{}, ErrPaymentNotFound
	}

	e, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	idx := -1
	for i := range e.Payments {
		if e.Payments[i].ID == paymentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Estimate{}, ErrPaymentNotFound
	}

	expected := e.Version
	e.Payments = append(e.Payments[:idx], e.Payments[idx+1:]...)
	e.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, e, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			observability.VersionConflicts.Inc()
		}
		return entities.Estimate{}, err
	}
	log.Printf("[payment][usecase] deleted estimate_id=%s payment_id=%s balance=%.2f", updated.ID, paymentID, updated.Balance())
	return updated, nil
}

func (u *PaymentUseCase) GetPayments(ctx context.Context, estimateID string) (PaymentSummary, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return PaymentSummary{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return PaymentSummary{}, err
	}
	if e.ID == "" {
		return PaymentSummary{}, ErrEstimateNotFound
	}

	return PaymentSummary{
		Payments:  e.Payments,
		TotalPaid: e.TotalPaid(),
		Balance:   e.Balance(),
	}, nil
}
