package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/usecase/interfaces"
	mock_interfaces "contractor_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestPaymentUseCase(repo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	uc := NewPaymentUseCase(repo, gateway)
	uc.now = func() time.Time { return testNow }
	n := 0
	uc.newID = func() string { n++; return fmt.Sprintf("pay-%d", n) }
	return uc
}

func invoiceWithPayments() entities.Estimate {
	e := draftWithItems()
	e.EstimateState = entities.EstimateStateInvoice
	e.ClientState = entities.ClientStateAccepted
	e.Total = 243
	e.Payments = []entities.PaymentRecord{
		{ID: "p-1", Amount: 100, Method: entities.PaymentMethodCheck, Date: testNow},
		{ID: "p-2", Amount: 50, Method: entities.PaymentMethodCash, Date: testNow},
	}
	return e
}

func TestPaymentUseCase_RecordPayment(t *testing.T) {
	t.Run("input validation", func(t *testing.T) {
		uc := newTestPaymentUseCase(nil, nil)

		_, err := uc.RecordPayment(context.Background(), "", RecordPaymentCommand{Amount: 10, Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
		_, err = uc.RecordPayment(context.Background(), "est-1", RecordPaymentCommand{Amount: 0, Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
		_, err = uc.RecordPayment(context.Background(), "est-1", RecordPaymentCommand{Amount: -5, Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
		_, err = uc.RecordPayment(context.Background(), "est-1", RecordPaymentCommand{Amount: 10, Method: "bitcoin"})
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("appends the record and moves the balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(invoiceWithPayments(), nil)
		expectUpdate(repo)

		res, err := uc.RecordPayment(context.Background(), "est-1", RecordPaymentCommand{
			Amount: 50,
			Method: entities.PaymentMethodCard,
			Notes:  "second installment",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Payments) != 3 {
			t.Fatalf("expected 3 payments, got %d", len(res.Payments))
		}
		if got := res.TotalPaid(); got != 200 {
			t.Fatalf("expected total paid 200, got %v", got)
		}
		if got := res.Balance(); got != 43 {
			t.Fatalf("expected balance 43, got %v", got)
		}
		last := res.Payments[2]
		if last.Date.IsZero() || !last.Date.Equal(testNow) {
			t.Fatalf("zero date must default to creation time, got %v", last.Date)
		}
	})

	t.Run("overpayment goes negative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(invoiceWithPayments(), nil)
		expectUpdate(repo)

		res, err := uc.RecordPayment(context.Background(), "est-1", RecordPaymentCommand{
			Amount: 200,
			Method: entities.PaymentMethodCash,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := res.Balance(); got != -107 {
			t.Fatalf("expected balance -107, got %v", got)
		}
	})

	t.Run("online settles through the gateway before persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(invoiceWithPayments(), nil)
		gateway.EXPECT().ChargeOnline(gomock.Any(), "est-1", 93.0, "pat@example.com", gomock.Any()).
			Return("mp-123", "approved", nil)
		expectUpdate(repo)

		res, err := uc.RecordPayment(context.Background(), "est-1", RecordPaymentCommand{
			Amount: 93,
			Method: entities.PaymentMethodOnline,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := res.Payments[len(res.Payments)-1]
		if last.ProviderPaymentID != "mp-123" || last.ProviderStatus != "approved" {
			t.Fatalf("expected provider settlement on the record, got %+v", last)
		}
		if got := res.Balance(); got != 0 {
			t.Fatalf("expected settled balance, got %v", got)
		}
	})

	t.Run("declined charge leaves the ledger untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTestPaymentUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(invoiceWithPayments(), nil)
		gateway.EXPECT().ChargeOnline(gomock.Any(), "est-1", 93.0, "pat@example.com", gomock.Any()).
			Return("", "", errors.New("insufficient funds"))

		_, err := uc.RecordPayment(context.Background(), "est-1", RecordPaymentCommand{
			Amount: 93,
			Method: entities.PaymentMethodOnline,
		})
		if !errors.Is(err, ErrGatewayDeclined) {
			t.Fatalf("expected ErrGatewayDeclined, got %v", err)
		}
	})

	t.Run("version conflict surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(invoiceWithPayments(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Estimate{}, interfaces.ErrVersionConflict)

		_, err := uc.RecordPayment(context.Background(), "est-1", RecordPaymentCommand{
			Amount: 10,
			Method: entities.PaymentMethodCash,
		})
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}

func TestPaymentUseCase_DeletePayment(t *testing.T) {
	t.Run("removes the record and restores the balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(invoiceWithPayments(), nil)
		expectUpdate(repo)

		res, err := uc.DeletePayment(context.Background(), "est-1", "p-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Payments) != 1 || res.Payments[0].ID != "p-1" {
			t.Fatalf("expected only p-1 left, got %+v", res.Payments)
		}
		if got := res.Balance(); got != 143 {
			t.Fatalf("expected balance 143, got %v", got)
		}
	})

	t.Run("unknown payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(invoiceWithPayments(), nil)

		_, err := uc.DeletePayment(context.Background(), "est-1", "p-99")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_GetPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := newTestPaymentUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(invoiceWithPayments(), nil)

	summary, err := uc.GetPayments(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(summary.Payments))
	}
	if summary.TotalPaid != 150 || summary.Balance != 93 {
		t.Fatalf("expected paid 150 balance 93, got %v / %v", summary.TotalPaid, summary.Balance)
	}

	t.Run("missing estimate", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "est-404").Return(entities.Estimate{}, nil)
		_, err := uc.GetPayments(context.Background(), "est-404")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}
