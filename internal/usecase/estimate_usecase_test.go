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

var testNow = time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo interfaces.IEstimateRepository, email interfaces.IEmailDispatcher, po interfaces.IPurchaseOrderService, catalog interfaces.ICatalogSource) *EstimateUseCase {
	uc := NewEstimateUseCase(repo, email, po, catalog)
	uc.now = func() time.Time { return testNow }
	n := 0
	uc.newID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	return uc
}

// expectUpdate wires the standard repo behavior for the conditional write:
// version check against the loaded value, then increment.
func expectUpdate(repo *mock_interfaces.MockIEstimateRepository) {
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{}), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.Estimate, expected int64) (entities.Estimate, error) {
			if e.Version != expected {
				return entities.Estimate{}, interfaces.ErrVersionConflict
			}
			e.Version++
			return e, nil
		},
	)
}

func draftWithItems() entities.Estimate {
	return entities.Estimate{
		ID:             "est-1",
		EstimateNumber: "EST-2026-0001",
		EstimateState:  entities.EstimateStateDraft,
		DiscountType:   entities.DiscountTypePercentage,
		DepositType:    entities.DepositTypeNone,
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "framing", Quantity: 2, UnitPrice: 100, Total: 200, Source: entities.LineItemSourceProduct},
			{ID: "li-2", Description: "labor", Quantity: 1, UnitPrice: 50, Total: 50, Source: entities.LineItemSourceLabor},
		},
		Customer: entities.CustomerSnapshot{Name: "Pat", Email: "pat@example.com"},
	}
}

func TestEstimateUseCase_CreateEstimate(t *testing.T) {
	t.Run("requires a customer", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, nil, nil)
		_, err := uc.CreateEstimate(context.Background(), CreateEstimateCommand{})
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("rejects negative tax rate", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, nil, nil)
		_, err := uc.CreateEstimate(context.Background(), CreateEstimateCommand{
			Customer: entities.CustomerSnapshot{Name: "Pat"},
			TaxRate:  -1,
		})
		if !errors.Is(err, ErrInvalidFinancials) {
			t.Fatalf("expected ErrInvalidFinancials, got %v", err)
		}
	})

	t.Run("creates a numbered draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		repo.EXPECT().NextSequence(gomock.Any(), 2026).Return(7, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.EstimateNumber != "EST-2026-0007" {
					t.Fatalf("unexpected number %q", e.EstimateNumber)
				}
				if e.EstimateState != entities.EstimateStateDraft || e.ClientState != entities.ClientStateNone {
					t.Fatalf("unexpected initial state: %+v", e)
				}
				if e.CurrentRevision != 0 || len(e.RevisionsHistory) != 0 {
					t.Fatalf("new draft must start with an empty change log")
				}
				return e, nil
			},
		)

		res, err := uc.CreateEstimate(context.Background(), CreateEstimateCommand{
			Customer: entities.CustomerSnapshot{Name: "Pat"},
			TaxRate:  8,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_UpdateFinancials(t *testing.T) {
	t.Run("records one financial revision and recomputes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)
		expectUpdate(repo)

		discount := 10.0
		tax := 8.0
		res, err := uc.UpdateFinancials(context.Background(), "est-1", UpdateFinancialsCommand{
			Discount:   &discount,
			TaxRate:    &tax,
			ModifiedBy: "Dana",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Total != 243 {
			t.Fatalf("expected total 243, got %v", res.Total)
		}
		if res.CurrentRevision != 1 || len(res.RevisionsHistory) != 1 {
			t.Fatalf("expected one revision, got %d/%d", res.CurrentRevision, len(res.RevisionsHistory))
		}
		rev := res.RevisionsHistory[0]
		if rev.ChangeType != entities.ChangeFinancial || rev.ModifiedByName != "Dana" {
			t.Fatalf("unexpected revision: %+v", rev)
		}
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)

		_, err := uc.UpdateFinancials(context.Background(), "est-1", UpdateFinancialsCommand{})
		if !errors.Is(err, ErrEmptyUpdate) {
			t.Fatalf("expected ErrEmptyUpdate, got %v", err)
		}
	})

	t.Run("price-affecting settings are locked after acceptance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		accepted := draftWithItems()
		accepted.EstimateState = entities.EstimateStateEstimate
		accepted.ClientState = entities.ClientStateAccepted
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(accepted, nil)

		discount := 50.0
		_, err := uc.UpdateFinancials(context.Background(), "est-1", UpdateFinancialsCommand{Discount: &discount})
		if err == nil {
			t.Fatalf("expected lock error")
		}
	})

	t.Run("schedule exceeding total is rejected before persist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)

		sched := entities.PaymentSchedule{
			Mode:    entities.ScheduleModeAmount,
			Entries: []entities.ScheduleEntry{{Description: "due", Value: 10000}},
		}
		_, err := uc.UpdateFinancials(context.Background(), "est-1", UpdateFinancialsCommand{PaymentSchedule: &sched})
		if err == nil {
			t.Fatalf("expected schedule validation error")
		}
	})
}

func TestEstimateUseCase_VersionConflictSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := newTestUseCase(repo, nil, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Estimate{}, interfaces.ErrVersionConflict)

	tax := 5.0
	_, err := uc.UpdateFinancials(context.Background(), "est-1", UpdateFinancialsCommand{TaxRate: &tax})
	if !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestEstimateUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := newTestUseCase(repo, nil, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)
	repo.EXPECT().Delete(gomock.Any(), "est-1").Return(nil)

	if err := uc.Delete(context.Background(), "est-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEstimateUseCase_RevisionHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := newTestUseCase(repo, nil, nil, nil)

	e := draftWithItems()
	deleted := entities.LineItem{ID: "li-gone", Description: "old tile", Quantity: 4, UnitPrice: 9, Total: 36}
	e.RevisionsHistory = []entities.Revision{
		{RevisionNumber: 1, Date: testNow, ChangeType: entities.ChangeLineItemAdded, Details: entities.RevisionDetails{LineItemID: "li-1"}},
		{RevisionNumber: 2, Date: testNow, ChangeType: entities.ChangeLineItemDeleted, Details: entities.RevisionDetails{LineItemID: "li-gone", DeletedItem: &deleted}},
	}
	e.CurrentRevision = 2
	repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)

	groups, err := uc.RevisionHistory(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected one day group, got %d", len(groups))
	}
	// Live rows plus the reconstructed deleted row.
	if len(groups[0].LineItems) != 3 {
		t.Fatalf("expected 3 reconstructed rows, got %d", len(groups[0].LineItems))
	}
	last := groups[0].LineItems[2]
	if last.ID != "li-gone" || last.Status != "removed" {
		t.Fatalf("expected removed snapshot row, got %+v", last)
	}
}
