package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/domain/estimate"
	mock_interfaces "contractor_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_AddLineItem(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, nil, nil)
		for name, cmd := range map[string]AddLineItemCommand{
			"empty description": {Quantity: 1, UnitPrice: 5, Source: entities.LineItemSourceProduct},
			"zero quantity":     {Description: "x", UnitPrice: 5, Source: entities.LineItemSourceProduct},
			"negative price":    {Description: "x", Quantity: 1, UnitPrice: -5, Source: entities.LineItemSourceProduct},
			"bad source":        {Description: "x", Quantity: 1, UnitPrice: 5, Source: "misc"},
		} {
			if _, err := uc.AddLineItem(context.Background(), "est-1", cmd); !errors.Is(err, ErrInvalidLineItem) {
				t.Fatalf("%s: expected ErrInvalidLineItem, got %v", name, err)
			}
		}
	})

	t.Run("appends row, revision and totals in one write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)
		expectUpdate(repo)

		res, err := uc.AddLineItem(context.Background(), "est-1", AddLineItemCommand{
			Description: "drywall",
			Quantity:    3,
			UnitPrice:   12.5,
			Source:      entities.LineItemSourceProduct,
			ModifiedBy:  "Dana",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.LineItems) != 3 {
			t.Fatalf("expected 3 line items, got %d", len(res.LineItems))
		}
		added := res.LineItems[2]
		if added.Total != 37.5 {
			t.Fatalf("expected row total 37.5, got %v", added.Total)
		}
		if res.CurrentRevision != 1 || len(res.RevisionsHistory) != 1 {
			t.Fatalf("expected revision counter in step, got %d/%d", res.CurrentRevision, len(res.RevisionsHistory))
		}
		rev := res.RevisionsHistory[0]
		if rev.ChangeType != entities.ChangeLineItemAdded || rev.Details.LineItemID != added.ID {
			t.Fatalf("unexpected revision: %+v", rev)
		}
		if res.Total != 287.5 { // 250 + 37.5
			t.Fatalf("expected total 287.5, got %v", res.Total)
		}
	})

	t.Run("accepted estimate rejects mutation and keeps items intact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		accepted := draftWithItems()
		accepted.EstimateState = entities.EstimateStateEstimate
		accepted.ClientState = entities.ClientStateAccepted
		before := append([]entities.LineItem(nil), accepted.LineItems...)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(accepted, nil)
		// No Update expectation: the guard must reject before any write.

		_, err := uc.AddLineItem(context.Background(), "est-1", AddLineItemCommand{
			Description: "extra",
			Quantity:    1,
			UnitPrice:   10,
			Source:      entities.LineItemSourceProduct,
		})
		if !errors.Is(err, estimate.ErrLineItemsLocked) {
			t.Fatalf("expected ErrLineItemsLocked, got %v", err)
		}
		if !reflect.DeepEqual(before, accepted.LineItems) {
			t.Fatalf("line items changed despite rejection")
		}
	})
}

func TestEstimateUseCase_UpdateLineItem(t *testing.T) {
	t.Run("patches fields and recomputes row total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)
		expectUpdate(repo)

		qty := 5.0
		res, err := uc.UpdateLineItem(context.Background(), "est-1", "li-1", UpdateLineItemCommand{Quantity: &qty, ModifiedBy: "Dana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		li := res.FindLineItem("li-1")
		if li.Quantity != 5 || li.Total != 500 {
			t.Fatalf("unexpected row after patch: %+v", li)
		}
		rev := res.RevisionsHistory[0]
		if rev.ChangeType != entities.ChangeLineItemUpdated {
			t.Fatalf("unexpected change type %q", rev.ChangeType)
		}
		if len(rev.Details.ChangedFields) != 1 || rev.Details.ChangedFields[0] != "quantity" {
			t.Fatalf("unexpected changed fields %v", rev.Details.ChangedFields)
		}
	})

	t.Run("unknown row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)

		desc := "new"
		_, err := uc.UpdateLineItem(context.Background(), "est-1", "nope", UpdateLineItemCommand{Description: &desc})
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_DeleteLineItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := newTestUseCase(repo, nil, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)
	expectUpdate(repo)

	res, err := uc.DeleteLineItem(context.Background(), "est-1", "li-1", "Dana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.LineItems) != 1 || res.LineItems[0].ID != "li-2" {
		t.Fatalf("unexpected remaining items: %+v", res.LineItems)
	}
	if res.Total != 50 {
		t.Fatalf("expected total 50 after delete, got %v", res.Total)
	}

	rev := res.RevisionsHistory[0]
	if rev.ChangeType != entities.ChangeLineItemDeleted {
		t.Fatalf("unexpected change type %q", rev.ChangeType)
	}
	// The revision keeps the full snapshot for later reconstruction.
	if rev.Details.DeletedItem == nil || rev.Details.DeletedItem.Description != "framing" || rev.Details.DeletedItem.Total != 200 {
		t.Fatalf("missing or wrong deletion snapshot: %+v", rev.Details.DeletedItem)
	}
}

func TestEstimateUseCase_ReorderLineItems(t *testing.T) {
	t.Run("single revision for the whole reorder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)
		expectUpdate(repo)

		res, err := uc.ReorderLineItems(context.Background(), "est-1", []string{"li-2", "li-1"}, "Dana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.LineItems[0].ID != "li-2" {
			t.Fatalf("expected li-2 first, got %+v", res.LineItems)
		}
		if len(res.RevisionsHistory) != 1 || res.RevisionsHistory[0].ChangeType != entities.ChangeReordered {
			t.Fatalf("expected one reordered revision, got %+v", res.RevisionsHistory)
		}
	})

	t.Run("non-permutation rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := newTestUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)

		_, err := uc.ReorderLineItems(context.Background(), "est-1", []string{"li-1"}, "")
		if !errors.Is(err, estimate.ErrInvalidReorder) {
			t.Fatalf("expected ErrInvalidReorder, got %v", err)
		}
	})
}

func TestEstimateUseCase_FindDuplicateLineItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := newTestUseCase(repo, nil, nil, nil)

	e := draftWithItems()
	e.LineItems = append(e.LineItems, entities.LineItem{ID: "li-3", Description: "Framing", Quantity: 1, UnitPrice: 100, Total: 100})
	repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)

	dupes, err := uc.FindDuplicateLineItems(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dupes) != 1 || len(dupes[0]) != 2 {
		t.Fatalf("expected one duplicate pair, got %+v", dupes)
	}
}

func TestEstimateUseCase_ImportCollection(t *testing.T) {
	t.Run("seeds rows with fresh ids and per-row revisions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogSource(ctrl)
		uc := newTestUseCase(repo, nil, nil, catalog)

		catalog.EXPECT().CollectionLineItems(gomock.Any(), "kitchen-remodel", gomock.Any()).Return([]entities.LineItem{
			{Description: "cabinet", Quantity: 4, UnitPrice: 220, Source: entities.LineItemSourceProduct, CatalogRef: "cat-9"},
			{Description: "install labor", Quantity: 16, UnitPrice: 85, Source: entities.LineItemSourceLabor},
		}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftWithItems(), nil)
		expectUpdate(repo)

		res, err := uc.ImportCollection(context.Background(), "est-1", ImportCollectionCommand{CollectionID: "kitchen-remodel"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.LineItems) != 4 {
			t.Fatalf("expected 4 rows, got %d", len(res.LineItems))
		}
		if res.CurrentRevision != 2 {
			t.Fatalf("expected 2 revisions, got %d", res.CurrentRevision)
		}
		if res.LineItems[2].ID == "" || res.LineItems[2].CatalogRef != "cat-9" {
			t.Fatalf("unexpected imported row: %+v", res.LineItems[2])
		}
	})

	t.Run("catalog failure surfaces as external error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogSource(ctrl)
		uc := newTestUseCase(nil, nil, nil, catalog)

		catalog.EXPECT().CollectionLineItems(gomock.Any(), "c-1", gomock.Any()).Return(nil, errors.New("inventory down"))

		_, err := uc.ImportCollection(context.Background(), "est-1", ImportCollectionCommand{CollectionID: "c-1"})
		if !errors.Is(err, ErrCatalogUnavailable) {
			t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
		}
	})

	t.Run("unconfigured catalog source is an external dependency error", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, nil, nil)

		_, err := uc.ImportCollection(context.Background(), "est-1", ImportCollectionCommand{CollectionID: "c-1"})
		if !errors.Is(err, ErrCatalogUnavailable) {
			t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
		}
	})
}
