package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/domain/estimate"
)

// AddLineItemCommand appends one priced row to the ledger.
type AddLineItemCommand struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Source      entities.LineItemSource
	CatalogRef  string
	ModifiedBy  string
}

// UpdateLineItemCommand patches one row; nil fields stay untouched.
type UpdateLineItemCommand struct {
	Description *string
	Quantity    *float64
	UnitPrice   *float64
	Source      *entities.LineItemSource
	ModifiedBy  string
}

// ImportCollectionCommand seeds the ledger from a priced inventory
// collection, optionally filtered by source types.
type ImportCollectionCommand struct {
	CollectionID string
	Sources      []entities.LineItemSource
	ModifiedBy   string
}

func validLineItemSource(s entities.LineItemSource) bool {
	switch s {
	case entities.LineItemSourceProduct, entities.LineItemSourceLabor,
		entities.LineItemSourceTool, entities.LineItemSourceEquipment:
		return true
	}
	return false
}

func (u *EstimateUseCase) AddLineItem(ctx context.Context, id string, cmd AddLineItemCommand) (entities.Estimate, error) {
	cmd.Description = strings.TrimSpace(cmd.Description)
	if cmd.Description == "" || cmd.Quantity <= 0 || cmd.UnitPrice < 0 {
		return entities.Estimate{}, ErrInvalidLineItem
	}
	if !validLineItemSource(cmd.Source) {
		return entities.Estimate{}, fmt.Errorf("%w: source %q", ErrInvalidLineItem, cmd.Source)
	}

	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		if err := estimate.CanMutateLineItems(e); err != nil {
			return err
		}

		li := entities.LineItem{
			ID:          u.newID(),
			Description: cmd.Description,
			Quantity:    cmd.Quantity,
			UnitPrice:   cmd.UnitPrice,
			Total:       estimate.LineTotal(cmd.Quantity, cmd.UnitPrice),
			Source:      cmd.Source,
			CatalogRef:  cmd.CatalogRef,
		}
		e.LineItems = append(e.LineItems, li)

		estimate.AppendRevision(e, entities.ChangeLineItemAdded,
			entities.RevisionDetails{LineItemID: li.ID},
			fmt.Sprintf("Added %q (%g × %.2f)", li.Description, li.Quantity, li.UnitPrice),
			cmd.ModifiedBy, u.now())
		return nil
	})
}

func (u *EstimateUseCase) UpdateLineItem(ctx context.Context, id, itemID string, cmd UpdateLineItemCommand) (entities.Estimate, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Estimate{}, ErrLineItemNotFound
	}

	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		if err := estimate.CanMutateLineItems(e); err != nil {
			return err
		}

		li := e.FindLineItem(itemID)
		if li == nil {
			return ErrLineItemNotFound
		}

		var changed []string
		if cmd.Description != nil {
			desc := strings.TrimSpace(*cmd.Description)
			if desc == "" {
				return fmt.Errorf("%w: empty description", ErrInvalidLineItem)
			}
			li.Description = desc
			changed = append(changed, "description")
		}
		if cmd.Quantity != nil {
			if *cmd.Quantity <= 0 {
				return fmt.Errorf("%w: quantity must be positive", ErrInvalidLineItem)
			}
			li.Quantity = *cmd.Quantity
			changed = append(changed, "quantity")
		}
		if cmd.UnitPrice != nil {
			if *cmd.UnitPrice < 0 {
				return fmt.Errorf("%w: negative unit price", ErrInvalidLineItem)
			}
			li.UnitPrice = *cmd.UnitPrice
			changed = append(changed, "unit_price")
		}
		if cmd.Source != nil {
			if !validLineItemSource(*cmd.Source) {
				return fmt.Errorf("%w: source %q", ErrInvalidLineItem, *cmd.Source)
			}
			li.Source = *cmd.Source
			changed = append(changed, "source")
		}
		if len(changed) == 0 {
			return ErrEmptyUpdate
		}
		li.Total = estimate.LineTotal(li.Quantity, li.UnitPrice)

		estimate.AppendRevision(e, entities.ChangeLineItemUpdated,
			entities.RevisionDetails{LineItemID: li.ID, ChangedFields: changed},
			fmt.Sprintf("Updated %q (%s)", li.Description, strings.Join(changed, ", ")),
			cmd.ModifiedBy, u.now())
		return nil
	})
}

func (u *EstimateUseCase) DeleteLineItem(ctx context.Context, id, itemID, modifiedBy string) (entities.Estimate, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Estimate{}, ErrLineItemNotFound
	}

	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		if err := estimate.CanMutateLineItems(e); err != nil {
			return err
		}

		idx := -1
		for i := range e.LineItems {
			if e.LineItems[i].ID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrLineItemNotFound
		}

		// Snapshot before removal so history can reconstruct the row.
		snapshot := e.LineItems[idx]
		e.LineItems = append(e.LineItems[:idx], e.LineItems[idx+1:]...)

		estimate.AppendRevision(e, entities.ChangeLineItemDeleted,
			entities.RevisionDetails{LineItemID: snapshot.ID, DeletedItem: &snapshot},
			fmt.Sprintf("Removed %q", snapshot.Description),
			modifiedBy, u.now())
		return nil
	})
}

// ReorderLineItems rearranges the ledger. A pure reorder records a single
// revision, not one per moved row.
func (u *EstimateUseCase) ReorderLineItems(ctx context.Context, id string, orderedIDs []string, modifiedBy string) (entities.Estimate, error) {
	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		if err := estimate.CanMutateLineItems(e); err != nil {
			return err
		}

		reordered, err := estimate.ApplyOrder(e.LineItems, orderedIDs)
		if err != nil {
			return err
		}
		e.LineItems = reordered

		estimate.AppendRevision(e, entities.ChangeReordered,
			entities.RevisionDetails{},
			fmt.Sprintf("Reordered %d line items", len(reordered)),
			modifiedBy, u.now())
		return nil
	})
}

// FindDuplicateLineItems flags rows sharing description and unit price. A UI
// warning, never an error.
func (u *EstimateUseCase) FindDuplicateLineItems(ctx context.Context, id string) ([][]entities.LineItem, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return estimate.FindDuplicateLineItems(e.LineItems), nil
}

// ImportCollection seeds the ledger with priced rows from the read-only
// catalog collaborator. Each imported row gets its own revision so day
// reconstruction sees every id.
func (u *EstimateUseCase) ImportCollection(ctx context.Context, id string, cmd ImportCollectionCommand) (entities.Estimate, error) {
	cmd.CollectionID = strings.TrimSpace(cmd.CollectionID)
	if cmd.CollectionID == "" {
		return entities.Estimate{}, ErrInvalidCollectionID
	}
	if u.catalog == nil {
		return entities.Estimate{}, fmt.Errorf("%w: catalog source not configured", ErrCatalogUnavailable)
	}

	items, err := u.catalog.CollectionLineItems(ctx, cmd.CollectionID, cmd.Sources)
	if err != nil {
		log.Printf("[estimate][usecase] collection lookup failed collection_id=%s err=%v", cmd.CollectionID, err)
		return entities.Estimate{}, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if len(items) == 0 {
		return entities.Estimate{}, fmt.Errorf("%w: collection %q has no matching items", ErrInvalidLineItem, cmd.CollectionID)
	}

	return u.mutate(ctx, id, func(e *entities.Estimate) error {
		if err := estimate.CanMutateLineItems(e); err != nil {
			return err
		}

		now := u.now()
		for _, src := range items {
			li := src
			li.ID = u.newID()
			li.Total = estimate.LineTotal(li.Quantity, li.UnitPrice)
			e.LineItems = append(e.LineItems, li)

			estimate.AppendRevision(e, entities.ChangeLineItemAdded,
				entities.RevisionDetails{LineItemID: li.ID},
				fmt.Sprintf("Imported %q from collection %s", li.Description, cmd.CollectionID),
				cmd.ModifiedBy, now)
		}
		return nil
	})
}
