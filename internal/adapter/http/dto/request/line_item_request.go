package request

import (
	"strings"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/usecase"
)

type AddLineItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
	Source      string  `json:"source" binding:"required"`
	CatalogRef  string  `json:"catalog_ref"`
	ModifiedBy  string  `json:"modified_by"`
}

func (r AddLineItemRequest) ToCommand() usecase.AddLineItemCommand {
	return usecase.AddLineItemCommand{
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Source:      entities.LineItemSource(strings.ToLower(strings.TrimSpace(r.Source))),
		CatalogRef:  r.CatalogRef,
		ModifiedBy:  strings.TrimSpace(r.ModifiedBy),
	}
}

type UpdateLineItemRequest struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unit_price"`
	Source      *string  `json:"source"`
	ModifiedBy  string   `json:"modified_by"`
}

func (r UpdateLineItemRequest) ToCommand() usecase.UpdateLineItemCommand {
	cmd := usecase.UpdateLineItemCommand{
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		ModifiedBy:  strings.TrimSpace(r.ModifiedBy),
	}
	if r.Source != nil {
		s := entities.LineItemSource(strings.ToLower(strings.TrimSpace(*r.Source)))
		cmd.Source = &s
	}
	return cmd
}

type ReorderLineItemsRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required"`
	ModifiedBy string   `json:"modified_by"`
}

type ImportCollectionRequest struct {
	CollectionID string   `json:"collection_id" binding:"required"`
	Sources      []string `json:"sources"`
	ModifiedBy   string   `json:"modified_by"`
}

func (r ImportCollectionRequest) ToCommand() usecase.ImportCollectionCommand {
	cmd := usecase.ImportCollectionCommand{
		CollectionID: strings.TrimSpace(r.CollectionID),
		ModifiedBy:   strings.TrimSpace(r.ModifiedBy),
	}
	for _, s := range r.Sources {
		cmd.Sources = append(cmd.Sources, entities.LineItemSource(strings.ToLower(strings.TrimSpace(s))))
	}
	return cmd
}
