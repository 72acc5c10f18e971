package entities

// LineItemSource classifies where a line item came from. Product and material
// rows are the only ones eligible for purchase-order generation.

type LineItemSource string

const (
	LineItemSourceProduct   LineItemSource = "product"
	LineItemSourceLabor     LineItemSource = "labor"
	LineItemSourceTool      LineItemSource = "tool"
	LineItemSourceEquipment LineItemSource = "equipment"
)

// LineItem is one priced row of an estimate.
//
// Total is always quantity × unit price, maintained by the ledger operations;
// it is stored rather than recomputed on read so that persisted subtotals and
// revision snapshots stay self-contained.
type LineItem struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Quantity    float64        `json:"quantity"`
	UnitPrice   float64        `json:"unit_price"`
	Total       float64        `json:"total"`
	Source      LineItemSource `json:"source"`
	// CatalogRef points back at the product/inventory catalog entry the row
	// was seeded from, when any.
	CatalogRef string `json:"catalog_ref,omitempty"`
}

// Purchasable reports whether the row represents physical goods that a
// purchase order can procure.
func (li LineItem) Purchasable() bool {
	return li.Source == LineItemSourceProduct
}
