package entities

import "time"

// ChangeType discriminates what a revision recorded.

type ChangeType string

const (
	ChangeLineItemAdded   ChangeType = "line_item_added"
	ChangeLineItemUpdated ChangeType = "line_item_updated"
	ChangeLineItemDeleted ChangeType = "line_item_deleted"
	ChangeReordered       ChangeType = "reordered"
	ChangeFinancial       ChangeType = "financial_change"
)

// RevisionDetails carries the machine-readable payload of a revision.
//
// DeletedItem keeps the full pre-deletion snapshot so that day-grouped history
// can reconstruct a removed row after the live list no longer contains it.
type RevisionDetails struct {
	LineItemID    string    `json:"line_item_id,omitempty"`
	ChangedFields []string  `json:"changed_fields,omitempty"`
	DeletedItem   *LineItem `json:"deleted_item,omitempty"`
}

// Revision is one immutable entry of the estimate's change log.
//
// Invariants:
//   - RevisionNumber is 1-based and gap-free: it always equals the aggregate's
//     CurrentRevision at append time plus one.
//   - The history is append-only and never reordered or mutated after write.
type Revision struct {
	RevisionNumber int             `json:"revision_number"`
	Date           time.Time       `json:"date"`
	ChangeType     ChangeType      `json:"change_type"`
	Details        RevisionDetails `json:"details"`
	Changes        string          `json:"changes"`
	ModifiedByName string          `json:"modified_by_name,omitempty"`
}
