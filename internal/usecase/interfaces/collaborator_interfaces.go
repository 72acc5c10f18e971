package interfaces

import (
	"context"

	"contractor_crm/internal/domain/entities"
)

// EmailMessage is the payload handed to the outbound email collaborator.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string
	CC      []string
	ReplyTo string
	// Token is the opaque client-view token; the dispatcher renders it into
	// the review link.
	Token string
}

// IEmailDispatcher abstracts outbound email transport. Dispatch failures are
// external-dependency errors: already-persisted estimate state is kept.
type IEmailDispatcher interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// IPurchaseOrderService is the external system of record for procurement.
type IPurchaseOrderService interface {
	CreatePurchaseOrder(ctx context.Context, estimateID string, items []entities.LineItem) (poID string, err error)
}

// ICatalogSource is the read-only inventory/catalog collaborator used to seed
// the line-item ledger from a priced collection. The engine never mutates the
// catalog.
type ICatalogSource interface {
	CollectionLineItems(ctx context.Context, collectionID string, sources []entities.LineItemSource) ([]entities.LineItem, error)
}
