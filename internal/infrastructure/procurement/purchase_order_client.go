package procurement

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/usecase/interfaces"
)

var ErrMissingProcurementBaseURL = errors.New("missing PROCUREMENT_BASE_URL")

// PurchaseOrderClient talks to the external procurement service over HTTP.
// Mock mode fabricates a PO id locally.
//
// Supported env vars:
//   - PROCUREMENT_BASE_URL (e.g. http://procurement:9000)
//   - PROCUREMENT_MOCK (1/true/yes/on enables mock mode)
type PurchaseOrderClient struct {
	baseURL  string
	http     *http.Client
	mockMode bool
}

var _ interfaces.IPurchaseOrderService = (*PurchaseOrderClient)(nil)

func NewPurchaseOrderClient() (*PurchaseOrderClient, error) {
	if isProcurementMockEnabled() {
		log.Printf("[procurement][client] mock mode enabled")
		return &PurchaseOrderClient{mockMode: true}, nil
	}

	baseURL := strings.TrimRight(os.Getenv("PROCUREMENT_BASE_URL"), "/")
	if baseURL == "" {
		return nil, ErrMissingProcurementBaseURL
	}
	return &PurchaseOrderClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type purchaseOrderRequest struct {
	EstimateID string              `json:"estimate_id"`
	Items      []purchaseOrderItem `json:"items"`
}

type purchaseOrderItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	CatalogRef  string  `json:"catalog_ref,omitempty"`
}

type purchaseOrderResponse struct {
	ID string `json:"id"`
}

func (c *PurchaseOrderClient) CreatePurchaseOrder(ctx context.Context, estimateID string, items []entities.LineItem) (string, error) {
	if c.mockMode {
		id := "po-" + uuid.NewString()
		log.Printf("[procurement][client] mock purchase order estimate_id=%s po_id=%s items=%d", estimateID, id, len(items))
		return id, nil
	}

	req := purchaseOrderRequest{EstimateID: estimateID}
	for _, li := range items {
		req.Items = append(req.Items, purchaseOrderItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			CatalogRef:  li.CatalogRef,
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/purchase-orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Printf("[procurement][client] request failed estimate_id=%s err=%v", estimateID, err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("procurement service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out purchaseOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.New("procurement service returned an empty po id")
	}
	log.Printf("[procurement][client] purchase order created estimate_id=%s po_id=%s", estimateID, out.ID)
	return out.ID, nil
}

func isProcurementMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PROCUREMENT_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
