package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"contractor_crm/internal/domain/entities"
	"contractor_crm/internal/usecase/interfaces"
)

var ErrMissingCatalogBaseURL = errors.New("missing CATALOG_BASE_URL")

// InventoryClient reads priced collections from the inventory service. Mock
// mode serves a small fixed collection so imports work end to end locally.
//
// Supported env vars:
//   - CATALOG_BASE_URL (e.g. http://inventory:9100)
//   - CATALOG_MOCK (1/true/yes/on enables mock mode)
type InventoryClient struct {
	baseURL  string
	http     *http.Client
	mockMode bool
}

var _ interfaces.ICatalogSource = (*InventoryClient)(nil)

func NewInventoryClient() (*InventoryClient, error) {
	if isCatalogMockEnabled() {
		log.Printf("[catalog][client] mock mode enabled")
		return &InventoryClient{mockMode: true}, nil
	}

	baseURL := strings.TrimRight(os.Getenv("CATALOG_BASE_URL"), "/")
	if baseURL == "" {
		return nil, ErrMissingCatalogBaseURL
	}
	return &InventoryClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type collectionItem struct {
	Ref         string  `json:"ref"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Source      string  `json:"source"`
}

func (c *InventoryClient) CollectionLineItems(ctx context.Context, collectionID string, sources []entities.LineItemSource) ([]entities.LineItem, error) {
	if c.mockMode {
		return filterBySource(mockCollection(collectionID), sources), nil
	}

	endpoint := fmt.Sprintf("%s/collections/%s/items", c.baseURL, url.PathEscape(collectionID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[catalog][client] request failed collection_id=%s err=%v", collectionID, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("catalog service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var rows []collectionItem
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, err
	}

	items := make([]entities.LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.LineItem{
			Description: row.Description,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			Source:      entities.LineItemSource(row.Source),
			CatalogRef:  row.Ref,
		})
	}
	return filterBySource(items, sources), nil
}

func filterBySource(items []entities.LineItem, sources []entities.LineItemSource) []entities.LineItem {
	if len(sources) == 0 {
		return items
	}
	allowed := make(map[entities.LineItemSource]bool, len(sources))
	for _, s := range sources {
		allowed[s] = true
	}
	out := make([]entities.LineItem, 0, len(items))
	for _, li := range items {
		if allowed[li.Source] {
			out = append(out, li)
		}
	}
	return out
}

func mockCollection(collectionID string) []entities.LineItem {
	return []entities.LineItem{
		{Description: "2x4 lumber bundle", Quantity: 10, UnitPrice: 45, Source: entities.LineItemSourceProduct, CatalogRef: collectionID + "/lumber-2x4"},
		{Description: "Framing labor", Quantity: 16, UnitPrice: 65, Source: entities.LineItemSourceLabor, CatalogRef: collectionID + "/labor-framing"},
		{Description: "Miter saw rental", Quantity: 2, UnitPrice: 80, Source: entities.LineItemSourceTool, CatalogRef: collectionID + "/tool-miter"},
	}
}

func isCatalogMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CATALOG_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
