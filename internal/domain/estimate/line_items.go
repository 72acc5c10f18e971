package estimate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"contractor_crm/internal/domain/entities"
)

// ErrInvalidReorder is returned when a reorder request is not a permutation
// of the live line-item ids.
var ErrInvalidReorder = errors.New("reorder is not a permutation of current line items")

// FindDuplicateLineItems groups rows sharing the same description and unit
// price (description compared case-insensitively, whitespace-trimmed). Used
// for UI warnings only; duplicates are not an error.
func FindDuplicateLineItems(items []entities.LineItem) [][]entities.LineItem {
	groups := make(map[string][]entities.LineItem)
	var order []string
	for _, li := range items {
		key := strings.ToLower(strings.TrimSpace(li.Description)) + "|" +
			decimal.NewFromFloat(li.UnitPrice).Round(2).String()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], li)
	}

	var dupes [][]entities.LineItem
	for _, key := range order {
		if g := groups[key]; len(g) > 1 {
			dupes = append(dupes, g)
		}
	}
	return dupes
}

// ApplyOrder rearranges items to follow orderedIDs. The ids must be exactly
// the live ids, each once.
func ApplyOrder(items []entities.LineItem, orderedIDs []string) ([]entities.LineItem, error) {
	if len(orderedIDs) != len(items) {
		return nil, fmt.Errorf("%w: got %d ids for %d items", ErrInvalidReorder, len(orderedIDs), len(items))
	}

	byID := make(map[string]entities.LineItem, len(items))
	for _, li := range items {
		byID[li.ID] = li
	}

	out := make([]entities.LineItem, 0, len(items))
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		li, ok := byID[id]
		if !ok || seen[id] {
			return nil, fmt.Errorf("%w: id %q", ErrInvalidReorder, id)
		}
		seen[id] = true
		out = append(out, li)
	}
	return out, nil
}
