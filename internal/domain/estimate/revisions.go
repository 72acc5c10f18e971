package estimate

import (
	"sort"
	"time"

	"contractor_crm/internal/domain/entities"
)

// AppendRevision appends one change-log entry and advances the aggregate's
// revision counter. This is the only place CurrentRevision changes, which
// keeps revisionNumber gap-free and equal to len(RevisionsHistory); the
// surrounding conditional write makes the pair atomic under concurrent
// editors.
func AppendRevision(e *entities.Estimate, changeType entities.ChangeType, details entities.RevisionDetails, changes, modifiedBy string, now time.Time) entities.Revision {
	rev := entities.Revision{
		RevisionNumber: e.CurrentRevision + 1,
		Date:           now,
		ChangeType:     changeType,
		Details:        details,
		Changes:        changes,
		ModifiedByName: modifiedBy,
	}
	e.RevisionsHistory = append(e.RevisionsHistory, rev)
	e.CurrentRevision = rev.RevisionNumber
	return rev
}

// LineItemStatus is the reconstructed per-day status of a line item.
const (
	LineItemStatusAdded     = "added"
	LineItemStatusRemoved   = "removed"
	LineItemStatusUnchanged = "unchanged"
)

// DayLineItem is a line item annotated with what happened to it on a given
// day.
type DayLineItem struct {
	entities.LineItem
	Status string `json:"status"`
}

// DayGroup is one calendar day of revision history together with the
// reconstructed added/removed view of that day's line items.
type DayGroup struct {
	// Day is the calendar date in YYYY-MM-DD form (UTC).
	Day       string              `json:"day"`
	Revisions []entities.Revision `json:"revisions"`
	LineItems []DayLineItem       `json:"line_items"`
}

const dayLayout = "2006-01-02"

// GroupRevisionsByDay projects the append-only history into day groups,
// oldest day first. Revisions within a day preserve insertion order, and each
// day carries the reconstructed line-item view from ReconstructDay.
func GroupRevisionsByDay(live []entities.LineItem, history []entities.Revision) []DayGroup {
	byDay := make(map[string][]entities.Revision)
	var days []string
	for _, rev := range history {
		day := rev.Date.UTC().Format(dayLayout)
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], rev)
	}
	sort.Strings(days)

	groups := make([]DayGroup, 0, len(days))
	for _, day := range days {
		revs := byDay[day]
		groups = append(groups, DayGroup{
			Day:       day,
			Revisions: revs,
			LineItems: ReconstructDay(live, revs),
		})
	}
	return groups
}

// ReconstructDay computes which line items were added or removed by the given
// day's revisions. Rows deleted that day are re-inserted from their stored
// snapshots when the live list no longer contains them, so history keeps
// showing them.
func ReconstructDay(live []entities.LineItem, dayRevisions []entities.Revision) []DayLineItem {
	added := make(map[string]bool)
	removed := make(map[string]*entities.LineItem)
	for _, rev := range dayRevisions {
		switch rev.ChangeType {
		case entities.ChangeLineItemAdded:
			added[rev.Details.LineItemID] = true
		case entities.ChangeLineItemDeleted:
			removed[rev.Details.LineItemID] = rev.Details.DeletedItem
		}
	}

	out := make([]DayLineItem, 0, len(live)+len(removed))
	liveIDs := make(map[string]bool, len(live))
	for _, li := range live {
		liveIDs[li.ID] = true
		status := LineItemStatusUnchanged
		if added[li.ID] {
			status = LineItemStatusAdded
		}
		out = append(out, DayLineItem{LineItem: li, Status: status})
	}
	// Deleted rows absent from the live list come back from their snapshots.
	for _, rev := range dayRevisions {
		if rev.ChangeType != entities.ChangeLineItemDeleted {
			continue
		}
		id := rev.Details.LineItemID
		if liveIDs[id] {
			continue
		}
		snap := removed[id]
		if snap == nil {
			snap = &entities.LineItem{ID: id}
		}
		out = append(out, DayLineItem{LineItem: *snap, Status: LineItemStatusRemoved})
	}
	return out
}
