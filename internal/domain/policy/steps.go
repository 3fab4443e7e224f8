package policy

import (
	"time"

	"github.com/tabwell/tabwell/internal/domain/entity"
)

// ChildOfClosed selects the nearest remaining tab that was opened from the
// closed tab.
type ChildOfClosed struct{}

// PickAfterClose implements Strategy.
func (ChildOfClosed) PickAfterClose(s CloseState) (entity.TabIndex, bool) {
	if s.Removed == nil {
		return entity.TabIndex{}, false
	}
	return s.nearestMatching(func(t *entity.Tab) bool {
		return t.IsChildOf(s.Removed.ID)
	})
}

// SiblingOfClosed selects the nearest remaining tab sharing the closed
// tab's parent. A closed tab without a parent has no siblings.
type SiblingOfClosed struct{}

// PickAfterClose implements Strategy.
func (SiblingOfClosed) PickAfterClose(s CloseState) (entity.TabIndex, bool) {
	if s.Removed == nil || s.Removed.ParentID == "" {
		return entity.TabIndex{}, false
	}
	return s.nearestMatching(func(t *entity.Tab) bool {
		return t.HasSameParent(s.Removed)
	})
}

// MostRecentlyActive selects the remaining tab that was active most
// recently. Tabs never selected (zero timestamp) do not compete. Ties on
// the timestamp fall to the tab nearer the removed position, following
// side first, which keeps the outcome a total order.
type MostRecentlyActive struct{}

// PickAfterClose implements Strategy.
func (MostRecentlyActive) PickAfterClose(s CloseState) (entity.TabIndex, bool) {
	total := s.Counts().Total()

	var latest time.Time
	found := false
	for n := 0; n < total; n++ {
		at := s.TabAt(n).LastSelectedAt
		if at.IsZero() {
			continue
		}
		if !found || at.After(latest) {
			latest = at
			found = true
		}
	}
	if !found {
		return entity.TabIndex{}, false
	}

	return s.nearestMatching(func(t *entity.Tab) bool {
		return t.LastSelectedAt.Equal(latest)
	})
}

// Following selects the tab immediately after the removed position in
// concatenated order, crossing the section boundary when the removed tab
// was the last pinned one.
type Following struct{}

// PickAfterClose implements Strategy.
func (Following) PickAfterClose(s CloseState) (entity.TabIndex, bool) {
	return s.Counts().AtOrdinal(s.removedOrdinal())
}

// Preceding selects the tab immediately before the removed position in
// concatenated order.
type Preceding struct{}

// PickAfterClose implements Strategy.
func (Preceding) PickAfterClose(s CloseState) (entity.TabIndex, bool) {
	return s.Counts().AtOrdinal(s.removedOrdinal() - 1)
}
