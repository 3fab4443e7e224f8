// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "time"

// TabID uniquely identifies a tab across all windows and collections.
type TabID string

// Tab is an opaque handle to a single browsing tab. The engine never
// interprets Title or URI; they exist so a shell has something to render.
// Whether a tab is pinned is a membership fact of the collection currently
// holding it, never a flag stored on the tab.
type Tab struct {
	ID       TabID
	ParentID TabID // tab this one was opened from; empty when opened directly

	Title string
	URI   string

	CreatedAt time.Time

	// LastSelectedAt is zero until the tab is first selected. It is stamped
	// by the owning coordinator, not by callers, and feeds the
	// most-recently-active re-selection step.
	LastSelectedAt time.Time
}

// NewTab creates a tab handle with the given ID.
func NewTab(id TabID) *Tab {
	return &Tab{
		ID:        id,
		CreatedAt: time.Now(),
	}
}

// NewChildTab creates a tab handle opened from a parent tab.
func NewChildTab(id TabID, parent TabID) *Tab {
	tab := NewTab(id)
	tab.ParentID = parent
	return tab
}

// IsChildOf reports whether this tab was opened from the given tab.
func (t *Tab) IsChildOf(id TabID) bool {
	return t.ParentID != "" && t.ParentID == id
}

// HasSameParent reports whether both tabs were opened from the same parent.
// Tabs without a parent are never siblings of anything.
func (t *Tab) HasSameParent(other *Tab) bool {
	if t.ParentID == "" || other == nil {
		return false
	}
	return t.ParentID == other.ParentID
}
