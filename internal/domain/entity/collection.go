package entity

import "fmt"

// CollectionObserver receives synchronous notifications after a
// TabCollection mutation has completed, before the mutating call returns.
// The pinned collection is shared by every window's coordinator, so a
// mutation made through one coordinator reaches the others through this
// interface. Callbacks run on the caller's goroutine in registration order.
type CollectionObserver interface {
	// TabInserted reports that tab now occupies position in c.
	TabInserted(c *TabCollection, tab *Tab, position int)
	// TabRemoved reports that tab was removed from position in c.
	TabRemoved(c *TabCollection, tab *Tab, position int)
	// TabMoved reports that tab moved between two positions within c.
	TabMoved(c *TabCollection, tab *Tab, from, to int)
}

// TabCollection is an ordered, mutable sequence of tab handles. Insertion
// order is the on-screen tab order. A handle appears at most once per
// collection; moving a handle between collections is remove-then-insert,
// never a copy. The zero number of observers costs nothing; the shared
// pinned collection carries one observer per window.
type TabCollection struct {
	tabs      []*Tab
	observers []CollectionObserver
}

// NewTabCollection creates an empty collection.
func NewTabCollection() *TabCollection {
	return &TabCollection{tabs: make([]*Tab, 0)}
}

// Len returns the number of tabs.
func (c *TabCollection) Len() int { return len(c.tabs) }

// TabAt returns the tab at position, or nil when position is out of bounds.
// An absent tab is a normal outcome, not a fault.
func (c *TabCollection) TabAt(position int) *Tab {
	if position < 0 || position >= len(c.tabs) {
		return nil
	}
	return c.tabs[position]
}

// Tabs returns a copy of the ordered handles.
func (c *TabCollection) Tabs() []*Tab {
	out := make([]*Tab, len(c.tabs))
	copy(out, c.tabs)
	return out
}

// IndexOf returns the position of the tab with the given ID.
func (c *TabCollection) IndexOf(id TabID) (int, bool) {
	for i, t := range c.tabs {
		if t.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether a tab with the given ID is a member.
func (c *TabCollection) Contains(id TabID) bool {
	_, ok := c.IndexOf(id)
	return ok
}

// Append inserts the tab at the end. Returns false when the handle is
// already a member; a duplicate is a caller bug, not a state to merge.
func (c *TabCollection) Append(tab *Tab) bool {
	_, ok := c.Insert(tab, len(c.tabs))
	return ok
}

// Insert places the tab at position, clamped to [0, Len]. Returns the
// effective position and false when the handle is already a member.
func (c *TabCollection) Insert(tab *Tab, position int) (int, bool) {
	if tab == nil || c.Contains(tab.ID) {
		return 0, false
	}
	if position < 0 {
		position = 0
	}
	if position > len(c.tabs) {
		position = len(c.tabs)
	}

	c.tabs = append(c.tabs, nil)
	copy(c.tabs[position+1:], c.tabs[position:])
	c.tabs[position] = tab

	c.notifyInserted(tab, position)
	return position, true
}

// RemoveAt removes and returns the tab at position. Returns false when the
// position is out of bounds, which callers must tolerate: a pinned tab can
// already have been removed through another window's coordinator.
func (c *TabCollection) RemoveAt(position int) (*Tab, bool) {
	if position < 0 || position >= len(c.tabs) {
		return nil, false
	}
	tab := c.tabs[position]
	c.tabs = append(c.tabs[:position], c.tabs[position+1:]...)

	c.notifyRemoved(tab, position)
	return tab, true
}

// MoveTo removes the tab at from and inserts it into dst so it ends up at
// position to (clamped), as one logical step. dst may be the receiver, which
// reorders in place. Returns the effective destination position. False when
// from is out of bounds or dst already holds the handle; in the
// cross-collection case the source is left untouched on failure.
func (c *TabCollection) MoveTo(from int, dst *TabCollection, to int) (int, bool) {
	if from < 0 || from >= len(c.tabs) {
		return 0, false
	}
	tab := c.tabs[from]

	if dst == c {
		if to < 0 {
			to = 0
		}
		if to >= len(c.tabs) {
			to = len(c.tabs) - 1
		}
		if to == from {
			return to, true
		}
		c.tabs = append(c.tabs[:from], c.tabs[from+1:]...)
		c.tabs = append(c.tabs, nil)
		copy(c.tabs[to+1:], c.tabs[to:])
		c.tabs[to] = tab

		c.notifyMoved(tab, from, to)
		return to, true
	}

	if dst == nil || dst.Contains(tab.ID) {
		return 0, false
	}

	c.tabs = append(c.tabs[:from], c.tabs[from+1:]...)
	if to < 0 {
		to = 0
	}
	if to > len(dst.tabs) {
		to = len(dst.tabs)
	}
	dst.tabs = append(dst.tabs, nil)
	copy(dst.tabs[to+1:], dst.tabs[to:])
	dst.tabs[to] = tab

	// Both halves are in place before anyone hears about either.
	c.notifyRemoved(tab, from)
	dst.notifyInserted(tab, to)
	return to, true
}

// AddObserver registers an observer for subsequent mutations.
func (c *TabCollection) AddObserver(o CollectionObserver) {
	if o == nil {
		return
	}
	c.observers = append(c.observers, o)
}

// RemoveObserver unregisters a previously added observer.
func (c *TabCollection) RemoveObserver(o CollectionObserver) {
	for i, existing := range c.observers {
		if existing == o {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// Validate scans for duplicate handles. A non-nil result is a programming
// error in a caller, not a runtime condition to recover from.
func (c *TabCollection) Validate() error {
	seen := make(map[TabID]int, len(c.tabs))
	for i, t := range c.tabs {
		if t == nil {
			return fmt.Errorf("nil tab at position %d", i)
		}
		if prev, ok := seen[t.ID]; ok {
			return fmt.Errorf("tab %s present at positions %d and %d", t.ID, prev, i)
		}
		seen[t.ID] = i
	}
	return nil
}

func (c *TabCollection) notifyInserted(tab *Tab, position int) {
	for _, o := range c.observers {
		o.TabInserted(c, tab, position)
	}
}

func (c *TabCollection) notifyRemoved(tab *Tab, position int) {
	for _, o := range c.observers {
		o.TabRemoved(c, tab, position)
	}
}

func (c *TabCollection) notifyMoved(tab *Tab, from, to int) {
	for _, o := range c.observers {
		o.TabMoved(c, tab, from, to)
	}
}
