package strip

import (
	"context"

	"github.com/tabwell/tabwell/internal/application/usecase"
	"github.com/tabwell/tabwell/internal/domain/entity"
	"github.com/tabwell/tabwell/internal/logging"
)

// Append opens a new tab at the end of the unpinned sequence.
func (c *Coordinator) Append(ctx context.Context, title, uri string) *entity.Tab {
	tab := c.newTab(title, uri)
	c.insertTab(ctx, tab, entity.UnpinnedIndex(c.unpinned.Len()))
	return tab
}

// AppendTab inserts an existing handle at the end of the unpinned
// sequence. Returns false when the handle is already a member of either
// sequence.
func (c *Coordinator) AppendTab(ctx context.Context, tab *entity.Tab) bool {
	_, ok := c.insertTab(ctx, tab, entity.UnpinnedIndex(c.unpinned.Len()))
	return ok
}

// InsertAfterSelected opens a new tab next to the current one, marked as
// its child so close-time re-selection can fall back to it. With a pinned
// selection the tab opens at the head of the unpinned sequence; with no
// selection it is appended.
func (c *Coordinator) InsertAfterSelected(ctx context.Context, title, uri string) *entity.Tab {
	if c.sel == nil {
		return c.Append(ctx, title, uri)
	}
	tab := c.newChildTab(c.selTab.ID, title, uri)
	c.insertTab(ctx, tab, c.sel.NextUnpinned())
	return tab
}

// InsertAt inserts an existing handle at the given index, position clamped
// to the section's bounds. Returns the effective index and false on
// duplicate membership.
func (c *Coordinator) InsertAt(ctx context.Context, tab *entity.Tab, at entity.TabIndex) (entity.TabIndex, bool) {
	return c.insertTab(ctx, tab, at)
}

// Duplicate opens a copy of the selected tab next to it. The copy keeps
// the display fields and records the original as its parent.
func (c *Coordinator) Duplicate(ctx context.Context) *entity.Tab {
	orig := c.selTab
	if orig == nil {
		return nil
	}
	dup := c.newChildTab(orig.ID, orig.Title, orig.URI)
	c.insertTab(ctx, dup, c.sel.NextUnpinned())
	return dup
}

// Remove closes the tab at the given index. Returns false when the index
// addresses nothing, which callers must tolerate: the tab may already have
// been closed through another window sharing the pinned sequence.
func (c *Coordinator) Remove(ctx context.Context, idx entity.TabIndex) bool {
	ctx = logging.WithWindowID(ctx, c.windowID)
	log := logging.FromContext(ctx)

	col := c.collection(idx.Section())

	var tab *entity.Tab
	var ok bool
	if idx.IsPinned() {
		c.withPinnedMutation(func() {
			tab, ok = col.RemoveAt(idx.Position())
		})
	} else {
		tab, ok = col.RemoveAt(idx.Position())
	}
	if !ok {
		log.Debug().Stringer("index", idx).Msg("no tab at index, nothing to remove")
		return false
	}
	ctx = logging.WithTabID(ctx, string(tab.ID))
	log = logging.FromContext(ctx)

	if idx.IsUnpinned() {
		c.recentlyClosed.Push(ClosedTab{Tab: tab, Index: idx})
	}

	newSel := c.selectionUC.SelectionAfterRemoval(ctx, usecase.RemovalInput{
		Pinned:       c.pinned.Tabs(),
		Unpinned:     c.unpinned.Tabs(),
		Removed:      tab,
		RemovedIndex: idx,
		Selection:    c.sel,
	})
	c.setSelection(ctx, newSel)

	if idx.IsPinned() {
		c.firePinnedChanged()
	}
	if c.onTabRemoved != nil {
		c.onTabRemoved(tab, c.Selection())
	}

	log.Info().
		Stringer("index", idx).
		Int("remaining", c.counts().Total()).
		Msg("tab closed")
	return true
}

// RemoveSelected closes the currently selected tab.
func (c *Coordinator) RemoveSelected(ctx context.Context) bool {
	if c.sel == nil {
		return false
	}
	return c.Remove(ctx, *c.sel)
}

// CloseOthers closes every unpinned tab except the selected one, as
// repeated single removals so each one replays the re-selection rules and
// fires its signals.
func (c *Coordinator) CloseOthers(ctx context.Context) {
	keep := c.selTab
	for pos := c.unpinned.Len() - 1; pos >= 0; pos-- {
		if c.unpinned.TabAt(pos) == keep {
			continue
		}
		c.Remove(ctx, entity.UnpinnedIndex(pos))
	}
}

// CloseAfter closes every unpinned tab after the selected one. With a
// pinned selection the whole unpinned sequence is after it.
func (c *Coordinator) CloseAfter(ctx context.Context) {
	if c.sel == nil {
		return
	}
	first := 0
	if c.sel.IsUnpinned() {
		first = c.sel.Position() + 1
	}
	for c.unpinned.Len() > first {
		c.Remove(ctx, entity.UnpinnedIndex(c.unpinned.Len()-1))
	}
}

// Move relocates the tab at from so it ends up at to, within one section
// or across the pin boundary. The cursor follows tab identity. Returns
// false when from addresses nothing.
func (c *Coordinator) Move(ctx context.Context, from, to entity.TabIndex) bool {
	ctx = logging.WithWindowID(ctx, c.windowID)
	log := logging.FromContext(ctx)

	src := c.collection(from.Section())
	dst := c.collection(to.Section())

	var pos int
	var ok bool
	mutate := func() { pos, ok = src.MoveTo(from.Position(), dst, to.Position()) }
	if from.IsPinned() || to.IsPinned() {
		c.withPinnedMutation(mutate)
	} else {
		mutate()
	}
	if !ok {
		log.Debug().Stringer("from", from).Stringer("to", to).Msg("move rejected")
		return false
	}
	actualTo := indexAt(to.Section(), pos)

	newSel := c.selectionUC.SelectionAfterMove(ctx, usecase.MoveInput{
		Counts:    c.counts(),
		From:      from,
		To:        actualTo,
		Selection: c.sel,
	})
	c.setSelection(ctx, newSel)

	if from.IsPinned() || to.IsPinned() {
		c.firePinnedChanged()
	}

	log.Debug().Stringer("from", from).Stringer("to", actualTo).Msg("tab moved")
	return true
}

// Pin moves an unpinned tab to the end of the shared pinned sequence.
func (c *Coordinator) Pin(ctx context.Context, idx entity.TabIndex) bool {
	if !idx.IsUnpinned() {
		return false
	}
	return c.Move(ctx, idx, entity.PinnedIndex(c.pinned.Len()))
}

// Unpin moves a pinned tab to the head of this window's unpinned sequence.
func (c *Coordinator) Unpin(ctx context.Context, idx entity.TabIndex) bool {
	if !idx.IsPinned() {
		return false
	}
	return c.Move(ctx, idx, entity.UnpinnedIndex(0))
}

// TransferTo moves an unpinned tab into another window's unpinned
// sequence, recomputing both windows' cursors. Pinned tabs are already
// visible everywhere and cannot be transferred.
func (c *Coordinator) TransferTo(ctx context.Context, idx entity.TabIndex, dst *Coordinator, at int) bool {
	ctx = logging.WithWindowID(ctx, c.windowID)
	log := logging.FromContext(ctx)

	if dst == nil || dst == c || !idx.IsUnpinned() {
		return false
	}
	tab := c.TabAt(idx)
	if tab == nil {
		log.Debug().Stringer("index", idx).Msg("no tab at index, nothing to transfer")
		return false
	}
	ctx = logging.WithTabID(ctx, string(tab.ID))
	log = logging.FromContext(ctx)

	pos, ok := c.unpinned.MoveTo(idx.Position(), dst.unpinned, at)
	if !ok {
		log.Error().
			Str("dst_window_id", dst.windowID).
			Msg("transfer rejected, handle already present in destination")
		return false
	}

	// Source side: the tab left this window, which for this cursor is a
	// removal.
	newSel := c.selectionUC.SelectionAfterRemoval(ctx, usecase.RemovalInput{
		Pinned:       c.pinned.Tabs(),
		Unpinned:     c.unpinned.Tabs(),
		Removed:      tab,
		RemovedIndex: idx,
		Selection:    c.sel,
	})
	c.setSelection(ctx, newSel)

	// Destination side: an arrival, selected per the switch-to-new
	// preference.
	arrival := entity.UnpinnedIndex(pos)
	dst.selectArrival(ctx, arrival)

	log.Info().
		Str("dst_window_id", dst.windowID).
		Int("dst_position", pos).
		Msg("tab transferred")
	return true
}

// ReopenClosed reinserts the most recently closed tab at its old position,
// clamped to the current bounds, and selects it.
func (c *Coordinator) ReopenClosed(ctx context.Context) *entity.Tab {
	ctx = logging.WithWindowID(ctx, c.windowID)
	log := logging.FromContext(ctx)

	closed, ok := c.recentlyClosed.Pop()
	if !ok {
		log.Debug().Msg("nothing to reopen")
		return nil
	}
	ctx = logging.WithTabID(ctx, string(closed.Tab.ID))
	log = logging.FromContext(ctx)

	pos, ok := c.unpinned.Insert(closed.Tab, closed.Index.Position())
	if !ok {
		log.Error().Msg("reopen rejected, handle already present")
		return nil
	}
	reopened := entity.UnpinnedIndex(pos)
	c.setSelection(ctx, &reopened)

	log.Info().
		Stringer("index", reopened).
		Msg("tab reopened")
	return closed.Tab
}

func (c *Coordinator) newTab(title, uri string) *entity.Tab {
	tab := entity.NewTab(c.nextID())
	tab.Title = title
	tab.URI = uri
	return tab
}

func (c *Coordinator) newChildTab(parent entity.TabID, title, uri string) *entity.Tab {
	tab := entity.NewChildTab(c.nextID(), parent)
	tab.Title = title
	tab.URI = uri
	return tab
}

func (c *Coordinator) nextID() entity.TabID {
	if c.idGen == nil {
		return ""
	}
	return entity.TabID(c.idGen())
}

// insertTab places the handle and resolves what the cursor should do: a
// first tab is always selected, otherwise the switch-to-new preference
// decides between selecting the arrival and keeping the cursor on its
// current handle.
func (c *Coordinator) insertTab(ctx context.Context, tab *entity.Tab, at entity.TabIndex) (entity.TabIndex, bool) {
	ctx = logging.WithWindowID(ctx, c.windowID)
	ctx = logging.WithTabID(ctx, string(tab.ID))
	log := logging.FromContext(ctx)

	col := c.collection(at.Section())

	var pos int
	var ok bool
	if at.IsPinned() {
		c.withPinnedMutation(func() {
			pos, ok = col.Insert(tab, at.Position())
		})
	} else {
		pos, ok = col.Insert(tab, at.Position())
	}
	if !ok {
		log.Error().Msg("insert rejected, handle already present")
		return entity.TabIndex{}, false
	}
	actual := indexAt(at.Section(), pos)

	c.selectArrival(ctx, actual)

	if at.IsPinned() {
		c.firePinnedChanged()
	}

	log.Debug().
		Stringer("index", actual).
		Msg("tab inserted")
	return actual, true
}

// selectArrival applies the switch-to-new preference to a tab that just
// arrived at the given index.
func (c *Coordinator) selectArrival(ctx context.Context, arrival entity.TabIndex) {
	if c.cfg.Tabs.SwitchToNewWhenOpened || c.sel == nil {
		c.setSelection(ctx, &arrival)
		return
	}
	newSel := c.selectionUC.SelectionAfterInsertion(ctx, usecase.InsertionInput{
		Counts:     c.counts(),
		InsertedAt: arrival,
		Selection:  c.sel,
	})
	c.setSelection(ctx, newSel)
}
