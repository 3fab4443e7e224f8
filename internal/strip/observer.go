package strip

import (
	"context"

	"github.com/tabwell/tabwell/internal/application/usecase"
	"github.com/tabwell/tabwell/internal/domain/entity"
	"github.com/tabwell/tabwell/internal/logging"
)

// The coordinator observes the shared pinned sequence so that a mutation
// made through another window's coordinator invalidating this window's
// cursor is repaired immediately, with the same rules as a local removal.
// The coordinator's own mutations are suppressed by the re-entrancy guard;
// they already ran the recomputation inline.

// TabInserted implements entity.CollectionObserver.
func (c *Coordinator) TabInserted(_ *entity.TabCollection, tab *entity.Tab, position int) {
	if c.mutatingPinned {
		return
	}
	ctx := logging.WithWindowID(c.baseCtx, c.windowID)
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(tab.ID)).
		Int("position", position).
		Msg("pinned tab inserted elsewhere")

	newSel := c.selectionUC.SelectionAfterInsertion(ctx, usecase.InsertionInput{
		Counts:     c.counts(),
		InsertedAt: entity.PinnedIndex(position),
		Selection:  c.sel,
	})
	c.setSelection(ctx, newSel)
	c.ensureSelection(ctx)
	c.firePinnedChanged()
}

// TabRemoved implements entity.CollectionObserver.
func (c *Coordinator) TabRemoved(_ *entity.TabCollection, tab *entity.Tab, position int) {
	if c.mutatingPinned {
		return
	}
	ctx := logging.WithWindowID(c.baseCtx, c.windowID)
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(tab.ID)).
		Int("position", position).
		Msg("pinned tab removed elsewhere")

	newSel := c.selectionUC.SelectionAfterRemoval(ctx, usecase.RemovalInput{
		Pinned:       c.pinned.Tabs(),
		Unpinned:     c.unpinned.Tabs(),
		Removed:      tab,
		RemovedIndex: entity.PinnedIndex(position),
		Selection:    c.sel,
	})
	c.setSelection(ctx, newSel)
	c.firePinnedChanged()
}

// TabMoved implements entity.CollectionObserver.
func (c *Coordinator) TabMoved(_ *entity.TabCollection, tab *entity.Tab, from, to int) {
	if c.mutatingPinned {
		return
	}
	ctx := logging.WithWindowID(c.baseCtx, c.windowID)
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(tab.ID)).
		Int("from", from).
		Int("to", to).
		Msg("pinned tab reordered elsewhere")

	newSel := c.selectionUC.SelectionAfterMove(ctx, usecase.MoveInput{
		Counts:    c.counts(),
		From:      entity.PinnedIndex(from),
		To:        entity.PinnedIndex(to),
		Selection: c.sel,
	})
	c.setSelection(ctx, newSel)
	c.firePinnedChanged()
}

// ensureSelection repairs the cursor invariant after a foreign insertion:
// a window that was empty (cursor null) now shows the new pinned tab, so
// something must be selected.
func (c *Coordinator) ensureSelection(ctx context.Context) {
	if c.sel != nil {
		return
	}
	if first, ok := entity.FirstIndex(c.counts()); ok {
		c.setSelection(ctx, &first)
	}
}
