// Package strip implements the per-window tab strip coordinator. A
// coordinator owns one window's unpinned tab sequence and its selection
// cursor, and shares the pinned sequence with every other window's
// coordinator. All selection recomputation funnels through the
// application-layer use case; UI shells only drive inbound operations and
// observe the outbound callbacks.
package strip

import (
	"context"
	"fmt"
	"time"

	"github.com/tabwell/tabwell/internal/application/usecase"
	"github.com/tabwell/tabwell/internal/domain/entity"
	"github.com/tabwell/tabwell/internal/infrastructure/cache"
	"github.com/tabwell/tabwell/internal/infrastructure/config"
	"github.com/tabwell/tabwell/internal/logging"
)

// IDGenerator is a function type for generating unique tab IDs.
type IDGenerator func() string

// ClosedTab records a removed tab together with the position it occupied,
// for reopen-closed.
type ClosedTab struct {
	Tab   *entity.Tab
	Index entity.TabIndex
}

// Config holds construction parameters for a Coordinator.
type Config struct {
	// WindowID identifies the owning window in logs and signals.
	WindowID string

	// Pinned is the sequence shared across all windows. Required; the
	// same instance must be handed to every coordinator of the profile.
	Pinned *entity.TabCollection

	SelectionUC *usecase.ManageSelectionUseCase
	IDGenerator IDGenerator
	Now         func() time.Time
	Config      *config.Config
}

// Coordinator manages one window's tab strip lifecycle.
type Coordinator struct {
	windowID string
	pinned   *entity.TabCollection
	unpinned *entity.TabCollection

	selectionUC *usecase.ManageSelectionUseCase
	idGen       IDGenerator
	now         func() time.Time
	cfg         *config.Config

	// baseCtx carries the logger for observer callbacks, which arrive
	// without a caller context.
	baseCtx context.Context

	// sel is the selection cursor; nil means no selection, which is only
	// a valid state while both sequences are empty. selTab is the handle
	// the cursor addresses, kept alongside so identity survives index
	// shifts.
	sel    *entity.TabIndex
	selTab *entity.Tab

	recentlyClosed *cache.RecentStack[ClosedTab]

	// mutatingPinned suppresses the coordinator's own echoed
	// notifications while it is itself mutating the shared sequence.
	mutatingPinned bool

	// Callbacks to the UI layer; all fire synchronously before the
	// inbound call returns.
	onSelectionChanged func(*entity.TabIndex)
	onTabRemoved       func(*entity.Tab, *entity.TabIndex)
	onPinnedChanged    func()
}

// NewCoordinator creates a coordinator for one window and registers it on
// the shared pinned sequence. When the shared sequence already holds tabs,
// the first overall tab is selected so the cursor invariant (null only
// while empty) holds from the start.
func NewCoordinator(ctx context.Context, cfg Config) *Coordinator {
	log := logging.FromContext(ctx)
	log.Debug().Str("window_id", cfg.WindowID).Msg("creating strip coordinator")

	conf := cfg.Config
	if conf == nil {
		conf = config.DefaultConfig()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	selectionUC := cfg.SelectionUC
	if selectionUC == nil {
		selectionUC = usecase.NewManageSelectionUseCase(nil)
	}

	c := &Coordinator{
		baseCtx:        logging.WithComponent(ctx, "strip"),
		windowID:       cfg.WindowID,
		pinned:         cfg.Pinned,
		unpinned:       entity.NewTabCollection(),
		selectionUC:    selectionUC,
		idGen:          cfg.IDGenerator,
		now:            now,
		cfg:            conf,
		recentlyClosed: cache.NewRecentStack[ClosedTab](conf.Tabs.RecentlyClosedLimit),
	}
	if c.pinned == nil {
		c.pinned = entity.NewTabCollection()
	}
	c.pinned.AddObserver(c)

	if first, ok := entity.FirstIndex(c.counts()); ok {
		c.setSelection(ctx, &first)
	}
	return c
}

// Close unregisters the coordinator from the shared pinned sequence.
func (c *Coordinator) Close() {
	c.pinned.RemoveObserver(c)
}

// ApplyConfig installs refreshed runtime settings, typically delivered by a
// config-file reload. A lowered recently-closed limit evicts the oldest
// stored tabs immediately.
func (c *Coordinator) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	c.cfg = cfg
	c.recentlyClosed.SetCapacity(cfg.Tabs.RecentlyClosedLimit)
}

// WindowID returns the owning window's identifier.
func (c *Coordinator) WindowID() string { return c.windowID }

// SetOnSelectionChanged sets the callback fired when the cursor changes,
// carrying the new index (nil = no selection).
func (c *Coordinator) SetOnSelectionChanged(fn func(*entity.TabIndex)) {
	c.onSelectionChanged = fn
}

// SetOnTabRemoved sets the callback fired after a tab is removed through
// this coordinator, carrying the removed tab and the recomputed cursor.
// A nil cursor means the strip is empty; shells use that to close the
// window.
func (c *Coordinator) SetOnTabRemoved(fn func(*entity.Tab, *entity.TabIndex)) {
	c.onTabRemoved = fn
}

// SetOnPinnedChanged sets the callback fired whenever the shared pinned
// sequence changes membership, whether through this coordinator or another
// window's.
func (c *Coordinator) SetOnPinnedChanged(fn func()) {
	c.onPinnedChanged = fn
}

// Selection returns a copy of the cursor, or nil when nothing is selected.
func (c *Coordinator) Selection() *entity.TabIndex {
	if c.sel == nil {
		return nil
	}
	v := *c.sel
	return &v
}

// SelectedTab returns the tab the cursor addresses, or nil.
func (c *Coordinator) SelectedTab() *entity.Tab { return c.selTab }

// PinnedTabs returns the shared pinned sequence in order.
func (c *Coordinator) PinnedTabs() []*entity.Tab { return c.pinned.Tabs() }

// UnpinnedTabs returns this window's unpinned sequence in order.
func (c *Coordinator) UnpinnedTabs() []*entity.Tab { return c.unpinned.Tabs() }

// Counts returns the current section lengths.
func (c *Coordinator) Counts() entity.SectionCounts { return c.counts() }

// RecentlyClosedCount returns the number of reopenable tabs.
func (c *Coordinator) RecentlyClosedCount() int { return c.recentlyClosed.Len() }

// TabAt returns the tab at the given index, or nil when the index
// addresses nothing. An absent tab is a normal outcome.
func (c *Coordinator) TabAt(idx entity.TabIndex) *entity.Tab {
	return c.collection(idx.Section()).TabAt(idx.Position())
}

// Validate checks the strip invariants: no duplicates within a sequence,
// no handle in both sequences, and a cursor that addresses a live element
// exactly when tabs exist. A failure is a programming error in a caller.
func (c *Coordinator) Validate() error {
	if err := c.pinned.Validate(); err != nil {
		return fmt.Errorf("pinned: %w", err)
	}
	if err := c.unpinned.Validate(); err != nil {
		return fmt.Errorf("unpinned: %w", err)
	}
	for _, t := range c.unpinned.Tabs() {
		if c.pinned.Contains(t.ID) {
			return fmt.Errorf("tab %s present in both sequences", t.ID)
		}
	}
	counts := c.counts()
	if c.sel != nil && !counts.Contains(*c.sel) {
		return fmt.Errorf("selection %s out of bounds", *c.sel)
	}
	if c.sel == nil && !counts.IsEmpty() {
		return fmt.Errorf("no selection while %d tabs exist", counts.Total())
	}
	return nil
}

func (c *Coordinator) counts() entity.SectionCounts {
	return entity.SectionCounts{Pinned: c.pinned.Len(), Unpinned: c.unpinned.Len()}
}

func (c *Coordinator) collection(s entity.Section) *entity.TabCollection {
	if s == entity.SectionPinned {
		return c.pinned
	}
	return c.unpinned
}

func indexAt(s entity.Section, position int) entity.TabIndex {
	if s == entity.SectionPinned {
		return entity.PinnedIndex(position)
	}
	return entity.UnpinnedIndex(position)
}

// withPinnedMutation runs fn with the re-entrancy guard set, so the
// coordinator's own observer callbacks become no-ops for the duration.
func (c *Coordinator) withPinnedMutation(fn func()) {
	c.mutatingPinned = true
	defer func() { c.mutatingPinned = false }()
	fn()
}

// setSelection installs the new cursor, stamps the newly selected tab's
// last-selected timestamp when the addressed handle changed, and fires the
// selection-changed callback.
func (c *Coordinator) setSelection(ctx context.Context, newSel *entity.TabIndex) {
	log := logging.FromContext(ctx)

	var newTab *entity.Tab
	if newSel != nil {
		newTab = c.TabAt(*newSel)
	}

	indexChanged := !indexPtrEqual(c.sel, newSel)
	tabChanged := newTab != c.selTab

	if newSel == nil {
		c.sel = nil
	} else {
		v := *newSel
		c.sel = &v
	}
	c.selTab = newTab

	if newTab != nil && tabChanged {
		newTab.LastSelectedAt = c.now()
		log.Debug().
			Str("window_id", c.windowID).
			Str("tab_id", string(newTab.ID)).
			Stringer("selection", *c.sel).
			Msg("tab selected")
	}

	if (indexChanged || tabChanged) && c.onSelectionChanged != nil {
		c.onSelectionChanged(c.Selection())
	}
}

func (c *Coordinator) firePinnedChanged() {
	if c.onPinnedChanged != nil {
		c.onPinnedChanged()
	}
}

func indexPtrEqual(a, b *entity.TabIndex) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
