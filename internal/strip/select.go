package strip

import (
	"context"

	"github.com/tabwell/tabwell/internal/domain/entity"
)

// Select moves the cursor to the given index, clamped to the current
// bounds. With no tabs at all the cursor stays empty.
func (c *Coordinator) Select(ctx context.Context, idx entity.TabIndex) {
	if valid, ok := idx.Sanitized(c.counts()); ok {
		c.setSelection(ctx, &valid)
	}
}

// SelectNext moves the cursor to the next tab in the pinned-then-unpinned
// ring, wrapping from the last unpinned tab to the first pinned one.
func (c *Coordinator) SelectNext(ctx context.Context) {
	c.selectAdjacent(ctx, entity.TabIndex.Next)
}

// SelectPrevious moves the cursor to the previous tab in the ring.
func (c *Coordinator) SelectPrevious(ctx context.Context) {
	c.selectAdjacent(ctx, entity.TabIndex.Previous)
}

func (c *Coordinator) selectAdjacent(ctx context.Context, step func(entity.TabIndex, entity.SectionCounts) (entity.TabIndex, bool)) {
	counts := c.counts()
	if c.sel == nil {
		if first, ok := entity.FirstIndex(counts); ok {
			c.setSelection(ctx, &first)
		}
		return
	}
	if next, ok := step(*c.sel, counts); ok {
		c.setSelection(ctx, &next)
	}
}

// SelectFirst moves the cursor to the first tab overall.
func (c *Coordinator) SelectFirst(ctx context.Context) {
	if first, ok := entity.FirstIndex(c.counts()); ok {
		c.setSelection(ctx, &first)
	}
}

// SelectLast moves the cursor to the last tab overall.
func (c *Coordinator) SelectLast(ctx context.Context) {
	if last, ok := entity.LastIndex(c.counts()); ok {
		c.setSelection(ctx, &last)
	}
}

// SelectOrdinal moves the cursor to the n-th tab in concatenated order.
// Out-of-range ordinals clamp to the last tab.
func (c *Coordinator) SelectOrdinal(ctx context.Context, n int) {
	counts := c.counts()
	if idx, ok := counts.AtOrdinal(n); ok {
		c.setSelection(ctx, &idx)
		return
	}
	c.SelectLast(ctx)
}
