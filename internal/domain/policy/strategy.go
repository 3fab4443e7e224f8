// Package policy holds the product rules deciding which tab to select
// after the currently selected tab is closed. The rules are deliberately
// split into small strategies composed in a chain so each branch can be
// exercised on its own.
package policy

import (
	"github.com/tabwell/tabwell/internal/domain/entity"
)

// Strategy picks the tab to select after the selected tab was removed.
type Strategy interface {
	// PickAfterClose returns the index to select, or false to pass the
	// decision on to the next strategy in a chain.
	PickAfterClose(s CloseState) (entity.TabIndex, bool)
}

// CloseState is a snapshot of the strip taken right after the selected tab
// was removed. Pinned and Unpinned hold the remaining tabs.
type CloseState struct {
	Pinned   []*entity.Tab
	Unpinned []*entity.Tab

	// Removed is the closed tab; RemovedIndex is the position it occupied
	// before removal.
	Removed      *entity.Tab
	RemovedIndex entity.TabIndex
}

// Counts returns the post-removal section lengths.
func (s CloseState) Counts() entity.SectionCounts {
	return entity.SectionCounts{Pinned: len(s.Pinned), Unpinned: len(s.Unpinned)}
}

// TabAt returns the remaining tab at the given concatenated position, or
// nil when the ordinal addresses nothing.
func (s CloseState) TabAt(ordinal int) *entity.Tab {
	if ordinal < 0 {
		return nil
	}
	if ordinal < len(s.Pinned) {
		return s.Pinned[ordinal]
	}
	ordinal -= len(s.Pinned)
	if ordinal < len(s.Unpinned) {
		return s.Unpinned[ordinal]
	}
	return nil
}

// removedOrdinal is the concatenated position the removed tab occupied.
// In the post-removal concatenation the tab now at this ordinal, when one
// exists, is the removed tab's immediate follower.
func (s CloseState) removedOrdinal() int {
	if s.RemovedIndex.IsPinned() {
		return s.RemovedIndex.Position()
	}
	return len(s.Pinned) + s.RemovedIndex.Position()
}

// nearestMatching returns the remaining tab closest to the removed
// position that satisfies pred, preferring the following side on equal
// distance.
func (s CloseState) nearestMatching(pred func(*entity.Tab) bool) (entity.TabIndex, bool) {
	c := s.Counts()
	r := s.removedOrdinal()

	best := -1
	bestRank := 0
	for n := 0; n < c.Total(); n++ {
		if !pred(s.TabAt(n)) {
			continue
		}
		rank := rankFrom(r, n)
		if best == -1 || rank < bestRank {
			best, bestRank = n, rank
		}
	}
	if best == -1 {
		return entity.TabIndex{}, false
	}
	return c.AtOrdinal(best)
}

// rankFrom orders candidates by distance from the removed position,
// following side first: ranks 0,1 are the tabs just after and just before,
// 2,3 the next pair out, and so on.
func rankFrom(removed, candidate int) int {
	if candidate >= removed {
		return 2 * (candidate - removed)
	}
	return 2*(removed-candidate) - 1
}

// Chain tries each strategy in order and returns the first hit.
type Chain []Strategy

// PickAfterClose implements Strategy.
func (c Chain) PickAfterClose(s CloseState) (entity.TabIndex, bool) {
	for _, st := range c {
		if idx, ok := st.PickAfterClose(s); ok {
			return idx, true
		}
	}
	return entity.TabIndex{}, false
}

// Default returns the product chain: a tab opened from the closed one,
// then a sibling sharing its parent, then the most recently active tab,
// then the following and preceding neighbours. A miss at every step means
// nothing remains to select.
func Default() Strategy {
	return Chain{
		ChildOfClosed{},
		SiblingOfClosed{},
		MostRecentlyActive{},
		Following{},
		Preceding{},
	}
}
