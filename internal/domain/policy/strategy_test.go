package policy

import (
	"testing"
	"time"

	"github.com/tabwell/tabwell/internal/domain/entity"
)

func tab(id entity.TabID) *entity.Tab {
	return entity.NewTab(id)
}

func childTab(id, parent entity.TabID) *entity.Tab {
	return entity.NewChildTab(id, parent)
}

// closedAt builds a CloseState for a removed unpinned tab: remaining is the
// post-removal unpinned sequence, removed occupied position pos.
func closedAt(removed *entity.Tab, pos int, remaining ...*entity.Tab) CloseState {
	return CloseState{
		Unpinned:     remaining,
		Removed:      removed,
		RemovedIndex: entity.UnpinnedIndex(pos),
	}
}

func TestChildOfClosed_PrefersNearestFollowingChild(t *testing.T) {
	closed := tab("origin")
	// Children on both sides of the removed position, the following one
	// closer in rank.
	before := childTab("child-before", "origin")
	after := childTab("child-after", "origin")
	state := closedAt(closed, 2, tab("t0"), before, after, tab("t3"))

	got, ok := ChildOfClosed{}.PickAfterClose(state)
	if !ok {
		t.Fatalf("expected a pick")
	}
	if !got.Equal(entity.UnpinnedIndex(2)) {
		t.Fatalf("picked %v, want unpinned[2] (the following child)", got)
	}
}

func TestChildOfClosed_NoChildrenMisses(t *testing.T) {
	closed := tab("origin")
	state := closedAt(closed, 0, tab("t1"), childTab("t2", "elsewhere"))

	if _, ok := (ChildOfClosed{}).PickAfterClose(state); ok {
		t.Fatalf("no children of the closed tab remain, expected a miss")
	}
}

func TestSiblingOfClosed_PicksNearestSibling(t *testing.T) {
	closed := childTab("closed", "parent")
	sibling := childTab("sibling", "parent")
	state := closedAt(closed, 1, tab("t0"), tab("t1"), sibling)

	got, ok := SiblingOfClosed{}.PickAfterClose(state)
	if !ok {
		t.Fatalf("expected a pick")
	}
	if !got.Equal(entity.UnpinnedIndex(2)) {
		t.Fatalf("picked %v, want unpinned[2]", got)
	}
}

func TestSiblingOfClosed_ParentlessTabHasNoSiblings(t *testing.T) {
	closed := tab("closed")
	state := closedAt(closed, 0, childTab("other", "parent"))

	if _, ok := (SiblingOfClosed{}).PickAfterClose(state); ok {
		t.Fatalf("a tab without a parent must not match siblings")
	}
}

func TestMostRecentlyActive_PicksLatestTimestamp(t *testing.T) {
	now := time.Now()
	older := tab("older")
	older.LastSelectedAt = now.Add(-time.Hour)
	newest := tab("newest")
	newest.LastSelectedAt = now
	never := tab("never")

	state := closedAt(tab("closed"), 0, older, newest, never)

	got, ok := MostRecentlyActive{}.PickAfterClose(state)
	if !ok {
		t.Fatalf("expected a pick")
	}
	if !got.Equal(entity.UnpinnedIndex(1)) {
		t.Fatalf("picked %v, want unpinned[1] (the newest)", got)
	}
}

func TestMostRecentlyActive_TieResolvesToNearestFollowing(t *testing.T) {
	at := time.Now()
	left := tab("left")
	left.LastSelectedAt = at
	right := tab("right")
	right.LastSelectedAt = at

	// Removed position 1: left sits just before, right just after. The
	// tie must break toward the following side.
	state := closedAt(tab("closed"), 1, left, right, tab("t2"))

	got, ok := MostRecentlyActive{}.PickAfterClose(state)
	if !ok {
		t.Fatalf("expected a pick")
	}
	if !got.Equal(entity.UnpinnedIndex(1)) {
		t.Fatalf("picked %v, want unpinned[1] (following side wins the tie)", got)
	}
}

func TestMostRecentlyActive_AllZeroTimestampsMiss(t *testing.T) {
	state := closedAt(tab("closed"), 0, tab("a"), tab("b"))
	if _, ok := (MostRecentlyActive{}).PickAfterClose(state); ok {
		t.Fatalf("tabs never selected must not compete")
	}
}

func TestFollowing_CrossesSectionBoundary(t *testing.T) {
	// Removed the last pinned tab; the follower is the first unpinned.
	state := CloseState{
		Pinned:       []*entity.Tab{tab("p0")},
		Unpinned:     []*entity.Tab{tab("u0")},
		Removed:      tab("closed"),
		RemovedIndex: entity.PinnedIndex(1),
	}

	got, ok := Following{}.PickAfterClose(state)
	if !ok {
		t.Fatalf("expected a pick")
	}
	if !got.Equal(entity.UnpinnedIndex(0)) {
		t.Fatalf("picked %v, want unpinned[0]", got)
	}
}

func TestFollowing_MissesWhenRemovedWasLast(t *testing.T) {
	state := closedAt(tab("closed"), 2, tab("t0"), tab("t1"))
	if _, ok := (Following{}).PickAfterClose(state); ok {
		t.Fatalf("no tab follows the removed position, expected a miss")
	}
}

func TestPreceding_PicksTabBeforeRemoved(t *testing.T) {
	state := closedAt(tab("closed"), 2, tab("t0"), tab("t1"))

	got, ok := Preceding{}.PickAfterClose(state)
	if !ok {
		t.Fatalf("expected a pick")
	}
	if !got.Equal(entity.UnpinnedIndex(1)) {
		t.Fatalf("picked %v, want unpinned[1]", got)
	}
}

func TestPreceding_MissesOnEmptyState(t *testing.T) {
	state := closedAt(tab("closed"), 0)
	if _, ok := (Preceding{}).PickAfterClose(state); ok {
		t.Fatalf("nothing remains, expected a miss")
	}
}

func TestChain_FirstMatchWins(t *testing.T) {
	state := closedAt(tab("closed"), 2, tab("t0"), tab("t1"))

	// Following misses (removed was last), Preceding hits.
	got, ok := Chain{Following{}, Preceding{}}.PickAfterClose(state)
	if !ok || !got.Equal(entity.UnpinnedIndex(1)) {
		t.Fatalf("chain pick = %v %v, want unpinned[1] true", got, ok)
	}
}

func TestDefaultChain_PrecedingFallback(t *testing.T) {
	// No children, no siblings, no timestamps, removed was last: only the
	// preceding step can answer.
	state := closedAt(tab("closed"), 2, tab("t0"), tab("t1"))

	got, ok := Default().PickAfterClose(state)
	if !ok || !got.Equal(entity.UnpinnedIndex(1)) {
		t.Fatalf("default chain pick = %v %v, want unpinned[1] true", got, ok)
	}
}

func TestDefaultChain_EmptyStateMeansNoSelection(t *testing.T) {
	state := closedAt(tab("closed"), 0)
	if _, ok := Default().PickAfterClose(state); ok {
		t.Fatalf("an empty strip has nothing to select")
	}
}

func TestDefaultChain_ChildOutranksRecency(t *testing.T) {
	recent := tab("recent")
	recent.LastSelectedAt = time.Now()
	closed := tab("origin")
	child := childTab("child", "origin")

	state := closedAt(closed, 0, recent, child)

	got, ok := Default().PickAfterClose(state)
	if !ok || !got.Equal(entity.UnpinnedIndex(1)) {
		t.Fatalf("pick = %v %v, want the child at unpinned[1]", got, ok)
	}
}
