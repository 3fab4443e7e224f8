package entity

import "testing"

func TestTabIndex_SectionPredicates(t *testing.T) {
	p := PinnedIndex(2)
	u := UnpinnedIndex(2)

	if !p.IsPinned() || p.IsUnpinned() {
		t.Fatalf("pinned index misreports its section")
	}
	if !u.IsUnpinned() || u.IsPinned() {
		t.Fatalf("unpinned index misreports its section")
	}
	if p.SameSection(u) {
		t.Fatalf("pinned and unpinned must not share a section")
	}
	if !p.SameSection(PinnedIndex(7)) {
		t.Fatalf("same-section comparison must ignore position")
	}
}

func TestTabIndex_Ordering(t *testing.T) {
	if !PinnedIndex(9).Before(UnpinnedIndex(0)) {
		t.Fatalf("every pinned index sorts before every unpinned index")
	}
	if UnpinnedIndex(0).Before(PinnedIndex(9)) {
		t.Fatalf("unpinned must not sort before pinned")
	}
	if !PinnedIndex(1).Before(PinnedIndex(2)) {
		t.Fatalf("within a section, ordering is by position")
	}
	if !PinnedIndex(1).Equal(PinnedIndex(1)) || PinnedIndex(1).Equal(UnpinnedIndex(1)) {
		t.Fatalf("equality must compare section and position")
	}
}

func TestTabIndex_RingNavigation(t *testing.T) {
	c := SectionCounts{Pinned: 2, Unpinned: 3}

	next, ok := PinnedIndex(1).Next(c)
	if !ok || !next.Equal(UnpinnedIndex(0)) {
		t.Fatalf("next after last pinned = %v, want unpinned[0]", next)
	}

	next, ok = UnpinnedIndex(2).Next(c)
	if !ok || !next.Equal(PinnedIndex(0)) {
		t.Fatalf("next after last unpinned must wrap to first pinned, got %v", next)
	}

	prev, ok := PinnedIndex(0).Previous(c)
	if !ok || !prev.Equal(UnpinnedIndex(2)) {
		t.Fatalf("previous before first pinned must wrap to last unpinned, got %v", prev)
	}

	prev, ok = UnpinnedIndex(0).Previous(c)
	if !ok || !prev.Equal(PinnedIndex(1)) {
		t.Fatalf("previous before first unpinned = %v, want pinned[1]", prev)
	}
}

func TestTabIndex_RingNavigationEmpty(t *testing.T) {
	c := SectionCounts{}
	if _, ok := PinnedIndex(0).Next(c); ok {
		t.Fatalf("next on empty counts must report absence")
	}
	if _, ok := UnpinnedIndex(5).Previous(c); ok {
		t.Fatalf("previous on empty counts must report absence")
	}
}

func TestFirstAndLastIndex(t *testing.T) {
	first, ok := FirstIndex(SectionCounts{Pinned: 1, Unpinned: 2})
	if !ok || !first.Equal(PinnedIndex(0)) {
		t.Fatalf("first overall = %v, want pinned[0]", first)
	}

	first, ok = FirstIndex(SectionCounts{Unpinned: 2})
	if !ok || !first.Equal(UnpinnedIndex(0)) {
		t.Fatalf("first with no pinned tabs = %v, want unpinned[0]", first)
	}

	last, ok := LastIndex(SectionCounts{Pinned: 1, Unpinned: 2})
	if !ok || !last.Equal(UnpinnedIndex(1)) {
		t.Fatalf("last overall = %v, want unpinned[1]", last)
	}

	last, ok = LastIndex(SectionCounts{Pinned: 3})
	if !ok || !last.Equal(PinnedIndex(2)) {
		t.Fatalf("last with no unpinned tabs = %v, want pinned[2]", last)
	}

	if _, ok := FirstIndex(SectionCounts{}); ok {
		t.Fatalf("first of empty counts must report absence")
	}
	if _, ok := LastIndex(SectionCounts{}); ok {
		t.Fatalf("last of empty counts must report absence")
	}
}

func TestTabIndex_NextUnpinned(t *testing.T) {
	if got := PinnedIndex(3).NextUnpinned(); !got.Equal(UnpinnedIndex(0)) {
		t.Fatalf("next unpinned after a pinned index = %v, want unpinned[0]", got)
	}
	if got := UnpinnedIndex(1).NextUnpinned(); !got.Equal(UnpinnedIndex(2)) {
		t.Fatalf("next unpinned after unpinned[1] = %v, want unpinned[2]", got)
	}
}

func TestTabIndex_Sanitized(t *testing.T) {
	tests := []struct {
		name   string
		index  TabIndex
		counts SectionCounts
		want   TabIndex
		wantOK bool
	}{
		{"valid stays put", UnpinnedIndex(1), SectionCounts{Unpinned: 3}, UnpinnedIndex(1), true},
		{"past end clamps to last", UnpinnedIndex(9), SectionCounts{Unpinned: 3}, UnpinnedIndex(2), true},
		{"negative clamps to zero", UnpinnedIndex(-2), SectionCounts{Unpinned: 3}, UnpinnedIndex(0), true},
		{"empty unpinned falls to last pinned", UnpinnedIndex(0), SectionCounts{Pinned: 2}, PinnedIndex(1), true},
		{"empty pinned falls to first unpinned", PinnedIndex(0), SectionCounts{Unpinned: 2}, UnpinnedIndex(0), true},
		{"pinned past end clamps", PinnedIndex(5), SectionCounts{Pinned: 2, Unpinned: 1}, PinnedIndex(1), true},
		{"both empty reports absence", UnpinnedIndex(0), SectionCounts{}, TabIndex{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.index.Sanitized(tt.counts)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("sanitized = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSectionCounts_Ordinals(t *testing.T) {
	c := SectionCounts{Pinned: 2, Unpinned: 2}

	if got := c.OrdinalOf(PinnedIndex(1)); got != 1 {
		t.Fatalf("ordinal of pinned[1] = %d, want 1", got)
	}
	if got := c.OrdinalOf(UnpinnedIndex(1)); got != 3 {
		t.Fatalf("ordinal of unpinned[1] = %d, want 3", got)
	}

	idx, ok := c.AtOrdinal(2)
	if !ok || !idx.Equal(UnpinnedIndex(0)) {
		t.Fatalf("index at ordinal 2 = %v, want unpinned[0]", idx)
	}
	if _, ok := c.AtOrdinal(4); ok {
		t.Fatalf("ordinal past the end must report absence")
	}
	if _, ok := c.AtOrdinal(-1); ok {
		t.Fatalf("negative ordinal must report absence")
	}
}
