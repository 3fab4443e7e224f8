package entity

import "testing"

func tabs(ids ...TabID) []*Tab {
	out := make([]*Tab, len(ids))
	for i, id := range ids {
		out[i] = NewTab(id)
	}
	return out
}

func order(c *TabCollection) string {
	s := ""
	for i, t := range c.Tabs() {
		if i > 0 {
			s += ","
		}
		s += string(t.ID)
	}
	return s
}

func TestTabCollection_AppendAndDuplicateRejection(t *testing.T) {
	c := NewTabCollection()
	a := NewTab("a")

	if !c.Append(a) {
		t.Fatalf("append of a fresh handle must succeed")
	}
	if c.Append(a) {
		t.Fatalf("append of a present handle must be rejected")
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestTabCollection_InsertClampsPosition(t *testing.T) {
	c := NewTabCollection()
	for _, tab := range tabs("a", "b") {
		c.Append(tab)
	}

	pos, ok := c.Insert(NewTab("front"), -5)
	if !ok || pos != 0 {
		t.Fatalf("insert at -5: pos=%d ok=%v, want 0 true", pos, ok)
	}
	pos, ok = c.Insert(NewTab("back"), 99)
	if !ok || pos != 3 {
		t.Fatalf("insert at 99: pos=%d ok=%v, want 3 true", pos, ok)
	}
	if got := order(c); got != "front,a,b,back" {
		t.Fatalf("order = %s", got)
	}
}

func TestTabCollection_RemoveAtOutOfBounds(t *testing.T) {
	c := NewTabCollection()
	c.Append(NewTab("a"))

	if _, ok := c.RemoveAt(1); ok {
		t.Fatalf("remove past the end must fail")
	}
	if _, ok := c.RemoveAt(-1); ok {
		t.Fatalf("remove at negative must fail")
	}

	tab, ok := c.RemoveAt(0)
	if !ok || tab.ID != "a" {
		t.Fatalf("remove at 0 = %v %v", tab, ok)
	}
	if c.Len() != 0 {
		t.Fatalf("collection should be empty")
	}
}

func TestTabCollection_MoveToSelfReorders(t *testing.T) {
	c := NewTabCollection()
	for _, tab := range tabs("a", "b", "c") {
		c.Append(tab)
	}

	pos, ok := c.MoveTo(0, c, 2)
	if !ok || pos != 2 {
		t.Fatalf("move 0->2: pos=%d ok=%v", pos, ok)
	}
	if got := order(c); got != "b,c,a" {
		t.Fatalf("order = %s, want b,c,a", got)
	}

	// Destination clamps into bounds.
	pos, ok = c.MoveTo(2, c, 99)
	if !ok || pos != 2 {
		t.Fatalf("move with oversized destination: pos=%d ok=%v", pos, ok)
	}
}

func TestTabCollection_MoveToOtherCollection(t *testing.T) {
	src := NewTabCollection()
	dst := NewTabCollection()
	for _, tab := range tabs("a", "b") {
		src.Append(tab)
	}
	dst.Append(NewTab("x"))

	pos, ok := src.MoveTo(0, dst, 0)
	if !ok || pos != 0 {
		t.Fatalf("cross move: pos=%d ok=%v", pos, ok)
	}

	// The handle is present exactly once, in the destination only.
	if src.Contains("a") {
		t.Fatalf("moved handle still present in source")
	}
	if idx, ok := dst.IndexOf("a"); !ok || idx != 0 {
		t.Fatalf("moved handle at %d in destination, want 0", idx)
	}
	if err := src.Validate(); err != nil {
		t.Fatalf("source validate: %v", err)
	}
	if err := dst.Validate(); err != nil {
		t.Fatalf("destination validate: %v", err)
	}
}

func TestTabCollection_MoveToRejectsDuplicateInDestination(t *testing.T) {
	src := NewTabCollection()
	dst := NewTabCollection()
	shared := NewTab("a")
	src.Append(shared)
	dst.Append(NewTab("a")) // distinct handle, same ID

	if _, ok := src.MoveTo(0, dst, 0); ok {
		t.Fatalf("move into a collection already holding the ID must fail")
	}
	if !src.Contains("a") {
		t.Fatalf("failed move must leave the source untouched")
	}
}

type recordingObserver struct {
	events []string
}

func (r *recordingObserver) TabInserted(_ *TabCollection, tab *Tab, position int) {
	r.events = append(r.events, "insert:"+string(tab.ID))
	_ = position
}

func (r *recordingObserver) TabRemoved(_ *TabCollection, tab *Tab, position int) {
	r.events = append(r.events, "remove:"+string(tab.ID))
	_ = position
}

func (r *recordingObserver) TabMoved(_ *TabCollection, tab *Tab, from, to int) {
	r.events = append(r.events, "move:"+string(tab.ID))
	_, _ = from, to
}

func TestTabCollection_ObserversFireSynchronously(t *testing.T) {
	c := NewTabCollection()
	first := &recordingObserver{}
	second := &recordingObserver{}
	c.AddObserver(first)
	c.AddObserver(second)

	c.Append(NewTab("a"))
	c.Append(NewTab("b"))
	c.MoveTo(0, c, 1)
	c.RemoveAt(0)

	want := []string{"insert:a", "insert:b", "move:a", "remove:b"}
	for _, o := range []*recordingObserver{first, second} {
		if len(o.events) != len(want) {
			t.Fatalf("events = %v, want %v", o.events, want)
		}
		for i := range want {
			if o.events[i] != want[i] {
				t.Fatalf("events[%d] = %s, want %s", i, o.events[i], want[i])
			}
		}
	}

	c.RemoveObserver(second)
	c.Append(NewTab("c"))
	if len(second.events) != len(want) {
		t.Fatalf("removed observer must not receive further events")
	}
	if first.events[len(first.events)-1] != "insert:c" {
		t.Fatalf("remaining observer missed an event")
	}
}

func TestTabCollection_CrossMoveNotifiesAfterBothHalves(t *testing.T) {
	src := NewTabCollection()
	dst := NewTabCollection()
	tab := NewTab("a")
	src.Append(tab)

	checked := false
	src.AddObserver(&funcObserver{
		onRemoved: func(c *TabCollection, removed *Tab, _ int) {
			// By the time anyone hears about the removal, the handle must
			// already be in the destination.
			if !dst.Contains(removed.ID) {
				t.Errorf("removal observed before insertion completed")
			}
			checked = true
		},
	})

	if _, ok := src.MoveTo(0, dst, 0); !ok {
		t.Fatalf("move failed")
	}
	if !checked {
		t.Fatalf("removal observer did not fire")
	}
}

type funcObserver struct {
	onInserted func(*TabCollection, *Tab, int)
	onRemoved  func(*TabCollection, *Tab, int)
	onMoved    func(*TabCollection, *Tab, int, int)
}

func (f *funcObserver) TabInserted(c *TabCollection, tab *Tab, pos int) {
	if f.onInserted != nil {
		f.onInserted(c, tab, pos)
	}
}

func (f *funcObserver) TabRemoved(c *TabCollection, tab *Tab, pos int) {
	if f.onRemoved != nil {
		f.onRemoved(c, tab, pos)
	}
}

func (f *funcObserver) TabMoved(c *TabCollection, tab *Tab, from, to int) {
	if f.onMoved != nil {
		f.onMoved(c, tab, from, to)
	}
}
