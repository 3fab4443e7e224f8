package entity

import "fmt"

// Section identifies which of the two tab sequences an index addresses.
type Section uint8

const (
	// SectionPinned addresses the pinned sequence shared across windows.
	SectionPinned Section = iota
	// SectionUnpinned addresses a window's own unpinned sequence.
	SectionUnpinned
)

// String returns the section name used in logs.
func (s Section) String() string {
	if s == SectionPinned {
		return "pinned"
	}
	return "unpinned"
}

// TabIndex is a tagged position addressing either the pinned or the unpinned
// sequence. Exactly one section applies; the discriminant makes that a
// type-level fact. Indices are only meaningful against the sequence lengths
// they were computed for: recompute after every mutation, never cache across
// one.
type TabIndex struct {
	section  Section
	position int
}

// PinnedIndex returns an index addressing the pinned sequence.
func PinnedIndex(position int) TabIndex {
	return TabIndex{section: SectionPinned, position: position}
}

// UnpinnedIndex returns an index addressing the unpinned sequence.
func UnpinnedIndex(position int) TabIndex {
	return TabIndex{section: SectionUnpinned, position: position}
}

// Section reports which sequence the index addresses.
func (i TabIndex) Section() Section { return i.section }

// Position reports the offset within the index's section.
func (i TabIndex) Position() int { return i.position }

// IsPinned reports whether the index addresses the pinned sequence.
func (i TabIndex) IsPinned() bool { return i.section == SectionPinned }

// IsUnpinned reports whether the index addresses the unpinned sequence.
func (i TabIndex) IsUnpinned() bool { return i.section == SectionUnpinned }

// SameSection reports whether both indices address the same sequence,
// regardless of position.
func (i TabIndex) SameSection(other TabIndex) bool {
	return i.section == other.section
}

// Equal reports whether both indices address the same position in the same
// sequence.
func (i TabIndex) Equal(other TabIndex) bool {
	return i.section == other.section && i.position == other.position
}

// Before orders indices: every pinned index sorts before every unpinned
// index; within a section, by position.
func (i TabIndex) Before(other TabIndex) bool {
	if i.section != other.section {
		return i.section == SectionPinned
	}
	return i.position < other.position
}

// String renders the index for logs, e.g. "pinned[0]".
func (i TabIndex) String() string {
	return fmt.Sprintf("%s[%d]", i.section, i.position)
}

// SectionCounts supplies the current lengths of both sequences. All index
// navigation is relative to a counts snapshot taken after the mutation in
// question.
type SectionCounts struct {
	Pinned   int
	Unpinned int
}

// Total returns the combined length of both sequences.
func (c SectionCounts) Total() int { return c.Pinned + c.Unpinned }

// IsEmpty reports whether both sequences are empty.
func (c SectionCounts) IsEmpty() bool { return c.Total() == 0 }

// Contains reports whether the index addresses an existing element.
func (c SectionCounts) Contains(i TabIndex) bool {
	if i.position < 0 {
		return false
	}
	if i.IsPinned() {
		return i.position < c.Pinned
	}
	return i.position < c.Unpinned
}

// OrdinalOf maps an index to its position in the concatenated order
// (pinned first, then unpinned).
func (c SectionCounts) OrdinalOf(i TabIndex) int {
	if i.IsPinned() {
		return i.position
	}
	return c.Pinned + i.position
}

// AtOrdinal maps a concatenated position back to an index. Returns false
// when the ordinal addresses nothing.
func (c SectionCounts) AtOrdinal(n int) (TabIndex, bool) {
	if n < 0 || n >= c.Total() {
		return TabIndex{}, false
	}
	if n < c.Pinned {
		return PinnedIndex(n), true
	}
	return UnpinnedIndex(n - c.Pinned), true
}

// FirstIndex returns the index of the very first tab overall: the first
// pinned tab when any exist, else the first unpinned. False when both
// sequences are empty.
func FirstIndex(c SectionCounts) (TabIndex, bool) {
	return c.AtOrdinal(0)
}

// LastIndex returns the index of the very last tab overall. False when both
// sequences are empty.
func LastIndex(c SectionCounts) (TabIndex, bool) {
	return c.AtOrdinal(c.Total() - 1)
}

// Next returns the adjacent index when both sequences are treated as one
// ring: pinned then unpinned, wrapping from the last unpinned back to the
// first pinned. A stale receiver is treated as its sanitized form. False
// only when both sequences are empty.
func (i TabIndex) Next(c SectionCounts) (TabIndex, bool) {
	cur, ok := i.Sanitized(c)
	if !ok {
		return TabIndex{}, false
	}
	return c.AtOrdinal((c.OrdinalOf(cur) + 1) % c.Total())
}

// Previous is the ring counterpart of Next, wrapping from the first pinned
// back to the last unpinned.
func (i TabIndex) Previous(c SectionCounts) (TabIndex, bool) {
	cur, ok := i.Sanitized(c)
	if !ok {
		return TabIndex{}, false
	}
	return c.AtOrdinal((c.OrdinalOf(cur) - 1 + c.Total()) % c.Total())
}

// NextUnpinned returns the unpinned index immediately after this one, used
// when inserting next to the current tab. For a pinned receiver the result
// is the head of the unpinned sequence.
func (i TabIndex) NextUnpinned() TabIndex {
	if i.IsPinned() {
		return UnpinnedIndex(0)
	}
	return UnpinnedIndex(i.position + 1)
}

// Sanitized clamps a possibly stale index to the nearest valid index under
// the given counts: a position past a section's end falls to that section's
// last element, and an index into an empty section crosses over (pinned to
// the first unpinned, unpinned to the last pinned). False when both
// sequences are empty, meaning there is nothing to select.
func (i TabIndex) Sanitized(c SectionCounts) (TabIndex, bool) {
	if c.IsEmpty() {
		return TabIndex{}, false
	}

	pos := i.position
	if pos < 0 {
		pos = 0
	}

	if i.IsPinned() {
		if c.Pinned == 0 {
			return UnpinnedIndex(0), true
		}
		if pos >= c.Pinned {
			pos = c.Pinned - 1
		}
		return PinnedIndex(pos), true
	}

	if c.Unpinned == 0 {
		return PinnedIndex(c.Pinned - 1), true
	}
	if pos >= c.Unpinned {
		pos = c.Unpinned - 1
	}
	return UnpinnedIndex(pos), true
}
