package usecase

import (
	"context"

	"github.com/tabwell/tabwell/internal/domain/entity"
	"github.com/tabwell/tabwell/internal/domain/policy"
	"github.com/tabwell/tabwell/internal/logging"
)

// ManageSelectionUseCase recomputes a window's selection cursor after a
// mutation to either tab sequence. It is stateless: every call receives the
// full post-mutation state and the previously held cursor, and returns the
// new cursor (nil means no selection). Out-of-range inputs never produce
// errors; they clamp or resolve to absence.
type ManageSelectionUseCase struct {
	strategy policy.Strategy
}

// NewManageSelectionUseCase creates the use case with the given
// re-selection strategy for closed-selected-tab decisions.
func NewManageSelectionUseCase(strategy policy.Strategy) *ManageSelectionUseCase {
	if strategy == nil {
		strategy = policy.Default()
	}
	return &ManageSelectionUseCase{strategy: strategy}
}

// RemovalInput describes a completed removal. Pinned and Unpinned hold the
// remaining tabs; RemovedIndex is the position the tab occupied before
// removal; Selection is the cursor held before the removal (nil = none).
type RemovalInput struct {
	Pinned   []*entity.Tab
	Unpinned []*entity.Tab

	Removed      *entity.Tab
	RemovedIndex entity.TabIndex
	Selection    *entity.TabIndex
}

func (in RemovalInput) counts() entity.SectionCounts {
	return entity.SectionCounts{Pinned: len(in.Pinned), Unpinned: len(in.Unpinned)}
}

// SelectionAfterRemoval applies the re-selection rules in priority order:
// the removal of the selected tab itself is decided by the strategy chain,
// a removal before the selection in the same section shifts the cursor
// back one position, and any other removal only re-validates the cursor.
// The result is defined for every reachable input, including both
// sequences empty.
func (uc *ManageSelectionUseCase) SelectionAfterRemoval(ctx context.Context, in RemovalInput) *entity.TabIndex {
	log := logging.FromContext(ctx)
	c := in.counts()

	if in.Selection == nil {
		// No cursor to maintain; an empty strip stays unselected.
		return nil
	}
	sel := *in.Selection

	if sel.Equal(in.RemovedIndex) {
		if picked, ok := uc.strategy.PickAfterClose(policy.CloseState{
			Pinned:       in.Pinned,
			Unpinned:     in.Unpinned,
			Removed:      in.Removed,
			RemovedIndex: in.RemovedIndex,
		}); ok {
			log.Debug().
				Stringer("removed", in.RemovedIndex).
				Stringer("selection", picked).
				Msg("selected tab closed, strategy picked replacement")
			return &picked
		}
		// The chain missed; clamp the removed position so a non-empty
		// strip always keeps a selection.
		if fallback, ok := in.RemovedIndex.Sanitized(c); ok {
			return &fallback
		}
		log.Debug().Msg("last tab closed, selection cleared")
		return nil
	}

	if sel.SameSection(in.RemovedIndex) && in.RemovedIndex.Position() < sel.Position() {
		shifted := shiftIndex(sel, -1)
		if valid, ok := shifted.Sanitized(c); ok {
			return &valid
		}
		return nil
	}

	if valid, ok := sel.Sanitized(c); ok {
		return &valid
	}
	return nil
}

// InsertionInput describes a completed insertion. Counts are the
// post-insertion section lengths.
type InsertionInput struct {
	Counts     entity.SectionCounts
	InsertedAt entity.TabIndex
	Selection  *entity.TabIndex
}

// SelectionAfterInsertion keeps the cursor on the same tab handle when a
// tab is inserted at or before it in the same section. Whether the newly
// inserted tab steals the selection is the coordinator's call, not this
// one.
func (uc *ManageSelectionUseCase) SelectionAfterInsertion(_ context.Context, in InsertionInput) *entity.TabIndex {
	if in.Selection == nil {
		return nil
	}
	sel := *in.Selection

	if sel.SameSection(in.InsertedAt) && in.InsertedAt.Position() <= sel.Position() {
		sel = shiftIndex(sel, 1)
	}
	if valid, ok := sel.Sanitized(in.Counts); ok {
		return &valid
	}
	return nil
}

// MoveInput describes a completed move, either a reorder within one
// section or a transfer across sections (pin/unpin). Counts are the
// post-move section lengths.
type MoveInput struct {
	Counts    entity.SectionCounts
	From      entity.TabIndex
	To        entity.TabIndex
	Selection *entity.TabIndex
}

// SelectionAfterMove makes the cursor follow tab identity across moves:
// moving the selected tab carries the selection to its destination, and
// moving any other tab shifts the cursor to keep addressing the same
// handle.
func (uc *ManageSelectionUseCase) SelectionAfterMove(ctx context.Context, in MoveInput) *entity.TabIndex {
	log := logging.FromContext(ctx)

	if in.Selection == nil {
		return nil
	}
	sel := *in.Selection

	if sel.Equal(in.From) {
		if moved, ok := in.To.Sanitized(in.Counts); ok {
			log.Debug().
				Stringer("from", in.From).
				Stringer("to", moved).
				Msg("selected tab moved, selection follows")
			return &moved
		}
		return nil
	}

	if sel.SameSection(in.From) && in.From.Position() < sel.Position() {
		sel = shiftIndex(sel, -1)
	}
	if sel.SameSection(in.To) && in.To.Position() <= sel.Position() {
		sel = shiftIndex(sel, 1)
	}
	if valid, ok := sel.Sanitized(in.Counts); ok {
		return &valid
	}
	return nil
}

func shiftIndex(i entity.TabIndex, delta int) entity.TabIndex {
	if i.IsPinned() {
		return entity.PinnedIndex(i.Position() + delta)
	}
	return entity.UnpinnedIndex(i.Position() + delta)
}
