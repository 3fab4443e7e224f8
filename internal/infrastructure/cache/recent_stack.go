// Package cache provides small in-memory stores for the application layer.
package cache

import "container/list"

// RecentStack is a bounded most-recent-first store. Push places an item on
// top; Pop removes and returns the newest item. When the stack is at
// capacity, pushing evicts the oldest entry.
//
// The strip engine runs on a single logical thread, so the stack keeps no
// lock.
type RecentStack[T any] struct {
	capacity int
	order    *list.List // Front = newest, Back = oldest
}

// NewRecentStack creates a stack with the given capacity.
// Capacity must be positive; if zero or negative, a capacity of 1 is used.
func NewRecentStack[T any](capacity int) *RecentStack[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &RecentStack[T]{
		capacity: capacity,
		order:    list.New(),
	}
}

// Push places an item on top of the stack, evicting the oldest entry when
// the stack is at capacity.
func (s *RecentStack[T]) Push(item T) {
	if s.order.Len() >= s.capacity {
		if oldest := s.order.Back(); oldest != nil {
			s.order.Remove(oldest)
		}
	}
	s.order.PushFront(item)
}

// SetCapacity adjusts the capacity, evicting the oldest entries when the
// new capacity is below the current length. Non-positive values clamp to 1.
func (s *RecentStack[T]) SetCapacity(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	s.capacity = capacity
	for s.order.Len() > s.capacity {
		if oldest := s.order.Back(); oldest != nil {
			s.order.Remove(oldest)
		}
	}
}

// Pop removes and returns the newest item.
// Returns the zero value and false when the stack is empty.
func (s *RecentStack[T]) Pop() (T, bool) {
	front := s.order.Front()
	if front == nil {
		var zero T
		return zero, false
	}
	s.order.Remove(front)
	return front.Value.(T), true
}

// Peek returns the newest item without removing it.
func (s *RecentStack[T]) Peek() (T, bool) {
	front := s.order.Front()
	if front == nil {
		var zero T
		return zero, false
	}
	return front.Value.(T), true
}

// Len returns the number of items currently stored.
func (s *RecentStack[T]) Len() int {
	return s.order.Len()
}

// Clear removes all items.
func (s *RecentStack[T]) Clear() {
	s.order.Init()
}
