// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clip

// Stack is the clip rectangle of one render target together with the
// rectangles saved by Push. The current rectangle never leaves the target
// bounds.
type Stack struct {
	entries []Rect
	target  Rect
	current Rect
}

// NewStack creates a stack for a target of the given bounds, clipping to
// the whole target.
func NewStack(target Rect) *Stack {
	return &Stack{
		entries: make([]Rect, 0, 8),
		target:  target,
		current: target,
	}
}

// Push saves the current rectangle and narrows it to its intersection
// with r.
func (s *Stack) Push(r Rect) {
	s.entries = append(s.entries, s.current)
	s.current = s.current.Intersect(r)
}

// Pop restores the rectangle saved by the matching Push. It reports false,
// changing nothing, if the stack is empty.
func (s *Stack) Pop() bool {
	if len(s.entries) == 0 {
		return false
	}

	last := len(s.entries) - 1
	s.current = s.entries[last]
	s.entries = s.entries[:last]
	return true
}

// Set replaces the current rectangle. It reports false, changing nothing,
// if r is not inside the target.
func (s *Stack) Set(r Rect) bool {
	if !s.target.ContainsRect(r) {
		return false
	}
	s.current = r
	return true
}

// Reset clips to the whole target. Saved rectangles are kept.
func (s *Stack) Reset() {
	s.current = s.target
}

// Bounds returns the current clip rectangle.
func (s *Stack) Bounds() Rect {
	return s.current
}

// Target returns the bounds of the render target.
func (s *Stack) Target() Rect {
	return s.target
}

// Depth returns the number of saved rectangles.
func (s *Stack) Depth() int {
	return len(s.entries)
}
