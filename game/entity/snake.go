package entity

import "toroidal-snake/game/types"

// Snake stores its cells tail first so moving is an append at the end and
// a reslice at the front. Accessors present the body head first.
type Snake struct {
	body []types.Cell
}

// NewSnake builds a snake from cells given head first.
func NewSnake(cells []types.Cell) *Snake {
	body := make([]types.Cell, len(cells))
	for i, c := range cells {
		body[len(cells)-1-i] = c
	}
	return &Snake{body: body}
}

// Move puts newHead in front of the current head.
func (s *Snake) Move(newHead types.Cell) {
	s.body = append(s.body, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.body) > 0 {
		s.body = s.body[1:]
	}
}

func (s *Snake) GetHead() types.Cell {
	return s.body[len(s.body)-1]
}

func (s *Snake) GetTail() types.Cell {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Contains reports whether c is any body cell.
func (s *Snake) Contains(c types.Cell) bool {
	for _, p := range s.body {
		if p == c {
			return true
		}
	}
	return false
}

// ContainsExceptTail ignores the tail cell, which moves out of the way on
// the same step unless food is eaten.
func (s *Snake) ContainsExceptTail(c types.Cell) bool {
	for _, p := range s.body[1:] {
		if p == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Cell {
	out := make([]types.Cell, len(s.body))
	for i, c := range s.body {
		out[len(s.body)-1-i] = c
	}
	return out
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() map[types.Cell]struct{} {
	set := make(map[types.Cell]struct{}, len(s.body))
	for _, c := range s.body {
		set[c] = struct{}{}
	}
	return set
}
