package snake

import "slices"

// minLength is the shortest body the rules keep.
const minLength = 2

// Snake is the ordered body with the head at index 0, the heading it last
// moved along, a buffered steer for the next tick, and the growth counter.
type Snake struct {
	body    []Cell
	heading Heading
	next    Heading // Applied at the start of the next tick
	growth  int     // Ticks left in which the tail is kept
	age     int     // Ticks processed since reset
}

// newSnake creates a two-cell snake with its head at head, moving along h.
func newSnake(head Cell, h Heading) Snake {
	return Snake{
		body:    []Cell{head, head.Add(h.Opposite())},
		heading: h,
		next:    h,
	}
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the heading of the last move.
func (s *Snake) Heading() Heading {
	return s.heading
}

// PendingGrowth returns the number of future ticks that keep the tail.
func (s *Snake) PendingGrowth() int {
	return s.growth
}

// Age returns the number of ticks processed since reset.
func (s *Snake) Age() int {
	return s.age
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []Cell {
	return slices.Clone(s.body)
}

// Has reports whether c is part of the body.
func (s *Snake) Has(c Cell) bool {
	return s.Index(c) >= 0
}

// Index returns the body position of c, or -1.
func (s *Snake) Index(c Cell) int {
	return slices.Index(s.body, c)
}

// Steer buffers a heading for the next tick. A heading opposite to the one
// the snake last moved along is ignored. Reports whether it was accepted.
func (s *Snake) Steer(h Heading) bool {
	if !h.IsUnit() || h.IsOpposite(s.heading) {
		return false
	}
	s.next = h
	return true
}

// nextHead applies the buffered steer and returns the cell ahead.
func (s *Snake) nextHead() Cell {
	s.heading = s.next
	return s.Head().Add(s.heading)
}

// advance inserts a new head and applies the tail rule.
func (s *Snake) advance(head Cell) {
	s.body = slices.Insert(s.body, 0, head)
	s.dropTail()
}

// dropTail removes the tail unless growth is pending.
func (s *Snake) dropTail() {
	if s.growth > 0 {
		s.growth--
		return
	}
	if len(s.body) > minLength {
		s.body = s.body[:len(s.body)-1]
	}
}

// truncateAt cuts the body so it starts at index i, making that segment the
// head. A cut at the tail keeps the segment before it as the neck. The tail
// rule does not run on a cut; pending growth carries over to later ticks.
func (s *Snake) truncateAt(i int) {
	kept := slices.Clone(s.body[i:])
	if len(kept) < minLength && i > 0 {
		kept = append(kept, s.body[i-1])
	}
	s.body = kept
}

// reverse swaps head and tail and re-derives the heading from the new
// first two segments.
func (s *Snake) reverse() {
	slices.Reverse(s.body)
	if len(s.body) < minLength {
		return
	}
	if h := s.body[0].Sub(s.body[1]).unit(); h.IsUnit() {
		s.heading = h
	}
	s.next = s.heading
}

// grow schedules one tick in which the tail is kept.
func (s *Snake) grow() {
	s.growth++
}
