package rubiks

import (
	"math/rand"
	"strings"
)

// Move is an ordered sequence of turns, applied left to right. The zero value
// is the identity move.
type Move struct {
	Turns []Turn
}

// Identity returns the empty move.
func Identity() Move {
	return Move{}
}

// RandomMove builds a move of count uniformly random face turns for an
// nxnxn cube.
func RandomMove(n, count int) Move {
	turns := make([]Turn, 0, count)
	for i := 0; i < count; i++ {
		face := Face(rand.Intn(6))
		inv := rand.Intn(2) == 0
		layersIn := rand.Intn(n / 2)
		turns = append(turns, FaceTurn(face, inv, layersIn, n))
	}
	return Move{Turns: turns}
}

// Len returns the number of turns in the move.
func (m Move) Len() int {
	return len(m.Turns)
}

// Clone deep-copies the move.
func (m Move) Clone() Move {
	turns := make([]Turn, len(m.Turns))
	copy(turns, m.Turns)
	return Move{Turns: turns}
}

// Invert returns the move that undoes this one: the turns reversed and each
// individually inverted, so m.Mul(m.Invert()) acts as the identity.
func (m Move) Invert() Move {
	turns := make([]Turn, len(m.Turns))
	for i, t := range m.Turns {
		turns[len(m.Turns)-1-i] = t.Invert()
	}
	return Move{Turns: turns}
}

// Mul concatenates two moves: first m, then other.
func (m Move) Mul(other Move) Move {
	turns := make([]Turn, 0, len(m.Turns)+len(other.Turns))
	turns = append(turns, m.Turns...)
	turns = append(turns, other.Turns...)
	return Move{Turns: turns}
}

// Append appends other's turns to m in place.
func (m *Move) Append(other Move) {
	m.Turns = append(m.Turns, other.Turns...)
}

// Equal reports whether the two moves are the same turn sequence.
func (m Move) Equal(other Move) bool {
	if len(m.Turns) != len(other.Turns) {
		return false
	}
	for i := range m.Turns {
		if !m.Turns[i].Equal(other.Turns[i]) {
			return false
		}
	}
	return true
}

// IsNextTurnEfficient reports whether appending next keeps the move free of
// obvious redundancy. It rejects the inverse of the last turn, a third copy
// of the same turn in a row, and a turn that commutes with the last one but
// sits at a larger axis index than it. The last rule fixes an order for runs
// of commuting turns so each search branch reaches a distinct configuration.
func (m Move) IsNextTurnEfficient(next Turn) bool {
	if len(m.Turns) == 0 {
		return true
	}
	last := m.Turns[len(m.Turns)-1]

	if last.Invert().Equal(next) {
		return false
	}

	if len(m.Turns) > 1 {
		lastLast := m.Turns[len(m.Turns)-2]
		if lastLast.Equal(last) && last.Equal(next) {
			return false
		}
	}

	if next.CommutesWith(last) {
		na, la := next.ToAxisBased(), last.ToAxisBased()
		if na.Axis == la.Axis && na.Index > la.Index {
			return false
		}
	}

	return true
}

// ResizeHoldCenter maps ResizeHoldCenter over the turns, dropping any turn
// that cannot exist at the new size.
func (m Move) ResizeHoldCenter(newCubeSize int) Move {
	turns := make([]Turn, 0, len(m.Turns))
	for _, t := range m.Turns {
		if rt, err := t.ResizeHoldCenter(newCubeSize); err == nil {
			turns = append(turns, rt)
		}
	}
	return Move{Turns: turns}
}

// ResizeHoldFace maps ResizeHoldFace over the turns, dropping any turn that
// cannot exist at the new size.
func (m Move) ResizeHoldFace(newCubeSize int) Move {
	turns := make([]Turn, 0, len(m.Turns))
	for _, t := range m.Turns {
		if rt, err := t.ResizeHoldFace(newCubeSize); err == nil {
			turns = append(turns, rt)
		}
	}
	return Move{Turns: turns}
}

// String renders the move as a parenthesized list of face-notation turns,
// e.g. "(U0, F0', L1)".
func (m Move) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range m.Turns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.Notation())
	}
	b.WriteByte(')')
	return b.String()
}
