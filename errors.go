package rubiks

import "errors"

var (
	// ErrUnsolvable is returned when a search exhausts its turn budget
	// without reaching a solved state.
	ErrUnsolvable = errors.New("rubiks: no solution within the turn bound")

	// ErrNoHeuristics is returned when a solver operation requires a
	// heuristics table that has not been computed or loaded.
	ErrNoHeuristics = errors.New("rubiks: heuristics table not available")

	// ErrBadInput is returned when a solver is given a state it cannot
	// work with, such as the wrong cube size.
	ErrBadInput = errors.New("rubiks: bad input")

	// ErrInvalidStateString is returned when a facelet string does not
	// have a valid 6*n*n length.
	ErrInvalidStateString = errors.New("rubiks: invalid state string")

	// ErrInvalidColorChar is returned when a facelet string contains a
	// character that is not one of the six color letters.
	ErrInvalidColorChar = errors.New("rubiks: invalid color character")

	// ErrTurnImpossible is returned when a turn cannot exist on a cube of
	// the requested size.
	ErrTurnImpossible = errors.New("rubiks: turn impossible at this cube size")
)
