package rubiks

import (
	"fmt"
	"math"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Green  Color = 1 // Left face when solved
	Red    Color = 2 // Front face when solved
	Blue   Color = 3 // Right face when solved
	Orange Color = 4 // Back face when solved
	Yellow Color = 5 // Down face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Green:
		return "G"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// colorFromChar parses a single case-insensitive color letter.
func colorFromChar(ch byte) (Color, bool) {
	switch ch {
	case 'w', 'W':
		return White, true
	case 'g', 'G':
		return Green, true
	case 'r', 'R':
		return Red, true
	case 'b', 'B':
		return Blue, true
	case 'o', 'O':
		return Orange, true
	case 'y', 'Y':
		return Yellow, true
	default:
		return 0, false
	}
}

// Face identifies one of the six cube faces. The numeric order (ULFRBD) is
// also the face order of the flat state array and of the state string format.
type Face int

const (
	Up Face = iota
	Left
	Front
	Right
	Back
	Down
)

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Left:
		return "L"
	case Front:
		return "F"
	case Right:
		return "R"
	case Back:
		return "B"
	case Down:
		return "D"
	default:
		return "?"
	}
}

// Axis identifies a coordinate axis through the cube center.
// Faces map onto axes as Up=+Z, Left=+X, Front=+Y, Right=-X, Back=-Y, Down=-Z.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// CubeState holds the facelet array of an nxnxn cube: 6*n*n colors in face
// order Up, Left, Front, Right, Back, Down, each face row-major top-to-bottom.
type CubeState struct {
	n    int
	data []Color
}

// Solved returns an nxnxn cube where the ULFRBD faces carry the colors
// W, G, R, B, O, Y respectively.
func Solved(n int) *CubeState {
	data := make([]Color, 0, 6*n*n)
	for c := White; c <= Yellow; c++ {
		for i := 0; i < n*n; i++ {
			data = append(data, c)
		}
	}
	return &CubeState{n: n, data: data}
}

// FromStateString parses a facelet string into a cube state. The string must
// have length 6*n*n for some positive n and use the six color letters
// (case-insensitive) in face order ULFRBD, each face left-to-right,
// top-to-bottom.
func FromStateString(s string) (*CubeState, error) {
	length := len(s)
	if length == 0 || length%6 != 0 {
		return nil, fmt.Errorf("%w: length %d is not 6*n*n", ErrInvalidStateString, length)
	}
	n := int(math.Floor(math.Sqrt(float64(length) / 6.0)))
	if n*n != length/6 {
		return nil, fmt.Errorf("%w: length %d is not 6*n*n", ErrInvalidStateString, length)
	}

	data := make([]Color, length)
	for i := 0; i < length; i++ {
		c, ok := colorFromChar(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidColorChar, s[i], i)
		}
		data[i] = c
	}
	return &CubeState{n: n, data: data}, nil
}

// Scramble returns a valid configuration built by applying numTurns random
// turns to a solved nxnxn cube, along with the scramble move that was applied.
func Scramble(n, numTurns int) (*CubeState, Move) {
	state := Solved(n)
	m := RandomMove(n, numTurns)
	state.DoMove(m)
	return state, m
}

// Size returns n for an nxnxn cube.
func (s *CubeState) Size() int {
	return s.n
}

// DataAt returns the color of the facelet at flat index i.
func (s *CubeState) DataAt(i int) Color {
	return s.data[i]
}

// Clone creates a deep copy of the state.
func (s *CubeState) Clone() *CubeState {
	data := make([]Color, len(s.data))
	copy(data, s.data)
	return &CubeState{n: s.n, data: data}
}

// Equal reports whether two states have the same size and facelet array.
func (s *CubeState) Equal(other *CubeState) bool {
	if s.n != other.n {
		return false
	}
	for i := range s.data {
		if s.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// IsSolved reports whether every face is a single uniform color. Any uniform
// coloring counts, not just the standard one, so whole-cube rotations of a
// solved cube are still solved.
func (s *CubeState) IsSolved() bool {
	faceOffset := s.n * s.n
	for face := 0; face < 6; face++ {
		first := s.data[faceOffset*face]
		for i := 1; i < faceOffset; i++ {
			if s.data[faceOffset*face+i] != first {
				return false
			}
		}
	}
	return true
}

// rotateFace rotates one face's own n*n block 90 degrees in place, clockwise
// unless inv. A temporary buffer avoids read-after-write aliasing.
func (s *CubeState) rotateFace(face Face, inv bool) {
	offset := s.n * s.n * int(face)
	temp := make([]Color, s.n*s.n)
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			if inv {
				temp[i*s.n+j] = s.data[offset+j*s.n+(s.n-i-1)]
			} else {
				temp[i*s.n+j] = s.data[offset+(s.n-j-1)*s.n+i]
			}
		}
	}
	copy(s.data[offset:offset+s.n*s.n], temp)
}

// Turn applies a single quarter turn to the state. The turn's declared cube
// size must match the state's; a mismatch is a programming error and panics.
func (s *CubeState) Turn(t Turn) {
	ft := t.ToFaceBased()
	if ft.CubeSize != s.n {
		panic(fmt.Sprintf("rubiks: turn %s is for a %dx%dx%d cube, state is %dx%dx%d",
			ft.Notation(), ft.CubeSize, ft.CubeSize, ft.CubeSize, s.n, s.n, s.n))
	}
	if ft.LayersIn >= s.n/2 {
		panic(fmt.Sprintf("rubiks: turn %s reaches layer %d, past the middle of a %dx%dx%d cube",
			ft.Notation(), ft.LayersIn, s.n, s.n, s.n))
	}

	if ft.LayersIn == 0 {
		s.rotateFace(ft.Face, ft.Inv)
	}

	n := s.n
	fo := n * n // face block offset
	numIn := ft.LayersIn
	inv := ft.Inv

	// Cycle the strip of the turned slice across the four adjacent faces.
	// Index arithmetic is per face: which row/column the strip lives on and
	// which direction it is read differ between the four neighbours.
	switch ft.Face {
	case Up:
		rowOffset := n * numIn
		for i := 0; i < n; i++ {
			if inv {
				temp := s.data[fo+rowOffset+i]
				s.data[fo+rowOffset+i] = s.data[fo*4+rowOffset+i]
				s.data[fo*4+rowOffset+i] = s.data[fo*3+rowOffset+i]
				s.data[fo*3+rowOffset+i] = s.data[fo*2+rowOffset+i]
				s.data[fo*2+rowOffset+i] = temp
			} else {
				temp := s.data[fo+rowOffset+i]
				s.data[fo+rowOffset+i] = s.data[fo*2+rowOffset+i]
				s.data[fo*2+rowOffset+i] = s.data[fo*3+rowOffset+i]
				s.data[fo*3+rowOffset+i] = s.data[fo*4+rowOffset+i]
				s.data[fo*4+rowOffset+i] = temp
			}
		}
	case Left:
		colOffset := numIn
		for i := 0; i < n; i++ {
			if inv {
				temp := s.data[i*n+colOffset]
				s.data[i*n+colOffset] = s.data[fo*2+i*n+colOffset]
				s.data[fo*2+i*n+colOffset] = s.data[fo*5+i*n+colOffset]
				s.data[fo*5+i*n+colOffset] = s.data[fo*4+(n-i-1)*n+(n-colOffset-1)]
				s.data[fo*4+(n-i-1)*n+(n-colOffset-1)] = temp
			} else {
				temp := s.data[i*n+colOffset]
				s.data[i*n+colOffset] = s.data[fo*4+(n-i-1)*n+(n-colOffset-1)]
				s.data[fo*4+(n-i-1)*n+(n-colOffset-1)] = s.data[fo*5+i*n+colOffset]
				s.data[fo*5+i*n+colOffset] = s.data[fo*2+i*n+colOffset]
				s.data[fo*2+i*n+colOffset] = temp
			}
		}
	case Front:
		for i := 0; i < n; i++ {
			if inv {
				temp := s.data[(n-numIn-1)*n+i]
				s.data[(n-numIn-1)*n+i] = s.data[fo*3+i*n+numIn]
				s.data[fo*3+i*n+numIn] = s.data[fo*5+numIn*n+(n-i-1)]
				s.data[fo*5+numIn*n+(n-i-1)] = s.data[fo*1+(n-i-1)*n+(n-numIn-1)]
				s.data[fo*1+(n-i-1)*n+(n-numIn-1)] = temp
			} else {
				temp := s.data[(n-numIn-1)*n+i]
				s.data[(n-numIn-1)*n+i] = s.data[fo*1+(n-i-1)*n+(n-numIn-1)]
				s.data[fo*1+(n-i-1)*n+(n-numIn-1)] = s.data[fo*5+numIn*n+(n-i-1)]
				s.data[fo*5+numIn*n+(n-i-1)] = s.data[fo*3+i*n+numIn]
				s.data[fo*3+i*n+numIn] = temp
			}
		}
	case Right:
		colOffset := n - numIn - 1
		for i := 0; i < n; i++ {
			if inv {
				temp := s.data[i*n+colOffset]
				s.data[i*n+colOffset] = s.data[fo*4+(n-i-1)*n+(n-colOffset-1)]
				s.data[fo*4+(n-i-1)*n+(n-colOffset-1)] = s.data[fo*5+i*n+colOffset]
				s.data[fo*5+i*n+colOffset] = s.data[fo*2+i*n+colOffset]
				s.data[fo*2+i*n+colOffset] = temp
			} else {
				temp := s.data[i*n+colOffset]
				s.data[i*n+colOffset] = s.data[fo*2+i*n+colOffset]
				s.data[fo*2+i*n+colOffset] = s.data[fo*5+i*n+colOffset]
				s.data[fo*5+i*n+colOffset] = s.data[fo*4+(n-i-1)*n+(n-colOffset-1)]
				s.data[fo*4+(n-i-1)*n+(n-colOffset-1)] = temp
			}
		}
	case Back:
		for i := 0; i < n; i++ {
			if inv {
				temp := s.data[n*numIn+i]
				s.data[n*numIn+i] = s.data[fo*1+(n-i-1)*n+numIn]
				s.data[fo*1+(n-i-1)*n+numIn] = s.data[fo*5+(n-numIn-1)*n+(n-i-1)]
				s.data[fo*5+(n-numIn-1)*n+(n-i-1)] = s.data[fo*3+i*n+(n-numIn-1)]
				s.data[fo*3+i*n+(n-numIn-1)] = temp
			} else {
				temp := s.data[n*numIn+i]
				s.data[n*numIn+i] = s.data[fo*3+i*n+(n-numIn-1)]
				s.data[fo*3+i*n+(n-numIn-1)] = s.data[fo*5+(n-numIn-1)*n+(n-i-1)]
				s.data[fo*5+(n-numIn-1)*n+(n-i-1)] = s.data[fo*1+(n-i-1)*n+numIn]
				s.data[fo*1+(n-i-1)*n+numIn] = temp
			}
		}
	case Down:
		rowOffset := n * (n - numIn - 1)
		for i := 0; i < n; i++ {
			if inv {
				temp := s.data[fo+rowOffset+i]
				s.data[fo+rowOffset+i] = s.data[fo*2+rowOffset+i]
				s.data[fo*2+rowOffset+i] = s.data[fo*3+rowOffset+i]
				s.data[fo*3+rowOffset+i] = s.data[fo*4+rowOffset+i]
				s.data[fo*4+rowOffset+i] = temp
			} else {
				temp := s.data[fo+rowOffset+i]
				s.data[fo+rowOffset+i] = s.data[fo*4+rowOffset+i]
				s.data[fo*4+rowOffset+i] = s.data[fo*3+rowOffset+i]
				s.data[fo*3+rowOffset+i] = s.data[fo*2+rowOffset+i]
				s.data[fo*2+rowOffset+i] = temp
			}
		}
	}
}

// DoMove applies each turn of the move in order. There is no atomicity: a
// size-mismatch panic partway through leaves the state partially turned.
func (s *CubeState) DoMove(m Move) {
	for _, t := range m.Turns {
		s.Turn(t)
	}
}

// AllTurns enumerates every legal turn for this cube size:
// 6 faces x n/2 layers x inverted-or-not.
func (s *CubeState) AllTurns() []Turn {
	turns := make([]Turn, 0, 6*(s.n/2)*2)
	for face := Up; face <= Down; face++ {
		for i := 0; i < s.n/2; i++ {
			turns = append(turns, FaceTurn(face, true, i, s.n))
			turns = append(turns, FaceTurn(face, false, i, s.n))
		}
	}
	return turns
}

// RotateCube reorients the whole cube by a positive quarter rotation about
// the given axis. Sticker adjacency is unchanged; four faces cycle and the
// faces on the rotation axis spin in place.
func (s *CubeState) RotateCube(axis Axis) {
	nn := s.n * s.n
	switch axis {
	case AxisX:
		s.rotateFace(Back, false)
		s.rotateFace(Back, false)

		s.rotateFace(Right, false)
		s.rotateFace(Left, true)

		for i := 0; i < nn; i++ {
			temp := s.data[i]
			s.data[i] = s.data[2*nn+i]
			s.data[2*nn+i] = s.data[5*nn+i]
			s.data[5*nn+i] = s.data[4*nn+i]
			s.data[4*nn+i] = temp
		}

		s.rotateFace(Back, false)
		s.rotateFace(Back, false)
	case AxisY:
		s.rotateFace(Back, false)
		s.rotateFace(Front, true)

		for i := 0; i < nn; i++ {
			temp := s.data[i]
			s.data[i] = s.data[3*nn+i]
			s.data[3*nn+i] = s.data[5*nn+i]
			s.data[5*nn+i] = s.data[1*nn+i]
			s.data[1*nn+i] = temp
		}

		s.rotateFace(Up, true)
		s.rotateFace(Left, true)
		s.rotateFace(Down, true)
		s.rotateFace(Right, true)
	case AxisZ:
		s.rotateFace(Down, false)
		s.rotateFace(Up, true)

		for i := 0; i < nn; i++ {
			temp := s.data[1*nn+i]
			s.data[1*nn+i] = s.data[4*nn+i]
			s.data[4*nn+i] = s.data[3*nn+i]
			s.data[3*nn+i] = s.data[2*nn+i]
			s.data[2*nn+i] = temp
		}
	}
}

// ShrinkTo projects the state onto a smaller mxmxm cube by keeping, on each
// face, only the outermost m/2 rows and columns of each side (plus the middle
// row and column when m is odd). Every turn on the big cube maps to at most
// one turn on the projection, so an optimal solve of the projection is an
// admissible lower bound for the original.
func (s *CubeState) ShrinkTo(m int) *CubeState {
	if m < 2 || m > s.n {
		panic(fmt.Sprintf("rubiks: cannot shrink a %dx%dx%d cube to size %d", s.n, s.n, s.n, m))
	}
	if m%2 == 1 && s.n%2 == 0 {
		panic(fmt.Sprintf("rubiks: cannot shrink even size %d to odd size %d", s.n, m))
	}

	keep := make([]int, 0, m)
	for i := 0; i < m/2; i++ {
		keep = append(keep, i)
	}
	if m%2 == 1 {
		keep = append(keep, s.n/2)
	}
	for i := m / 2; i > 0; i-- {
		keep = append(keep, s.n-i)
	}

	data := make([]Color, 0, 6*m*m)
	for face := 0; face < 6; face++ {
		offset := face * s.n * s.n
		for _, r := range keep {
			for _, c := range keep {
				data = append(data, s.data[offset+r*s.n+c])
			}
		}
	}
	return &CubeState{n: m, data: data}
}

// CornersTo2x2x2 projects the state onto a synthetic 2x2x2 cube built from
// the four corner facelets of each face. This is the reduction the corner
// pattern database is keyed on.
func (s *CubeState) CornersTo2x2x2() *CubeState {
	return s.ShrinkTo(2)
}

// The reference corner coloring used to canonicalize 2x2x2 states: the cubie
// in the right-back-down position shows Blue on Right, Orange on Back and
// Yellow on Down. For a 2x2x2 those facelets sit at flat indices 15, 18, 23.
func (s *CubeState) isNormalOrientation2x2x2() bool {
	return s.data[15] == Blue && s.data[18] == Orange && s.data[23] == Yellow
}

// RotateToNormal2x2x2 reorients a 2x2x2 cube by whole-cube rotations until
// the reference corner shows the reference coloring. Every reachable 2x2x2
// state has such an orientation among its at-most-24 rotations; not finding
// one within the 4x4x4 rotation sweep is an invariant violation and panics.
// States of other sizes are left untouched.
func (s *CubeState) RotateToNormal2x2x2() {
	if s.n != 2 {
		return
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				if s.isNormalOrientation2x2x2() {
					return
				}
				s.RotateCube(AxisZ)
			}
			s.RotateCube(AxisY)
		}
		s.RotateCube(AxisX)
	}
	panic(fmt.Sprintf("rubiks: no normal orientation found for 2x2x2 state %q", s.StateString()))
}

// Key returns a canonical hash key for a 2x2x2 state: the facelet array after
// rotating to the normal orientation. Two states that differ only by a
// whole-cube rotation share a key. Only defined for 2x2x2 states.
func (s *CubeState) Key() string {
	if s.n != 2 {
		panic(fmt.Sprintf("rubiks: canonical key is only defined for 2x2x2 states, got size %d", s.n))
	}
	if s.isNormalOrientation2x2x2() {
		return s.rawKey()
	}
	c := s.Clone()
	c.RotateToNormal2x2x2()
	return c.rawKey()
}

// rawKey returns the facelet array as a raw byte string without
// canonicalization. Used as an exact-state map key.
func (s *CubeState) rawKey() string {
	b := make([]byte, len(s.data))
	for i, c := range s.data {
		b[i] = byte(c)
	}
	return string(b)
}

// StateString renders the state in the facelet string format accepted by
// FromStateString.
func (s *CubeState) StateString() string {
	var b strings.Builder
	b.Grow(len(s.data))
	for _, c := range s.data {
		b.WriteString(c.String())
	}
	return b.String()
}

// String renders the state as an unfolded net: Up on top, then the
// Left/Front/Right/Back band, then Down.
func (s *CubeState) String() string {
	var b strings.Builder
	nn := s.n * s.n

	pad := strings.Repeat(" ", s.n+1)
	for i := 0; i < s.n; i++ {
		b.WriteString(pad)
		for j := 0; j < s.n; j++ {
			b.WriteString(s.data[i*s.n+j].String())
		}
		b.WriteByte('\n')
	}
	for i := 0; i < s.n; i++ {
		for face := 1; face <= 4; face++ {
			if face > 1 {
				b.WriteByte(' ')
			}
			for j := 0; j < s.n; j++ {
				b.WriteString(s.data[face*nn+i*s.n+j].String())
			}
		}
		b.WriteByte('\n')
	}
	for i := 0; i < s.n; i++ {
		b.WriteString(pad)
		for j := 0; j < s.n; j++ {
			b.WriteString(s.data[5*nn+i*s.n+j].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
