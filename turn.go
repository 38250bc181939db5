package rubiks

import "fmt"

// TurnKind says which representation a Turn carries.
type TurnKind int

const (
	// AxisBased describes a turn by its rotation axis and the signed layer
	// index away from the center.
	AxisBased TurnKind = iota
	// FaceBased describes a turn by the face it belongs to and how many
	// layers in from that face it sits.
	FaceBased
)

// Turn is a single quarter turn of one slice of the cube. It carries one of
// two equivalent representations, selected by Kind.
//
// Axis-based: Index is the layer's distance from the center, positive toward
// the positive axis direction. An even cube size pretends there is a center
// index-0 layer that never appears. PosRot follows the right-hand rule about
// the positive axis direction.
//
// Face-based: LayersIn counts layers inward from the face, 0 being the face
// itself. Inv false is clockwise as seen looking at the face. A turn can
// never reach the middle layer or beyond, so LayersIn < CubeSize/2.
//
// The two representations relate through the face/axis mapping Up=+Z,
// Left=+X, Front=+Y, Right=-X, Back=-Y, Down=-Z and
// LayersIn = CubeSize/2 - |Index|.
type Turn struct {
	Kind TurnKind

	// axis-based fields
	Axis   Axis
	PosRot bool
	Index  int

	// face-based fields
	Face     Face
	Inv      bool
	LayersIn int

	CubeSize int
}

// AxisTurn builds an axis-based turn.
func AxisTurn(axis Axis, posRot bool, index, cubeSize int) Turn {
	return Turn{Kind: AxisBased, Axis: axis, PosRot: posRot, Index: index, CubeSize: cubeSize}
}

// FaceTurn builds a face-based turn.
func FaceTurn(face Face, inv bool, layersIn, cubeSize int) Turn {
	return Turn{Kind: FaceBased, Face: face, Inv: inv, LayersIn: layersIn, CubeSize: cubeSize}
}

// ToFaceBased converts the turn to its face-based representation. A positive
// axis index belongs to the positive-direction face (Left, Front or Up); the
// rotation sense flips when crossing to the negative-direction face.
func (t Turn) ToFaceBased() Turn {
	if t.Kind == FaceBased {
		return t
	}
	var face Face
	var inv bool
	var layersIn int
	switch t.Axis {
	case AxisX:
		if t.Index > 0 {
			face, inv, layersIn = Left, t.PosRot, t.CubeSize/2-t.Index
		} else {
			face, inv, layersIn = Right, !t.PosRot, t.CubeSize/2+t.Index
		}
	case AxisY:
		if t.Index > 0 {
			face, inv, layersIn = Front, t.PosRot, t.CubeSize/2-t.Index
		} else {
			face, inv, layersIn = Back, !t.PosRot, t.CubeSize/2+t.Index
		}
	case AxisZ:
		if t.Index > 0 {
			face, inv, layersIn = Up, t.PosRot, t.CubeSize/2-t.Index
		} else {
			face, inv, layersIn = Down, !t.PosRot, t.CubeSize/2+t.Index
		}
	}
	return FaceTurn(face, inv, layersIn, t.CubeSize)
}

// ToAxisBased converts the turn to its axis-based representation.
func (t Turn) ToAxisBased() Turn {
	if t.Kind == AxisBased {
		return t
	}
	switch t.Face {
	case Up:
		return AxisTurn(AxisZ, t.Inv, t.CubeSize/2-t.LayersIn, t.CubeSize)
	case Left:
		return AxisTurn(AxisX, t.Inv, t.CubeSize/2-t.LayersIn, t.CubeSize)
	case Front:
		return AxisTurn(AxisY, t.Inv, t.CubeSize/2-t.LayersIn, t.CubeSize)
	case Right:
		return AxisTurn(AxisX, !t.Inv, -(t.CubeSize/2)+t.LayersIn, t.CubeSize)
	case Back:
		return AxisTurn(AxisY, !t.Inv, -(t.CubeSize/2)+t.LayersIn, t.CubeSize)
	case Down:
		return AxisTurn(AxisZ, !t.Inv, -(t.CubeSize/2)+t.LayersIn, t.CubeSize)
	default:
		panic(fmt.Sprintf("rubiks: unknown face %d", t.Face))
	}
}

// Invert returns the turn rotating the same slice the opposite way.
func (t Turn) Invert() Turn {
	switch t.Kind {
	case AxisBased:
		return AxisTurn(t.Axis, !t.PosRot, t.Index, t.CubeSize)
	default:
		return FaceTurn(t.Face, !t.Inv, t.LayersIn, t.CubeSize)
	}
}

// Equal reports whether two turns denote the same slice rotation, regardless
// of representation. The cube size is part of a turn's identity.
func (t Turn) Equal(other Turn) bool {
	a, b := t.ToAxisBased(), other.ToAxisBased()
	return a.Axis == b.Axis && a.PosRot == b.PosRot && a.Index == b.Index && a.CubeSize == b.CubeSize
}

// CommutesWith reports whether the two turns commute. Turns on the same axis
// always commute; turns on different axes never do.
func (t Turn) CommutesWith(other Turn) bool {
	return t.ToAxisBased().Axis == other.ToAxisBased().Axis
}

// ResizeHoldCenter re-targets the turn at a cube of newCubeSize, keeping the
// layer's position relative to the cube center. Returns ErrTurnImpossible
// when the layer falls outside the smaller cube.
func (t Turn) ResizeHoldCenter(newCubeSize int) (Turn, error) {
	a := t.ToAxisBased()
	index := a.Index
	if index < 0 {
		index = -index
	}
	if index > newCubeSize/2 {
		return Turn{}, fmt.Errorf("%w: axis index %d on a %dx%dx%d cube",
			ErrTurnImpossible, a.Index, newCubeSize, newCubeSize, newCubeSize)
	}
	return AxisTurn(a.Axis, a.PosRot, a.Index, newCubeSize), nil
}

// ResizeHoldFace re-targets the turn at a cube of newCubeSize, keeping the
// layer's depth relative to its face. Returns ErrTurnImpossible when the
// depth reaches the middle of the smaller cube.
func (t Turn) ResizeHoldFace(newCubeSize int) (Turn, error) {
	ft := t.ToFaceBased()
	if ft.LayersIn >= newCubeSize/2 {
		return Turn{}, fmt.Errorf("%w: layer %d on a %dx%dx%d cube",
			ErrTurnImpossible, ft.LayersIn, newCubeSize, newCubeSize, newCubeSize)
	}
	return FaceTurn(ft.Face, ft.Inv, ft.LayersIn, newCubeSize), nil
}

// AsMove wraps the turn in a one-turn move.
func (t Turn) AsMove() Move {
	return Move{Turns: []Turn{t}}
}

// Notation renders the turn in face notation: the face letter, the layer
// depth, and a tick for inverted turns, e.g. "U0", "F1'".
func (t Turn) Notation() string {
	ft := t.ToFaceBased()
	tick := ""
	if ft.Inv {
		tick = "'"
	}
	return fmt.Sprintf("%s%d%s", ft.Face, ft.LayersIn, tick)
}

func (t Turn) String() string {
	return t.Notation()
}
