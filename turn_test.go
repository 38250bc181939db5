package rubiks

import (
	"errors"
	"testing"
)

func TestConversionRoundTrip(t *testing.T) {
	for _, turn := range RandomMove(11, 1000).Turns {
		ab := turn.ToAxisBased()
		fb := turn.ToFaceBased()
		if !ab.Equal(fb.ToAxisBased()) {
			t.Errorf("axis -> face -> axis changed %v", turn)
		}
		if !fb.Equal(ab.ToFaceBased()) {
			t.Errorf("face -> axis -> face changed %v", turn)
		}
		if !ab.Equal(fb) || !fb.Equal(ab) {
			t.Errorf("representations of %v should compare equal", turn)
		}
	}
}

func TestEqualAcrossRepresentations(t *testing.T) {
	// U on a 3x3x3 is the +Z outer layer
	fb := FaceTurn(Up, false, 0, 3)
	ab := AxisTurn(AxisZ, false, 1, 3)
	if !fb.Equal(ab) {
		t.Errorf("%v and %v denote the same turn", fb, ab)
	}

	// R0 is the -X outer layer with the rotation sense flipped
	fb = FaceTurn(Right, true, 0, 5)
	ab = AxisTurn(AxisX, false, -2, 5)
	if !fb.Equal(ab) {
		t.Errorf("%v and %v denote the same turn", fb, ab)
	}
}

func TestCubeSizeIsPartOfIdentity(t *testing.T) {
	a := FaceTurn(Up, false, 0, 3)
	b := FaceTurn(Up, false, 0, 5)
	if a.Equal(b) {
		t.Error("same face turn on different cube sizes should not be equal")
	}
}

func TestInvertIsInvolution(t *testing.T) {
	for _, turn := range RandomMove(7, 200).Turns {
		if !turn.Invert().Invert().Equal(turn) {
			t.Errorf("double inversion changed %v", turn)
		}
		if turn.Invert().Equal(turn) {
			t.Errorf("inverting should change %v", turn)
		}
	}
}

func TestInvertKeepsSlice(t *testing.T) {
	turn := AxisTurn(AxisY, true, 2, 6)
	inv := turn.Invert()
	if inv.Axis != AxisY || inv.Index != 2 || inv.CubeSize != 6 {
		t.Errorf("inverting moved the slice: %+v", inv)
	}
	if inv.PosRot {
		t.Error("inverting should flip the rotation sense")
	}
}

func TestCommutesWithSameAxisOnly(t *testing.T) {
	u := FaceTurn(Up, false, 0, 3)
	d := FaceTurn(Down, false, 0, 3)
	l := FaceTurn(Left, false, 0, 3)

	if !u.CommutesWith(d) {
		t.Error("U and D share the Z axis and should commute")
	}
	if u.CommutesWith(l) {
		t.Error("U and L are on different axes and should not commute")
	}
	if !u.CommutesWith(u.Invert()) {
		t.Error("a turn commutes with its own inverse")
	}
}

func TestResizeHoldCenter(t *testing.T) {
	// outer layer of a 5x5x5 sits at axis index 2
	turn := FaceTurn(Up, false, 0, 5)

	if _, err := turn.ResizeHoldCenter(3); !errors.Is(err, ErrTurnImpossible) {
		t.Errorf("index 2 does not exist on a 3x3x3, got err %v", err)
	}

	resized, err := turn.ResizeHoldCenter(7)
	if err != nil {
		t.Fatalf("resize to 7 failed: %v", err)
	}
	if resized.CubeSize != 7 || resized.ToAxisBased().Index != 2 {
		t.Errorf("hold-center resize should keep the axis index, got %+v", resized)
	}
}

func TestResizeHoldFace(t *testing.T) {
	turn := FaceTurn(Front, true, 1, 5)

	if _, err := turn.ResizeHoldFace(2); !errors.Is(err, ErrTurnImpossible) {
		t.Errorf("layer 1 does not exist on a 2x2x2, got err %v", err)
	}

	resized, err := turn.ResizeHoldFace(9)
	if err != nil {
		t.Fatalf("resize to 9 failed: %v", err)
	}
	ft := resized.ToFaceBased()
	if ft.CubeSize != 9 || ft.LayersIn != 1 || ft.Face != Front || !ft.Inv {
		t.Errorf("hold-face resize should keep the layer depth, got %+v", ft)
	}
}

func TestNotation(t *testing.T) {
	cases := []struct {
		turn Turn
		want string
	}{
		{FaceTurn(Up, false, 0, 3), "U0"},
		{FaceTurn(Front, true, 0, 3), "F0'"},
		{FaceTurn(Left, false, 1, 4), "L1"},
		{AxisTurn(AxisZ, false, 1, 3), "U0"},
		{AxisTurn(AxisX, false, -2, 5), "R0'"},
	}
	for _, tc := range cases {
		if got := tc.turn.Notation(); got != tc.want {
			t.Errorf("Notation() = %q, want %q", got, tc.want)
		}
	}
}
