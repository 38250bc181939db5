package rubiks

import "testing"

func TestIdentityInvertIsIdentity(t *testing.T) {
	empty := Identity()
	if !empty.Equal(empty.Invert()) {
		t.Error("inverting the identity move should give the identity move")
	}
}

func TestInvertUndoesScramble(t *testing.T) {
	for trial := 0; trial < 10; trial++ {
		state, scramble := Scramble(7, 200)
		state.DoMove(scramble.Invert())
		if !state.IsSolved() {
			t.Fatal("applying the inverted scramble should solve the cube")
		}
	}
}

func TestMulComposesInOrder(t *testing.T) {
	for trial := 0; trial < 10; trial++ {
		m := RandomMove(7, 200)

		state := Solved(7)
		state.DoMove(m.Invert().Mul(m))
		if !state.IsSolved() {
			t.Fatal("m^-1 * m should act as the identity")
		}

		state = Solved(7)
		state.DoMove(m.Mul(m.Invert()))
		if !state.IsSolved() {
			t.Fatal("m * m^-1 should act as the identity")
		}

		if !m.Equal(Identity().Mul(m)) || !m.Equal(m.Mul(Identity())) {
			t.Fatal("composing with the identity should not change a move")
		}
	}
}

func TestInvertReversesAndFlips(t *testing.T) {
	m := Move{Turns: []Turn{
		FaceTurn(Up, false, 0, 3),
		FaceTurn(Front, true, 0, 3),
		FaceTurn(Left, false, 0, 3),
	}}
	inv := m.Invert()
	want := Move{Turns: []Turn{
		FaceTurn(Left, true, 0, 3),
		FaceTurn(Front, false, 0, 3),
		FaceTurn(Up, true, 0, 3),
	}}
	if !inv.Equal(want) {
		t.Errorf("Invert() = %v, want %v", inv, want)
	}
}

func TestIsNextTurnEfficientOnIdentity(t *testing.T) {
	if !Identity().IsNextTurnEfficient(FaceTurn(Up, false, 0, 3)) {
		t.Error("any turn extends the identity move efficiently")
	}
}

func TestIsNextTurnEfficientRejectsInverse(t *testing.T) {
	u := FaceTurn(Up, false, 0, 3)
	m := u.AsMove()
	if m.IsNextTurnEfficient(u.Invert()) {
		t.Error("the inverse of the last turn should be rejected")
	}
	if !m.IsNextTurnEfficient(u) {
		t.Error("repeating the last turn once is fine")
	}
}

func TestIsNextTurnEfficientRejectsTripleRepeat(t *testing.T) {
	u := FaceTurn(Up, false, 0, 3)
	m := Move{Turns: []Turn{u, u}}
	if m.IsNextTurnEfficient(u) {
		t.Error("a third identical turn in a row should be rejected")
	}
}

func TestIsNextTurnEfficientOrdersCommutingTurns(t *testing.T) {
	// on a 4x4x4 the +Z layers sit at axis indices 1 and 2
	outer := AxisTurn(AxisZ, true, 2, 4)
	inner := AxisTurn(AxisZ, true, 1, 4)

	if !outer.AsMove().IsNextTurnEfficient(inner) {
		t.Error("descending axis index across commuting turns should be accepted")
	}
	if inner.AsMove().IsNextTurnEfficient(outer) {
		t.Error("ascending axis index across commuting turns should be rejected")
	}

	// non-commuting turns carry no ordering constraint
	l := FaceTurn(Left, false, 0, 4)
	if !outer.AsMove().IsNextTurnEfficient(l) {
		t.Error("a turn on another axis should be accepted")
	}
}

func TestRandomMoveLength(t *testing.T) {
	m := RandomMove(3, 25)
	if m.Len() != 25 {
		t.Errorf("RandomMove length = %d, want 25", m.Len())
	}
	for _, turn := range m.Turns {
		if turn.CubeSize != 3 {
			t.Errorf("random turn has cube size %d, want 3", turn.CubeSize)
		}
		if turn.ToFaceBased().LayersIn != 0 {
			t.Errorf("a 3x3x3 only has outer layers, got %v", turn)
		}
	}
}

func TestResizeHoldFaceDropsDeepTurns(t *testing.T) {
	m := Move{Turns: []Turn{
		FaceTurn(Up, false, 0, 4),
		FaceTurn(Front, true, 1, 4),
		FaceTurn(Down, false, 0, 4),
	}}
	resized := m.ResizeHoldFace(2)
	want := Move{Turns: []Turn{
		FaceTurn(Up, false, 0, 2),
		FaceTurn(Down, false, 0, 2),
	}}
	if !resized.Equal(want) {
		t.Errorf("ResizeHoldFace(2) = %v, want %v", resized, want)
	}
}

func TestResizeHoldCenterDropsOutOfRangeTurns(t *testing.T) {
	// U0 on a 5x5x5 sits at axis index 2, which a 3x3x3 does not have;
	// U1 sits at index 1 and survives.
	m := Move{Turns: []Turn{
		FaceTurn(Up, false, 0, 5),
		FaceTurn(Up, false, 1, 5),
	}}
	resized := m.ResizeHoldCenter(3)
	want := FaceTurn(Up, false, 0, 3).AsMove()
	if !resized.Equal(want) {
		t.Errorf("ResizeHoldCenter(3) = %v, want %v", resized, want)
	}
}

func TestMoveString(t *testing.T) {
	if got := Identity().String(); got != "()" {
		t.Errorf("identity String() = %q, want %q", got, "()")
	}

	m := Move{Turns: []Turn{
		FaceTurn(Up, false, 0, 4),
		FaceTurn(Front, true, 0, 4),
		FaceTurn(Left, false, 1, 4),
	}}
	if got := m.String(); got != "(U0, F0', L1)" {
		t.Errorf("String() = %q, want %q", got, "(U0, F0', L1)")
	}
}
