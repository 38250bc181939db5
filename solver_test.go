package rubiks

import (
	"errors"
	"testing"
)

func TestSolveDPLLAlreadySolved(t *testing.T) {
	state, err := FromStateString("WWWWWWWWWGGGGGGGGGRRRRRRRRRBBBBBBBBBOOOOOOOOOYYYYYYYYY")
	if err != nil {
		t.Fatalf("FromStateString: %v", err)
	}
	if !state.IsSolved() {
		t.Fatal("parsed state should be solved")
	}

	// even a zero bound succeeds, no search happens
	solver := NewSolver()
	m, err := solver.SolveDPLL(state, 0)
	if err != nil {
		t.Fatalf("solving a solved cube failed: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("solved cube should need the identity move, got %v", m)
	}
}

func TestCornerDistanceIsTight(t *testing.T) {
	solver := NewSolverWithTables(sharedCornerTables(t))
	for trial := 0; trial < 5; trial++ {
		state := Solved(2)
		state.DoMove(RandomMove(2, 3))

		d, ok := solver.Tables().CornerDistance(state)
		if !ok {
			t.Fatal("state should be in the corner table")
		}
		if d == 0 {
			continue
		}

		// a solution of exactly d turns exists, none shorter
		if _, err := solver.SolveDPLL(state, d-1); !errors.Is(err, ErrUnsolvable) {
			t.Fatalf("bound %d should be unsolvable for a distance-%d state, got %v", d-1, d, err)
		}
		soln, err := solver.SolveDPLL(state, d)
		if err != nil {
			t.Fatalf("bound %d should be solvable for a distance-%d state: %v", d, d, err)
		}
		if soln.Len() != d {
			t.Fatalf("solution length %d, table distance %d", soln.Len(), d)
		}
	}
}

func TestSolveDPLLZeroBound(t *testing.T) {
	solver := NewSolver()
	state := Solved(3)
	state.Turn(FaceTurn(Up, false, 0, 3))
	if _, err := solver.SolveDPLL(state, 0); !errors.Is(err, ErrUnsolvable) {
		t.Errorf("bound 0 on an unsolved cube should fail with ErrUnsolvable, got %v", err)
	}
}

func TestSolveDPLLWithoutTables(t *testing.T) {
	// the corner lower bound falls back to searching the 2x2x2 projection
	solver := NewSolver()
	state := Solved(3)
	state.DoMove(Move{Turns: []Turn{
		FaceTurn(Up, false, 0, 3),
		FaceTurn(Front, true, 0, 3),
		FaceTurn(Left, false, 0, 3),
	}})

	soln, err := solver.SolveDPLL(state, 3)
	if err != nil {
		t.Fatalf("SolveDPLL failed: %v", err)
	}
	state.DoMove(soln)
	if !state.IsSolved() {
		t.Error("returned move should solve the state")
	}
	if soln.Len() > 3 {
		t.Errorf("solution length %d exceeds the bound 3", soln.Len())
	}
}

func TestSolveDPLLRespectsBound(t *testing.T) {
	solver := NewSolver()
	for trial := 0; trial < 5; trial++ {
		state := Solved(2)
		state.DoMove(RandomMove(2, 4))
		soln, err := solver.SolveDPLL(state, 4)
		if err != nil {
			t.Fatalf("a 4-turn scramble should solve within 4 turns: %v", err)
		}
		state.DoMove(soln)
		if !state.IsSolved() {
			t.Fatal("returned move should solve the state")
		}
		if soln.Len() > 4 {
			t.Fatalf("solution length %d exceeds the bound 4", soln.Len())
		}
	}
}

func TestSolveDPLLWithTables(t *testing.T) {
	solver := NewSolverWithTables(sharedCornerTables(t))
	for trial := 0; trial < 5; trial++ {
		state := Solved(3)
		state.DoMove(RandomMove(3, 4))
		soln, err := solver.SolveDPLL(state, 4)
		if err != nil {
			t.Fatalf("a 4-turn scramble should solve within 4 turns: %v", err)
		}
		state.DoMove(soln)
		if !state.IsSolved() {
			t.Fatal("returned move should solve the state")
		}
	}
}

func TestSolveIDAStarRequiresTables(t *testing.T) {
	solver := NewSolver()
	state := Solved(3)
	state.Turn(FaceTurn(Up, false, 0, 3))
	if _, err := solver.SolveIDAStar(state); !errors.Is(err, ErrNoHeuristics) {
		t.Errorf("IDA* without tables should fail with ErrNoHeuristics, got %v", err)
	}
}

func TestSolveIDAStarOptimalOn2x2x2(t *testing.T) {
	solver := NewSolverWithTables(sharedCornerTables(t))
	for trial := 0; trial < 10; trial++ {
		state, _ := Scramble(2, 100)
		wantLen, ok := solver.Tables().CornerDistance(state)
		if !ok {
			t.Fatal("scrambled state should be in the corner table")
		}

		soln, err := solver.SolveIDAStar(state)
		if err != nil {
			t.Fatalf("SolveIDAStar failed: %v", err)
		}
		if soln.Len() != wantLen {
			t.Fatalf("IDA* found %d turns, optimal is %d", soln.Len(), wantLen)
		}

		check := state.Clone()
		check.DoMove(soln)
		if !check.IsSolved() {
			t.Fatal("returned move should solve the state")
		}
	}
}

func TestSolveIDAStarOn3x3x3(t *testing.T) {
	solver := NewSolverWithTables(sharedCornerTables(t))
	state := Solved(3)
	scramble := RandomMove(3, 5)
	state.DoMove(scramble)

	soln, err := solver.SolveIDAStar(state)
	if err != nil {
		t.Fatalf("SolveIDAStar failed: %v", err)
	}
	if soln.Len() > scramble.Len() {
		t.Errorf("IDA* found %d turns, the scramble only used %d", soln.Len(), scramble.Len())
	}
	state.DoMove(soln)
	if !state.IsSolved() {
		t.Error("returned move should solve the state")
	}
}

func TestSolve2x2x2WithTable(t *testing.T) {
	solver := NewSolverWithTables(sharedCornerTables(t))
	for trial := 0; trial < 20; trial++ {
		state, _ := Scramble(2, 1000)
		wantLen, _ := solver.Tables().CornerDistance(state)

		soln, err := solver.Solve2x2x2WithTable(state)
		if err != nil {
			t.Fatalf("Solve2x2x2WithTable failed: %v", err)
		}
		if soln.Len() != wantLen {
			t.Fatalf("greedy descent took %d turns, table distance is %d", soln.Len(), wantLen)
		}
		if soln.Len() > CornerGodsNumber {
			t.Fatalf("solution length %d exceeds the 2x2x2 maximum %d", soln.Len(), CornerGodsNumber)
		}

		check := state.Clone()
		check.DoMove(soln)
		if !check.IsSolved() {
			t.Fatal("returned move should solve the state")
		}
	}
}

func TestSolve2x2x2WithTableRejectsWrongSize(t *testing.T) {
	solver := NewSolverWithTables(NewHeuristicsTables())
	if _, err := solver.Solve2x2x2WithTable(Solved(3)); !errors.Is(err, ErrBadInput) {
		t.Errorf("a 3x3x3 input should fail with ErrBadInput, got %v", err)
	}
}

func TestSolve2x2x2WithTableRequiresTable(t *testing.T) {
	solver := NewSolver()
	state := Solved(2)
	state.Turn(FaceTurn(Up, false, 0, 2))
	if _, err := solver.Solve2x2x2WithTable(state); !errors.Is(err, ErrNoHeuristics) {
		t.Errorf("unsolved input without a table should fail with ErrNoHeuristics, got %v", err)
	}
}

func TestSharedTablesAcrossSolvers(t *testing.T) {
	tables := sharedCornerTables(t)
	a := NewSolverWithTables(tables)
	b := NewSolverWithTables(tables)
	if a.Tables() != b.Tables() {
		t.Error("solvers should share the same table instance")
	}
}
