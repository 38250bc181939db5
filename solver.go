package rubiks

import (
	"errors"
	"fmt"
	"sort"
)

// Solver searches for solutions to cube states. A solver optionally carries a
// HeuristicsTables whose pattern databases tighten the search; the tables are
// never mutated by solving, so one table set can back many solvers at once.
type Solver struct {
	tables *HeuristicsTables
}

// NewSolver returns a solver without heuristics tables. SolveDPLL works
// (with a weaker fallback bound) but SolveIDAStar and Solve2x2x2WithTable
// need tables.
func NewSolver() *Solver {
	return &Solver{}
}

// NewSolverWithTables returns a solver backed by the given tables.
func NewSolverWithTables(tables *HeuristicsTables) *Solver {
	return &Solver{tables: tables}
}

// ComputeHeuristicsTables builds the corner pattern database and attaches it
// to the solver. This walks all of CornerStateCount states and takes a while.
func (s *Solver) ComputeHeuristicsTables() {
	tables := NewHeuristicsTables()
	tables.BuildCornerTable()
	s.tables = tables
}

// Tables returns the solver's heuristics tables, or nil.
func (s *Solver) Tables() *HeuristicsTables {
	return s.tables
}

// cornerLowerBound returns a lower bound on the solve distance of state,
// taken from its corner projection. With a corner table loaded the bound is
// the projection's exact distance. Without one, a bounded search of the
// projection stands in: if the projection cannot be solved within budget
// turns, neither can state, and budget+1 is returned.
func (s *Solver) cornerLowerBound(state *CubeState, budget int) (int, bool) {
	proj := state.CornersTo2x2x2()
	if s.tables.HasCornerTable() {
		return s.tables.CornerDistance(proj)
	}
	m, err := s.SolveDPLL(proj, budget)
	if err != nil {
		if errors.Is(err, ErrUnsolvable) {
			return budget + 1, true
		}
		return 0, false
	}
	return m.Len(), true
}

// SolveDPLL runs a depth-first branch-and-bound search for a solution of at
// most k turns. The search keeps an explicit work stack of (depth, turn)
// decisions and an arena of one partial (move, state) per depth, so cloning
// happens once per expansion instead of once per node. Branches whose corner
// lower bound exceeds the remaining budget are cut. Returns ErrUnsolvable
// when no solution of length <= k exists.
func (s *Solver) SolveDPLL(state *CubeState, k int) (Move, error) {
	if state.IsSolved() {
		return Identity(), nil
	}
	if k <= 0 {
		return Move{}, fmt.Errorf("%w: bound %d", ErrUnsolvable, k)
	}

	type histEntry struct {
		move  Move
		state *CubeState
	}
	hist := make([]*histEntry, k+1)
	hist[0] = &histEntry{move: Identity(), state: state.Clone()}

	type workItem struct {
		depth int
		turn  Turn
	}
	allTurns := state.AllTurns()
	work := make([]workItem, 0, len(allTurns)*k)
	for _, t := range allTurns {
		work = append(work, workItem{depth: 1, turn: t})
	}

	for len(work) > 0 {
		item := work[len(work)-1]
		work = work[:len(work)-1]

		prev := hist[item.depth-1]
		cur := &histEntry{move: prev.move.Clone(), state: prev.state.Clone()}
		cur.state.Turn(item.turn)
		cur.move.Turns = append(cur.move.Turns, item.turn)
		hist[item.depth] = cur

		if cur.state.IsSolved() {
			return cur.move, nil
		}

		if item.depth >= k {
			continue
		}

		remaining := k - item.depth
		if state.Size() > 2 && remaining < CornerGodsNumber {
			if h, ok := s.cornerLowerBound(cur.state, remaining); ok && h > remaining {
				continue
			}
		}

		for _, t := range allTurns {
			if !cur.move.IsNextTurnEfficient(t) {
				continue
			}
			work = append(work, workItem{depth: item.depth + 1, turn: t})
		}
	}

	return Move{}, fmt.Errorf("%w: bound %d", ErrUnsolvable, k)
}

// calcHeuristic computes an admissible lower bound for state: the corner
// pattern-database distance, optionally sharpened by optimally solving a
// smaller-cube projection of large states. boundHint (when >= 0) lets the
// expensive projection solve be skipped once the cheap bound already
// overshoots the caller's bound.
func (s *Solver) calcHeuristic(state *CubeState, solveSmaller bool, boundHint int) (int, error) {
	if !s.tables.HasCornerTable() {
		return 0, ErrNoHeuristics
	}
	h, ok := s.cornerLowerBound(state, 0)
	if !ok {
		return 0, fmt.Errorf("%w: corner projection is not a reachable configuration", ErrBadInput)
	}

	if boundHint >= 0 && h > boundHint {
		return h, nil
	}

	if solveSmaller && state.Size() > 4 {
		target := 4
		if state.Size()%2 == 1 {
			target = 3
		}
		smaller := state.ShrinkTo(target)
		if m, err := s.SolveIDAStar(smaller); err == nil {
			if m.Len() > h {
				h = m.Len()
			}
		}
	}

	return h, nil
}

// heuristicMemo caches heuristic values for shallow search nodes on large
// cubes, where the smaller-cube projection solve dominates the cost.
type heuristicMemo map[string]int

func (s *Solver) heuristicFor(memo heuristicMemo, state *CubeState, g int, boundHint int) (int, error) {
	if memo == nil || g >= 7 {
		return s.calcHeuristic(state, true, boundHint)
	}
	key := state.rawKey()
	if h, ok := memo[key]; ok {
		return h, nil
	}
	h, err := s.calcHeuristic(state, true, boundHint)
	if err != nil {
		return 0, err
	}
	memo[key] = h
	return h, nil
}

// SolveIDAStar runs iterative-deepening A* and returns an optimal solution.
// Each iteration explores nodes with f = g + h up to the current bound,
// always expanding the most promising (smallest f) frontier node first; the
// smallest f seen beyond the bound becomes the next iteration's bound. If an
// iteration overflows no node, the state is unreachable from solved and
// ErrUnsolvable is returned. Requires a corner table.
func (s *Solver) SolveIDAStar(state *CubeState) (Move, error) {
	var memo heuristicMemo
	if state.Size() > 4 {
		memo = make(heuristicMemo, 4000000)
	}

	startH, err := s.heuristicFor(memo, state, 0, -1)
	if err != nil {
		return Move{}, err
	}
	bound := startH

	type node struct {
		move  Move
		state *CubeState
		f     int
	}
	allTurns := state.AllTurns()
	var stack []node

	for {
		minExcess := -1
		stack = append(stack[:0], node{move: Identity(), state: state.Clone(), f: startH})

		for len(stack) > 0 {
			sort.Slice(stack, func(i, j int) bool { return stack[i].f > stack[j].f })
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if cur.state.IsSolved() {
				return cur.move, nil
			}
			g := cur.move.Len()

			for _, t := range allTurns {
				if !cur.move.IsNextTurnEfficient(t) {
					continue
				}
				nextState := cur.state.Clone()
				nextState.Turn(t)
				nextMove := cur.move.Clone()
				nextMove.Turns = append(nextMove.Turns, t)

				nextG := g + 1
				hint := -1
				if minExcess >= 0 {
					hint = minExcess - nextG
				}
				nextH, err := s.heuristicFor(memo, nextState, nextG, hint)
				if err != nil {
					return Move{}, err
				}
				nextF := nextG + nextH

				if nextF > bound {
					if minExcess < 0 || nextF < minExcess {
						minExcess = nextF
					}
				} else {
					stack = append(stack, node{move: nextMove, state: nextState, f: nextF})
				}
			}
		}

		if minExcess < 0 {
			return Move{}, fmt.Errorf("%w: search space exhausted at bound %d", ErrUnsolvable, bound)
		}
		bound = minExcess
	}
}

// Solve2x2x2WithTable solves a 2x2x2 state by greedy descent on the corner
// table: from a state at distance v there is always a turn leading to
// distance v-1, so repeatedly taking any strictly improving turn reaches
// solved in exactly v turns. A stall before solved means the table is
// inconsistent with the turn model and panics.
func (s *Solver) Solve2x2x2WithTable(state *CubeState) (Move, error) {
	if state.Size() != 2 {
		return Move{}, fmt.Errorf("%w: need a 2x2x2 state, got %dx%dx%d",
			ErrBadInput, state.Size(), state.Size(), state.Size())
	}
	if !s.tables.HasCornerTable() {
		return Move{}, ErrNoHeuristics
	}
	if state.IsSolved() {
		return Identity(), nil
	}

	v, ok := s.tables.CornerDistance(state)
	if !ok {
		return Move{}, fmt.Errorf("%w: state is not a reachable configuration", ErrUnsolvable)
	}

	cur := state.Clone()
	solution := Identity()
	allTurns := cur.AllTurns()

	vLeft := v
	for step := 0; step < v; step++ {
		found := false
		for _, t := range allTurns {
			next := cur.Clone()
			next.Turn(t)
			if newV, ok := s.tables.CornerDistance(next); ok && newV < vLeft {
				cur = next
				solution.Turns = append(solution.Turns, t)
				vLeft = newV
				found = true
				break
			}
		}
		if !found {
			if cur.IsSolved() {
				break
			}
			panic(fmt.Sprintf("rubiks: greedy table descent stalled at distance %d for state %q",
				vLeft, cur.StateString()))
		}
	}

	return solution, nil
}
