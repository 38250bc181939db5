// Package rubiks implements nxnxn Rubik's-cube style combination puzzles:
// cube state representation, the turn algebra over it, and solvers.
//
// # Features
//
//   - Facelet-array cube state for any size n >= 2
//   - Quarter-turn algebra with axis-based and face-based views
//   - Move sequences with inversion, composition and redundancy pruning
//   - Corner pattern database built by breadth-first search
//   - Bounded depth-first (branch-and-bound) and IDA* solvers
//
// # Quick Start
//
// Scramble a 3x3x3 and solve it optimally:
//
//	tables := rubiks.NewHeuristicsTables()
//	tables.BuildCornerTable()
//	solver := rubiks.NewSolverWithTables(tables)
//
//	state, scramble := rubiks.Scramble(3, 20)
//	fmt.Println("scrambled with", scramble)
//
//	solution, err := solver.SolveIDAStar(state)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	state.DoMove(solution)
//	fmt.Println("solved:", state.IsSolved())
//
// # State Strings
//
// States round-trip through a flat facelet string, faces in ULFRBD order,
// each face row-major:
//
//	state, err := rubiks.FromStateString("WWWWGGGGRRRRBBBBOOOOYYYY")
//
// # Solvers
//
// SolveDPLL finds any solution within a turn bound. SolveIDAStar finds an
// optimal solution using the corner pattern database (and, for large cubes,
// recursive solves of smaller projections) as admissible lower bounds.
// Solve2x2x2WithTable reads an optimal 2x2x2 solution straight off the
// table by greedy descent.
package rubiks
