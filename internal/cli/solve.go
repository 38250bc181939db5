package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	rubiks "github.com/ZackJorquera/Rubiks-cube-solver"
	"github.com/ZackJorquera/Rubiks-cube-solver/internal/storage"
)

var (
	solveBound  int
	solveMethod string
	solveNoSave bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <state-string>",
	Short: "Solve a cube state",
	Long: `Solve a cube state given as a facelet string.

The string lists all 6*n*n facelets in face order Up, Left, Front, Right,
Back, Down, each face row by row, using the letters W, G, R, B, O and Y.

Methods:
  auto     table descent for 2x2x2 states, bounded search otherwise (default)
  dpll     depth-first search within --bound turns
  idastar  optimal solution via iterative-deepening A*
  table    greedy pattern-database descent (2x2x2 only)`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVarP(&solveBound, "bound", "b", 15, "Turn bound for the dpll method")
	solveCmd.Flags().StringVarP(&solveMethod, "method", "m", "auto", "Solve method: auto, dpll, idastar or table")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "Do not record the solve in the history")
}

func runSolve(cmd *cobra.Command, args []string) error {
	state, err := rubiks.FromStateString(args[0])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	tables, err := loadTables(db)
	if err != nil {
		return err
	}
	solver := rubiks.NewSolverWithTables(tables)

	fmt.Println(RenderState(state))

	method := solveMethod
	if method == "auto" {
		if state.Size() == 2 {
			method = "table"
		} else {
			method = "dpll"
		}
	}

	t0 := time.Now()
	var solution rubiks.Move
	switch method {
	case "dpll":
		solution, err = solver.SolveDPLL(state, solveBound)
	case "idastar":
		solution, err = solver.SolveIDAStar(state)
	case "table":
		solution, err = solver.Solve2x2x2WithTable(state)
	default:
		return fmt.Errorf("unknown method %q", solveMethod)
	}
	elapsed := time.Since(t0)

	if err != nil {
		if errors.Is(err, rubiks.ErrUnsolvable) {
			fmt.Println("No Solution")
			return nil
		}
		return err
	}

	fmt.Printf("Solution (%d turns, %s): %s\n", solution.Len(), formatDuration(elapsed), solution)

	if !solveNoSave {
		repo := storage.NewSolveRepository(db)
		id, err := repo.Create(state.Size(), "", args[0], solution.String(), solution.Len(), method, elapsed)
		if err != nil {
			log.Warnf("could not record solve: %v", err)
		} else {
			log.Debugf("recorded solve %s", id)
		}
	}

	return nil
}
