package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ZackJorquera/Rubiks-cube-solver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent solves",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum number of solves to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-5s  %-7s  %-8s  %s\n", "ID", "WHEN", "SIZE", "METHOD", "TIME", "TURNS")
	for _, s := range solves {
		fmt.Printf("%-36s  %-20s  %-5d  %-7s  %-8s  %d\n",
			s.SolveID,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.CubeSize,
			s.Method,
			formatDuration(time.Duration(s.DurationMs)*time.Millisecond),
			s.SolutionLen)
	}
	return nil
}
