package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	rubiks "github.com/ZackJorquera/Rubiks-cube-solver"
	"github.com/ZackJorquera/Rubiks-cube-solver/internal/storage"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Manage the corner pattern database",
}

var tableBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the corner pattern database and cache it",
	RunE:  runTableBuild,
}

var tableInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the state of the cached pattern database",
	RunE:  runTableInfo,
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.AddCommand(tableBuildCmd)
	tableCmd.AddCommand(tableInfoCmd)
}

func runTableBuild(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	tables := rubiks.NewHeuristicsTables()
	t0 := time.Now()
	tables.BuildCornerTable()
	fmt.Printf("Built corner table (%d states) in %s\n", rubiks.CornerStateCount, formatDuration(time.Since(t0)))

	t0 = time.Now()
	if err := storage.NewTableRepository(db).SaveCornerTable(tables.CornerTable()); err != nil {
		return err
	}
	fmt.Printf("Cached to %s in %s\n", db.Path(), formatDuration(time.Since(t0)))
	return nil
}

func runTableInfo(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	complete, err := storage.NewTableRepository(db).HasCornerTable(rubiks.CornerStateCount)
	if err != nil {
		return err
	}

	fmt.Printf("Database:     %s\n", db.Path())
	if complete {
		fmt.Printf("Corner table: cached (%d states, max distance %d)\n",
			rubiks.CornerStateCount, rubiks.CornerGodsNumber)
	} else {
		fmt.Println("Corner table: not cached, run 'rubiks table build'")
	}
	return nil
}
