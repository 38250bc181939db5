// Package cli implements the command-line interface for the rubiks solver.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	rubiks "github.com/ZackJorquera/Rubiks-cube-solver"
	"github.com/ZackJorquera/Rubiks-cube-solver/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool

	log = logrus.New()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubiks",
	Short: "nxnxn Rubik's cube solver",
	Long: `A solver for nxnxn Rubik's cube style puzzles.

Solve states given as facelet strings, generate scrambles, and manage the
corner pattern database the solvers use as a lower-bound heuristic. The
pattern database and the solve history are cached in a local SQLite file.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubiks/rubiks.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the database from the --db flag or the default location and
// applies migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// loadTables returns the corner pattern database, loading it from the cache
// when present and building plus caching it otherwise.
func loadTables(db *storage.DB) (*rubiks.HeuristicsTables, error) {
	repo := storage.NewTableRepository(db)

	cached, err := repo.HasCornerTable(rubiks.CornerStateCount)
	if err != nil {
		return nil, err
	}

	tables := rubiks.NewHeuristicsTables()
	if cached {
		t0 := time.Now()
		raw, err := repo.LoadCornerTable()
		if err != nil {
			return nil, err
		}
		tables.SetCornerTable(raw)
		log.Debugf("loaded corner table from %s in %s", db.Path(), time.Since(t0))
		return tables, nil
	}

	log.Info("building corner pattern database, this happens once")
	t0 := time.Now()
	tables.BuildCornerTable()
	log.Debugf("built corner table in %s", time.Since(t0))

	if err := repo.SaveCornerTable(tables.CornerTable()); err != nil {
		// the in-memory table still works, caching is best effort
		log.Warnf("could not cache corner table: %v", err)
	}
	return tables, nil
}

// formatDuration renders a duration for human output.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
