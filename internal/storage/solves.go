package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one solve-history row.
type Solve struct {
	SolveID     string
	CreatedAt   time.Time
	CubeSize    int
	Scramble    *string
	State       string
	Solution    string
	SolutionLen int
	Method      string
	DurationMs  int64
}

// SolveRepository provides CRUD operations for the solve history.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a finished solve and returns its ID.
func (r *SolveRepository) Create(cubeSize int, scramble, state, solution string, solutionLen int, method string, duration time.Duration) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, cube_size, scramble, state, solution, solution_len, method, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), cubeSize, scramblePtr, state, solution, solutionLen, method, duration.Milliseconds())

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, cube_size, scramble, state, solution, solution_len, method, duration_ms
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAt string
		if err := rows.Scan(&s.SolveID, &createdAt, &s.CubeSize, &s.Scramble, &s.State,
			&s.Solution, &s.SolutionLen, &s.Method, &s.DurationMs); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse solve timestamp: %w", err)
		}
		solves = append(solves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read solves: %w", err)
	}

	return solves, nil
}

// Get returns one solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAt string
	err := r.db.QueryRow(`
		SELECT solve_id, created_at, cube_size, scramble, state, solution, solution_len, method, duration_ms
		FROM solves WHERE solve_id = ?
	`, solveID).Scan(&s.SolveID, &createdAt, &s.CubeSize, &s.Scramble, &s.State,
		&s.Solution, &s.SolutionLen, &s.Method, &s.DurationMs)
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse solve timestamp: %w", err)
	}
	return &s, nil
}
