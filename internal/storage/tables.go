package storage

import (
	"database/sql"
	"fmt"
)

// insertBatchSize bounds the number of rows per INSERT statement; SQLite
// limits the number of bound parameters per statement.
const insertBatchSize = 400

// TableRepository persists pattern-database tables so they are built once and
// loaded on later runs.
type TableRepository struct {
	db *DB
}

// NewTableRepository creates a new table repository.
func NewTableRepository(db *DB) *TableRepository {
	return &TableRepository{db: db}
}

// HasCornerTable reports whether a complete corner table of wantCount entries
// is stored.
func (r *TableRepository) HasCornerTable(wantCount int) (bool, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM corner_distances").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count corner distances: %w", err)
	}
	return count == wantCount, nil
}

// SaveCornerTable replaces the stored corner table with the given one. The
// write happens in one transaction with batched inserts.
func (r *TableRepository) SaveCornerTable(table map[string]uint8) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM corner_distances"); err != nil {
			return fmt.Errorf("failed to clear corner distances: %w", err)
		}

		keys := make([]string, 0, insertBatchSize)
		flush := func() error {
			if len(keys) == 0 {
				return nil
			}
			query := "INSERT INTO corner_distances (state_key, distance) VALUES "
			args := make([]any, 0, len(keys)*2)
			for i, k := range keys {
				if i > 0 {
					query += ", "
				}
				query += "(?, ?)"
				args = append(args, []byte(k), table[k])
			}
			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("failed to insert corner distances: %w", err)
			}
			keys = keys[:0]
			return nil
		}

		for k := range table {
			keys = append(keys, k)
			if len(keys) == insertBatchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	})
}

// LoadCornerTable reads the stored corner table into memory.
func (r *TableRepository) LoadCornerTable() (map[string]uint8, error) {
	rows, err := r.db.Query("SELECT state_key, distance FROM corner_distances")
	if err != nil {
		return nil, fmt.Errorf("failed to query corner distances: %w", err)
	}
	defer rows.Close()

	table := make(map[string]uint8, 4000000)
	for rows.Next() {
		var key []byte
		var distance uint8
		if err := rows.Scan(&key, &distance); err != nil {
			return nil, fmt.Errorf("failed to scan corner distance: %w", err)
		}
		table[string(key)] = distance
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corner distances: %w", err)
	}

	return table, nil
}
