package pass

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// History persists one row per completed pass to a local SQLite
// database, so repeated runs over the same design can be compared.
// SQLite is chosen because run history is a single-process local
// artifact with no server to dial (see DESIGN.md for why
// go-sql-driver/mysql remains unwired).
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if necessary) a SQLite database at path
// and ensures the run_history table exists.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("pass: opening history database: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS run_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	design TEXT NOT NULL,
	pass_name TEXT NOT NULL,
	success INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	hpwl_after INTEGER NOT NULL,
	rss_bytes INTEGER NOT NULL,
	error TEXT
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("pass: creating run_history schema: %w", err)
	}

	return &History{db: db}, nil
}

// Record inserts one row for a completed pass under runID, the xid
// identifier minted once per Driver.Run call so every pass in the same
// run shares it.
func (h *History) Record(runID RunID, design string, result PassResult) error {
	errMsg := ""
	if result.Err != nil {
		errMsg = result.Err.Error()
	}

	_, err := h.db.Exec(
		`INSERT INTO run_history (run_id, design, pass_name, success, duration_ms, hpwl_after, rss_bytes, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID.String(), design, result.Name, boolToInt(result.Success),
		result.Duration.Milliseconds(), result.HPWLAfter, result.RSSBytes, errMsg,
	)
	if err != nil {
		return fmt.Errorf("pass: recording history for pass %q: %w", result.Name, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (h *History) Close() error { return h.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
