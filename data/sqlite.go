package data

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite database handle
var (
	db     *sql.DB
	dbOnce sync.Once
)

// initDB initializes the SQLite database
func initDB() error {
	var initErr error
	dbOnce.Do(func() {
		dbPath := filepath.Join(Dir(), "hub.db")

		var err error
		db, err = sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=10000")
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			return
		}

		// SQLite works best with limited connections
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS api_calls (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				called_at DATETIME NOT NULL,
				service TEXT NOT NULL,
				method TEXT NOT NULL,
				url TEXT NOT NULL,
				status INTEGER NOT NULL,
				duration_ms INTEGER NOT NULL,
				error TEXT
			);
			CREATE INDEX IF NOT EXISTS idx_called_at ON api_calls(called_at);
			CREATE TABLE IF NOT EXISTS sys_log (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				logged_at DATETIME NOT NULL,
				package TEXT NOT NULL,
				message TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_logged_at ON sys_log(logged_at);
		`)
		if err != nil {
			initErr = fmt.Errorf("failed to create tables: %w", err)
			return
		}
	})
	return initErr
}

// getDB returns the database handle, initializing if needed
func getDB() (*sql.DB, error) {
	if err := initDB(); err != nil {
		return nil, err
	}
	return db, nil
}

// APICall is one persisted outbound API call record.
type APICall struct {
	Time     time.Time
	Service  string
	Method   string
	URL      string
	Status   int
	Duration time.Duration
	Error    string
}

// InsertAPICall persists an outbound API call record
func InsertAPICall(c *APICall) error {
	db, err := getDB()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO api_calls (called_at, service, method, url, status, duration_ms, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.Time, c.Service, c.Method, c.URL, c.Status, c.Duration.Milliseconds(), c.Error)

	return err
}

// SysLogLine is one persisted system log line.
type SysLogLine struct {
	Time    time.Time
	Package string
	Message string
}

// InsertSysLog persists a system log line
func InsertSysLog(l *SysLogLine) error {
	db, err := getDB()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO sys_log (logged_at, package, message)
		VALUES (?, ?, ?)
	`, l.Time, l.Package, l.Message)

	return err
}

// ListSysLog returns the most recent system log lines, newest first
func ListSysLog(limit int) ([]*SysLogLine, error) {
	db, err := getDB()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 100
	}

	rows, err := db.Query(`
		SELECT logged_at, package, message
		FROM sys_log ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*SysLogLine
	for rows.Next() {
		var l SysLogLine
		if err := rows.Scan(&l.Time, &l.Package, &l.Message); err != nil {
			return nil, err
		}
		lines = append(lines, &l)
	}

	return lines, rows.Err()
}

// ListAPICalls returns the most recent API call records, newest first
func ListAPICalls(limit int) ([]*APICall, error) {
	db, err := getDB()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 100
	}

	rows, err := db.Query(`
		SELECT called_at, service, method, url, status, duration_ms, error
		FROM api_calls ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calls []*APICall
	for rows.Next() {
		var c APICall
		var durationMS int64
		var errStr sql.NullString
		if err := rows.Scan(&c.Time, &c.Service, &c.Method, &c.URL, &c.Status, &durationMS, &errStr); err != nil {
			return nil, err
		}
		c.Duration = time.Duration(durationMS) * time.Millisecond
		if errStr.Valid {
			c.Error = errStr.String
		}
		calls = append(calls, &c)
	}

	return calls, rows.Err()
}
