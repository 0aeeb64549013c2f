// log_storage.go implements SQLite persistence for the audit log.
//
// Separated from log.go so the fluent builder stays free of database code.
// One database serves every site; the project column holds a hash of the
// site root so entries can be grouped per site without storing the path.
//
// Design: write failures are reported on stderr and otherwise ignored. A page
// write must succeed even when the audit log cannot record it.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, source, author, action, url, path,
		                 kind, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.project, e.Source, nilIfEmpty(e.Author), e.Action,
		nilIfEmpty(e.URL), nilIfEmpty(e.Path), nilIfEmpty(e.Kind),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "docsite: audit log write failed: %v\n", err)
	}
}

func (l *Logger) recent(limit int, since time.Time) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	var after int64
	if !since.IsZero() {
		after = since.UnixMilli()
	}
	rows, err := l.db.Query(`
		SELECT start, end, source, author, action, url, path, kind, success, error, detail
		FROM log WHERE project = ? AND start >= ? ORDER BY id DESC LIMIT ?`, l.project, after, limit)
	if err != nil {
		return nil, fmt.Errorf("querying log: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e                                       Entry
			author, url, path, kind, errMsg, detail sql.NullString
			success                                 int
		)
		if err := rows.Scan(&e.Start, &e.End, &e.Source, &author, &e.Action,
			&url, &path, &kind, &success, &errMsg, &detail); err != nil {
			return nil, fmt.Errorf("scanning log: %w", err)
		}
		e.Author, e.URL, e.Path, e.Kind, e.Error = author.String, url.String, path.String, kind.String, errMsg.String
		e.Success = success == 1
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &e.Detail)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// dbPathFunc returns the database path. Tests override it.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".docsite", "log", "docsite-log.db")
	}
	return filepath.Join(home, ".docsite", "log", "docsite-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash derives a site identifier from its root directory.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			start   INTEGER NOT NULL,
			end     INTEGER NOT NULL,
			project TEXT NOT NULL,
			source  TEXT NOT NULL,
			author  TEXT,
			action  TEXT NOT NULL,
			url     TEXT,
			path    TEXT,
			kind    TEXT,
			success INTEGER NOT NULL,
			error   TEXT,
			detail  TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

// nilIfEmpty stores empty strings as NULL.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
