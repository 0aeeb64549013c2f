// Package log records an audit trail of docsite operations. Entries are
// stored in ~/.docsite/log/docsite-log.db and cover CLI commands, MCP tools
// and HTTP requests across every site the tool has touched.
//
// # Fluent API
//
//	log.Event("page:write", "write").
//		Author(cmd.Author()).
//		URL(url).
//		Path(res.Path).
//		Write(err)
//
//	log.Event("nav:validate", "validate").
//		Kind(p.Kind().String()).
//		Detail("name", p.Name).
//		Write(err)
//
// The source is "{extension}:{command}" for CLI commands, "mcp:{tool}" for
// MCP tools and "http:{route}" for API handlers.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry is a single audit record.
type Entry struct {
	Source string `json:"source"` // e.g. "page:cat", "mcp:site_read"
	Author string `json:"author,omitempty"`
	Action string `json:"action"`         // read, write, create, remove, validate, build, zip
	URL    string `json:"url,omitempty"`  // requested page url or proposal location
	Path   string `json:"path,omitempty"` // resolved file path under the docs directory
	Kind   string `json:"kind,omitempty"` // section, subsection or page for create/validate

	Start int64 `json:"start"` // unix millis when Event() was called
	End   int64 `json:"end"`   // unix millis when Write() was called

	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Detail  map[string]any `json:"detail,omitempty"`
}

// Builder constructs an [Entry]. Create with [Event], then finish with
// [Builder.Write].
type Builder struct {
	entry Entry
}

// Event starts an entry for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().UnixMilli(),
		},
	}
}

// Author sets who performed the operation. MCP tools use "mcp", HTTP
// handlers use "http".
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// URL sets the page url or location the caller asked for.
func (b *Builder) URL(url string) *Builder {
	b.entry.URL = url
	return b
}

// Path sets the file the url resolved to. Only set it once resolution
// succeeded.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Kind sets the node kind a create or validate targeted.
func (b *Builder) Kind(kind string) *Builder {
	b.entry.Kind = kind
	return b
}

// Detail adds a key-value pair. May be called repeatedly.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write stores the entry, deriving success from err.
//
//	res, err := svc.Find(ctx, url, nil)
//	log.Event("nav:find", "read").URL(url).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().UnixMilli()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Callers may ignore the error; logging is best-effort.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the site identifier for subsequent entries. dir should be
// the absolute site root.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. A no-op when the logger is not open.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns up to limit entries for the current project, newest
// first. Entries that started before since are skipped; a zero since
// returns everything. Returns nil when the log is not open.
func Recent(limit int, since time.Time) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	return l.recent(limit, since)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
