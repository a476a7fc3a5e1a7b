package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const kvTable = "kv_entries"

// kvSchema describes the single table behind the SQLite backend.
func kvSchema() *schema.Table {
	t := schema.NewTable(kvTable)
	t.AddPrimary(&schema.Column{Name: "key", Type: field.TypeString})
	t.AddColumn(&schema.Column{Name: "value", Type: field.TypeString})
	t.AddColumn(&schema.Column{Name: "version", Type: field.TypeInt64})
	t.AddColumn(&schema.Column{Name: "updated_at", Type: field.TypeTime})
	return t
}

// SQLite is a Backend persisted to a SQLite database file.
type SQLite struct {
	db  *sql.DB
	drv *entsql.Driver
	now func() time.Time
}

var _ Backend = (*SQLite)(nil)

// Open creates a SQLite backend connected to the database at dsn.
// It applies recommended pragmas and migrates the key-value table.
func Open(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", withConnParams(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	m, err := schema.NewMigrate(drv, schema.WithForeignKeys(false))
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	if err := m.Create(context.Background(), kvSchema()); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &SQLite{db: db, drv: drv, now: time.Now}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *SQLite) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.drv.Close()
}

func (s *SQLite) Read(ctx context.Context, key string) (*Entry, error) {
	e, err := readEntry(ctx, s.drv, key)
	if err != nil {
		return nil, unavailable("read "+key, err)
	}
	return e, nil
}

// Write performs the version check and the write inside one immediate
// transaction, so a concurrent writer on the same file either waits or
// observes the new version.
func (s *SQLite) Write(ctx context.Context, key string, value []byte, ifVersion int64) (newVersion int64, err error) {
	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return 0, unavailable("begin write "+key, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	cur, err := readEntry(ctx, tx, key)
	if err != nil {
		return 0, unavailable("read "+key, err)
	}
	var curVersion int64
	if cur != nil {
		curVersion = cur.Version
	}
	if err := checkVersion(key, ifVersion, curVersion); err != nil {
		return 0, err
	}

	b := entsql.Dialect(dialect.SQLite)
	next := curVersion + 1
	now := s.now().UTC()

	if cur == nil {
		q, args := b.Insert(kvTable).
			Columns("key", "value", "version", "updated_at").
			Values(key, string(value), next, now).
			Query()
		if err := tx.Exec(ctx, q, args, nil); err != nil {
			return 0, unavailable("insert "+key, err)
		}
	} else {
		q, args := b.Update(kvTable).
			Set("value", string(value)).
			Set("version", next).
			Set("updated_at", now).
			Where(entsql.And(entsql.EQ("key", key), entsql.EQ("version", curVersion))).
			Query()
		var res entsql.Result
		if err := tx.Exec(ctx, q, args, &res); err != nil {
			return 0, unavailable("update "+key, err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return 0, unavailable("update "+key, err)
		} else if n != 1 {
			return 0, &ErrStaleWrite{Key: key, Expected: ifVersion, Actual: curVersion}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, unavailable("commit "+key, err)
	}
	return next, nil
}

func (s *SQLite) Remove(ctx context.Context, key string) error {
	q, args := entsql.Dialect(dialect.SQLite).
		Delete(kvTable).
		Where(entsql.EQ("key", key)).
		Query()
	if err := s.drv.Exec(ctx, q, args, nil); err != nil {
		return unavailable("remove "+key, err)
	}
	return nil
}

func readEntry(ctx context.Context, conn dialect.ExecQuerier, key string) (*Entry, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select("value", "version", "updated_at").
		From(entsql.Table(kvTable)).
		Where(entsql.EQ("key", key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := conn.Query(ctx, q, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var (
		value string
		e     Entry
	)
	if err := rows.Scan(&value, &e.Version, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Value = []byte(value)
	return &e, rows.Err()
}

// withConnParams adds per-connection pragmas to the DSN so every pooled
// connection gets them, and makes transactions take the write lock up front.
func withConnParams(dsn string) string {
	if strings.Contains(dsn, "_pragma=") || strings.Contains(dsn, "_txlock=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate&_time_format=sqlite"
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. NEUROTRACK_DB environment variable
// 2. $XDG_DATA_HOME/neurotrack/neurotrack.db
// 3. ~/.local/share/neurotrack/neurotrack.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("NEUROTRACK_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "neurotrack.db")
	return p, EnsureDir(p)
}

// DataDir returns $XDG_DATA_HOME/neurotrack, falling back to
// ~/.local/share/neurotrack.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "neurotrack"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
