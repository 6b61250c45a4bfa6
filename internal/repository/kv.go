package repository

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/limbo/lockin/pkg/cleanup"
)

// SQLiteKV is the on-disk key-value store backing both repositories: a
// single kv table holding one JSON document per key.
type SQLiteKV struct {
	db *sql.DB
}

func OpenKV(dbPath string) (*SQLiteKV, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	kv := &SQLiteKV{db: db}
	if err := kv.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing kv store",
		F:    kv.Close,
	})
	return kv, nil
}

func (kv *SQLiteKV) Close() error {
	if kv.db == nil {
		return nil
	}
	return kv.db.Close()
}

func (kv *SQLiteKV) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	_, err := kv.db.Exec(ddl)
	return err
}

func (kv *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := kv.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.New("reading key error: " + err.Error())
	}
	return value, true, nil
}

func (kv *SQLiteKV) Set(ctx context.Context, key, value string) error {
	_, err := kv.db.ExecContext(
		ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value;`,
		key,
		value,
	)
	if err != nil {
		return errors.New("writing key error: " + err.Error())
	}
	return nil
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
