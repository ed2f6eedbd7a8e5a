package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// The modernc driver is not safe for concurrent writers over multiple
	// connections to the same :memory: database; one connection is plenty
	// for a KV workload.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT v FROM kv WHERE k = ? AND (expires_at IS NULL OR expires_at > ?)`,
		key, time.Now().Unix(),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (k, v, expires_at, updated_at) VALUES (?, ?, NULL, ?)
		 ON CONFLICT(k) DO UPDATE SET v = excluded.v, expires_at = NULL, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return err
}

func (s *Store) PutTTL(ctx context.Context, key string, value []byte, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (k, v, expires_at, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(k) DO UPDATE SET v = excluded.v, expires_at = excluded.expires_at, updated_at = excluded.updated_at`,
		key, value, expiresAt.Unix(), time.Now().Unix(),
	)
	return err
}

func (s *Store) PutIfAbsent(ctx context.Context, key string, value []byte) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (k, v, expires_at, updated_at) VALUES (?, ?, NULL, ?)
		 ON CONFLICT(k) DO NOTHING`,
		key, value, time.Now().Unix(),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE k = ?`, key)
	return err
}

func (s *Store) Scan(ctx context.Context, prefix string) ([]store.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT k, v FROM kv
		 WHERE k LIKE ? ESCAPE '\' AND (expires_at IS NULL OR expires_at > ?)
		 ORDER BY k`,
		escapeLike(prefix)+"%", time.Now().Unix(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []store.Entry
	for rows.Next() {
		var e store.Entry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM kv WHERE expires_at IS NOT NULL AND expires_at <= ?`,
		time.Now().Unix(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// escapeLike neutralizes LIKE wildcards in key prefixes (emails contain '_').
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
