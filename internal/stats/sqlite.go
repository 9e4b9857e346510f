// internal/stats/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Upserting word counters and keeping only the most recent completions.

package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/assets"
)

// SQLiteStore persists usage statistics in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at dsn and applies
// migrations.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// openDB ensures the parent directory exists and configures busy timeout and
// WAL journaling.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// Writes come from background goroutines; one connection avoids
	// SQLITE_BUSY between them.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies every *.sql file of fsys in lexical order, each inside its
// own transaction, skipping names already recorded in _migrations.
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		if strings.TrimSpace(string(body)) == "" {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Load reads every table into a snapshot.
func (s *SQLiteStore) Load(ctx context.Context) (*Usage, error) {
	u := NewUsage()

	rows, err := s.db.QueryContext(ctx,
		`SELECT word, success_count, total_count, usage_count FROM word_stats`)
	if err != nil {
		return nil, fmt.Errorf("load word_stats: %w", err)
	}
	for rows.Next() {
		var ws WordStats
		if err := rows.Scan(&ws.Word, &ws.SuccessCount, &ws.TotalCount, &ws.UsageCount); err != nil {
			rows.Close()
			return nil, err
		}
		u.Words[ws.Word] = ws
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx,
		`SELECT attempts FROM game_completions ORDER BY id DESC LIMIT ?`, MaxCompletions)
	if err != nil {
		return nil, fmt.Errorf("load game_completions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a int
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		u.Completions = append(u.Completions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Newest first from the query; the ring is oldest first.
	for i, j := 0, len(u.Completions)-1; i < j; i, j = i+1, j-1 {
		u.Completions[i], u.Completions[j] = u.Completions[j], u.Completions[i]
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT total_games FROM usage_meta WHERE id = 1`).Scan(&u.TotalGames); err != nil {
		return nil, fmt.Errorf("load usage_meta: %w", err)
	}
	return u, nil
}

// RecordWord upserts the counters of word.
func (s *SQLiteStore) RecordWord(ctx context.Context, word string, success bool) error {
	inc := 0
	if success {
		inc = 1
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO word_stats (word, success_count, total_count, usage_count)
        VALUES (?, ?, 1, 1)
        ON CONFLICT(word) DO UPDATE SET
            success_count = success_count + excluded.success_count,
            total_count   = total_count + 1,
            usage_count   = usage_count + 1`,
		word, inc,
	)
	return err
}

// RecordGame appends a completion, trims old rows and bumps total_games in
// one transaction.
func (s *SQLiteStore) RecordGame(ctx context.Context, attempts int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO game_completions (attempts) VALUES (?)`, attempts); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert completion: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
        DELETE FROM game_completions
        WHERE id NOT IN (SELECT id FROM game_completions ORDER BY id DESC LIMIT ?)`,
		MaxCompletions); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("trim completions: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE usage_meta SET total_games = total_games + 1 WHERE id = 1`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("bump total_games: %w", err)
	}
	return tx.Commit()
}

// Close closes the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
