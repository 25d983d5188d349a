package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
)

const createLedger = `CREATE TABLE IF NOT EXISTS schema_migrations (
	filename   TEXT PRIMARY KEY,
	applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Run brings db up to date with the embedded gallery schema.
func Run(ctx context.Context, db *sql.DB) error {
	applied, err := Apply(ctx, db, FS)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		slog.InfoContext(ctx, "schema updated", "applied", applied)
	}
	return nil
}

// Apply executes the *.sql files in fsys that schema_migrations has not
// recorded, in lexical order, and returns the names it ran. Each file and its
// ledger row commit together; the first failure stops the run.
func Apply(ctx context.Context, db *sql.DB, fsys fs.FS) ([]string, error) {
	if _, err := db.ExecContext(ctx, createLedger); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	pending, err := pendingFiles(ctx, db, fsys)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, name := range pending {
		if err := applyFile(ctx, db, fsys, name); err != nil {
			return applied, fmt.Errorf("migration %s: %w", name, err)
		}
		applied = append(applied, name)
	}
	return applied, nil
}

func pendingFiles(ctx context.Context, db *sql.DB, fsys fs.FS) ([]string, error) {
	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	slices.Sort(files)

	rows, err := db.QueryContext(ctx, "SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	done := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("read schema_migrations: %w", err)
		}
		done[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}

	return slices.DeleteFunc(files, func(name string) bool {
		_, ok := done[name]
		return ok
	}), nil
}

func applyFile(ctx context.Context, db *sql.DB, fsys fs.FS, name string) error {
	body, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(body)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (filename) VALUES (?)", name); err != nil {
		return err
	}
	slog.DebugContext(ctx, "migration applied", "file", name)
	return tx.Commit()
}
