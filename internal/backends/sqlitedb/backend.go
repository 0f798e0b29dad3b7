// Package sqlitedb fills the contact cache from a local SQLite address
// book instead of an external command. The database is expected to have
// a contacts table with name and email columns, the layout used by
// sqlite-backed contact managers.
package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ahoban/cardpick/internal/backends"
)

// Backend implements the backends.Filler interface for a SQLite database
type Backend struct {
	path string
}

// NewBackend creates a new sqlitedb filler reading from path
func NewBackend(path string) backends.Filler {
	return &Backend{path: path}
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "sqlitedb"
}

// Available returns whether the database file exists
func (b *Backend) Available() bool {
	if b.path == "" {
		return false
	}
	_, err := os.Stat(b.path)
	return err == nil
}

// Fill queries all contacts with an email address and renders them as
// mutt-format lines, so downstream parsing sees the same shape the
// command-based fillers produce.
func (b *Backend) Fill(ctx context.Context) ([]string, error) {
	if b.path == "" {
		return nil, fmt.Errorf("no contacts database configured")
	}
	if _, err := os.Stat(b.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("contacts database not found at %s", b.path)
	}

	conn, err := sql.Open("sqlite3", b.path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer conn.Close()

	query := `
		SELECT name, email
		FROM contacts
		WHERE email IS NOT NULL AND email != ''
		ORDER BY name
	`

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var name, email string
		if err := rows.Scan(&name, &email); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}

		// Clean up the name field - remove newlines and trim whitespace
		name = strings.TrimSpace(strings.ReplaceAll(name, "\n", " "))

		lines = append(lines, email+"\t"+name+"\t")
	}

	return lines, rows.Err()
}

// Register the sqlitedb filler
func init() {
	backends.RegisterFiller("sqlitedb", func(cfg backends.Config) backends.Filler {
		return NewBackend(cfg.DatabasePath)
	})
}
