package backends

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// Filler enumerates contacts by invoking an external address book tool
// (or reading a local database) and returns the raw mutt-format lines.
type Filler interface {
	// Name returns the backend identifier (e.g. "khard", "pycarddav")
	Name() string

	// Available checks if the backend's tool or data source is present
	Available() bool

	// Fill enumerates all contacts as raw mutt-format lines
	Fill(ctx context.Context) ([]string, error)
}

// Syncer reconciles the local address book with a remote server by
// invoking an external sync tool. Process output goes to the configured
// log sink; a non-zero exit is logged rather than returned.
type Syncer interface {
	// Name returns the backend identifier (e.g. "vdirsyncer")
	Name() string

	// Available checks if the backend's tool is present
	Available() bool

	// Sync runs the external sync command and blocks until it exits
	Sync(ctx context.Context) error
}

// Config carries the settings backends may need at construction time.
type Config struct {
	// DatabasePath locates the contacts database for the sqlitedb filler
	DatabasePath string

	// FillCommand is the argv for a user-supplied fill command
	FillCommand []string

	// SyncCommand is the argv for a user-supplied sync command
	SyncCommand []string

	// SyncOutput receives the redirected stdout/stderr of sync processes
	SyncOutput io.Writer

	// Logger records backend events
	Logger zerolog.Logger
}

// FillerFactory creates a new instance of a Filler
type FillerFactory func(cfg Config) Filler

// SyncerFactory creates a new instance of a Syncer
type SyncerFactory func(cfg Config) Syncer
