package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/cookbook/internal/log"
	"github.com/mesh-intelligence/cookbook/pkg/types"
)

// Store is the handle object for the recipe database. It owns a single
// pooled *sql.DB opened against one database file; each operation
// acquires and releases a connection through the pool. The mutex guards
// only the open/close lifecycle, not individual operations.
type Store struct {
	mu   sync.Mutex
	open bool
	db   *sql.DB
	path string
}

// NewStore creates an unopened Store. Call Open with a Config before use.
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store with the given configuration. It creates
// DataDir if it does not exist, opens (or creates) the database file,
// and applies the schema idempotently. Returns ErrAlreadyOpen if the
// store is already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", dataDir, err)
	}

	path := filepath.Join(dataDir, DatabaseFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database %s: %w", path, err)
	}

	if _, err := db.Exec(createRecipes); err != nil {
		db.Close()
		return fmt.Errorf("initializing schema: %w", err)
	}

	s.db = db
	s.path = path
	s.open = true
	log.Debug("store opened", "path", path)
	return nil
}

// Close releases the database handle. Idempotent: closing a closed
// store succeeds. Operations after Close return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.open = false
	log.Debug("store closed", "path", s.path)
	return nil
}

// Path returns the database file path, or "" before Open.
func (s *Store) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// handle returns the *sql.DB if the store is open.
func (s *Store) handle() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}
