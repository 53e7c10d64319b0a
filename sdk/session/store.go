// Package session holds the backend-issued session token and the cached
// user projection in durable local storage. It is the single source of
// truth for "are we holding valid-looking credentials"; validity itself is
// always decided server-side.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sewago/sewago/internal/pkg/models"
)

// Snapshot is the persisted state: both slots are written together or not
// at all, so a reader can never observe a token without its projection.
type Snapshot struct {
	SessionToken string       `json:"session_token"`
	User         *models.User `json:"user"`
}

// Store is a durable two-slot credential holder backed by a single JSON
// file. Writes go through a temp file and rename so a crash mid-write
// leaves either the old state or the new one, never a torn mix.
type Store struct {
	mu   sync.RWMutex
	path string
	snap Snapshot
}

// NewStore loads any previously persisted session from path. A missing or
// unreadable file yields an empty store; stale garbage is not worth failing
// startup over since the backend revalidates everything anyway.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Corrupt file: start clean.
		return s, nil
	}
	if snap.SessionToken == "" || snap.User == nil {
		// Half-populated state violates the store invariant; discard it.
		return s, nil
	}

	s.snap = snap
	return s, nil
}

// Set persists the session token together with the user projection. Both
// are written atomically; on any failure the in-memory state is untouched.
func (s *Store) Set(token string, user *models.User) error {
	if token == "" || user == nil {
		return fmt.Errorf("session requires both a token and a user projection")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{SessionToken: token, User: user}
	if err := s.persist(snap); err != nil {
		return err
	}

	s.snap = snap
	return nil
}

// Clear removes both slots. Idempotent: clearing an empty store succeeds.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	s.snap = Snapshot{}
	return nil
}

// Get returns the current snapshot. A zero-value snapshot means no session
// is stored. The result only decides whether silent reconciliation is worth
// attempting at startup; it is never proof of validity.
func (s *Store) Get() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Token returns the stored session token, or "" when empty.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.SessionToken
}

func (s *Store) persist(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close session file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
