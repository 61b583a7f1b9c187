package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// sessionFile is the fixed name of the persisted session blob inside the
// state directory.
const sessionFile = "session.json"

// Store persists the session as a small JSON file, the terminal analogue
// of the browser's localStorage keys. No expiry check happens locally.
type Store struct {
	path string
}

// NewStore creates a store rooted at the given state directory.
func NewStore(stateDir string) *Store {
	return &Store{path: filepath.Join(stateDir, sessionFile)}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the persisted session. A missing file is not an error; it
// returns (nil, nil).
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	if sess.Token == "" {
		// A blob without a credential is useless; treat as logged out.
		return nil, nil
	}
	return &sess, nil
}

// Save writes the session, creating the state directory if needed. The
// file is user-only: it holds a live credential.
func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Already-absent is fine.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
