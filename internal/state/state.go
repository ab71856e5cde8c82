// Package state persists calculator variables between sessions as a JSON
// file.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/itsmostafa/gocalc/internal/calc"
)

// Session is the on-disk form of a calculator session.
type Session struct {
	SessionID   string           `json:"session_id"`
	Variables   map[string]int64 `json:"variables"`
	StartedAt   time.Time        `json:"started_at"`
	LastUpdated time.Time        `json:"last_updated"`
}

// Manager loads and saves a session file.
type Manager struct {
	path string
}

// NewManager creates a Manager for the file at path.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Path returns the session file location.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the session file. A missing file starts a new session.
func (m *Manager) Load() (*Session, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		now := time.Now()
		return &Session{
			SessionID:   uuid.New().String(),
			Variables:   map[string]int64{},
			StartedAt:   now,
			LastUpdated: now,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session state: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session state: %w", err)
	}
	if s.SessionID == "" {
		s.SessionID = uuid.New().String()
	}
	if s.Variables == nil {
		s.Variables = map[string]int64{}
	}
	return &s, nil
}

// Save writes the session file, creating its directory if needed.
func (m *Manager) Save(s *Session) error {
	s.LastUpdated = time.Now()

	if dir := filepath.Dir(m.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create state directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	// Write to a temp file first so an interrupted save keeps the old state.
	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}
	return nil
}

// Symbols builds a symbol table from the saved variables. Names that are
// not valid identifiers are skipped.
func (s *Session) Symbols() *calc.Symbols {
	syms := calc.NewSymbols()
	for name, v := range s.Variables {
		if !validName(name) {
			continue
		}
		syms.Set(name, v)
	}
	return syms
}

// Capture replaces the saved variables with the table's current contents.
func (s *Session) Capture(syms *calc.Symbols) {
	s.Variables = syms.Snapshot()
}

func validName(name string) bool {
	tokens := calc.Tokenize(name)
	return len(tokens) == 1 && tokens[0].Kind == calc.TokenIdent && tokens[0].Text == name
}
