// Package session persists the signed-in user as a single JSON record.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileName is the durable key holding the session.
const FileName = "session.json"

// ErrEmptyCredentials indicates a login or signup without an identity.
var ErrEmptyCredentials = errors.New("email or name is required")

// Screen is the first screen shown at startup.
type Screen string

const (
	ScreenSplash    Screen = "splash"
	ScreenLogin     Screen = "login"
	ScreenSignup    Screen = "signup"
	ScreenDashboard Screen = "dashboard"
)

// Session identifies the signed-in user.
type Session struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// DisplayName returns the name to greet the user with.
func (session Session) DisplayName() string {
	if session.Name != "" {
		return session.Name
	}
	if session.Email != "" {
		return session.Email
	}
	return "Cutie"
}

func (session Session) valid() bool {
	return session.Email != "" || session.Name != ""
}

// Store reads and writes the session file.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewStore creates a store keeping the session in dir.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:   filepath.Join(dir, FileName),
		logger: logger.With("component", "session"),
	}
}

// Path returns the session file location.
func (store *Store) Path() string {
	return store.path
}

// Load returns the saved session. A missing or malformed record counts as no
// session.
func (store *Store) Load() (Session, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			store.logger.Warn("read session", "path", store.path, "error", err)
		}
		return Session{}, false
	}

	var session Session
	if err := json.Unmarshal(rawData, &session); err != nil {
		store.logger.Warn("ignore malformed session", "path", store.path, "error", err)
		return Session{}, false
	}
	if !session.valid() {
		return Session{}, false
	}
	return session, true
}

// Save writes the session.
func (store *Store) Save(session Session) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	serialized, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(store.path, serialized, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear removes the session. A missing file is not an error.
func (store *Store) Clear() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := os.Remove(store.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Login accepts any credentials and persists the email.
func (store *Store) Login(email, _ string) (Session, error) {
	session := Session{Email: strings.TrimSpace(email)}
	if !session.valid() {
		return Session{}, ErrEmptyCredentials
	}
	if err := store.Save(session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Signup accepts any credentials and persists name and email.
func (store *Store) Signup(name, email, _ string) (Session, error) {
	session := Session{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
	if !session.valid() {
		return Session{}, ErrEmptyCredentials
	}
	if err := store.Save(session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Logout forgets the session.
func (store *Store) Logout() error {
	return store.Clear()
}

// InitialScreen decides where the application opens.
func (store *Store) InitialScreen() Screen {
	if _, ok := store.Load(); ok {
		return ScreenDashboard
	}
	return ScreenSplash
}
