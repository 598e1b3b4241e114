package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Store persists the bearer token in a file. It is safe for concurrent use.
type Store struct {
	path string

	mu     sync.RWMutex
	token  string
	loaded bool
}

// NewStore creates a store for cfg. Nothing is read until the token is first needed.
func NewStore(cfg Config) *Store {
	path := cfg.Path
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Path returns the token file location.
func (s *Store) Path() string {
	return s.path
}

// Token returns the stored token, or "" when none is stored or the file is unreadable.
func (s *Store) Token() string {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.token
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		data, err := os.ReadFile(s.path)
		if err == nil {
			s.token = strings.TrimSpace(string(data))
		}
		s.loaded = true
	}
	return s.token
}

// SetToken stores token. An empty token clears the session.
func (s *Store) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return s.Clear()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write session token: %w", err)
	}

	s.token = token
	s.loaded = true
	return nil
}

// Clear removes the stored token.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear session token: %w", err)
	}

	s.token = ""
	s.loaded = true
	return nil
}

// Claims decodes the stored token. It returns ErrNoToken when nobody is logged in.
func (s *Store) Claims() (*Claims, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return ParseClaims(token)
}

// Expired reports whether the stored token's exp claim is at or before now.
// Tokens without exp never expire; undecodable tokens count as expired.
func (s *Store) Expired(now time.Time) bool {
	claims, err := s.Claims()
	if err != nil {
		return true
	}
	return claims.ExpiredAt(now)
}
