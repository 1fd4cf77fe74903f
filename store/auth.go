package store

import (
	"encoding/json"
	"sync"

	"github.com/jo-carlos-borges/pantry-tracker/models"
	"github.com/jo-carlos-borges/pantry-tracker/storage"
)

// AuthBackend is what the auth store needs from the service layer.
type AuthBackend interface {
	Login(creds models.LoginCredentials) (*models.Session, error)
	Register(data models.RegisterData) (*models.Session, error)
}

// AuthStore holds the session and mirrors it into durable storage so
// it survives restarts.
type AuthStore struct {
	mu      sync.RWMutex
	svc     AuthBackend
	durable storage.Store

	token   string
	user    *models.User
	loading bool
	err     string
}

// NewAuthStore restores any persisted session. A stored user blob that
// no longer parses is dropped silently; the token is kept either way.
func NewAuthStore(svc AuthBackend, durable storage.Store) *AuthStore {
	s := &AuthStore{svc: svc, durable: durable}

	if raw, ok, err := durable.Load(storage.KeyAuthToken); err == nil && ok {
		s.token = string(raw)
	}
	if raw, ok, err := durable.Load(storage.KeyAuthUser); err == nil && ok {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			durable.Delete(storage.KeyAuthUser)
		} else {
			s.user = &user
		}
	}
	return s
}

// Token returns the session token, or "".
func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the logged-in user, or nil.
func (s *AuthStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

// IsAuthenticated reports whether a session token is present.
func (s *AuthStore) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *AuthStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *AuthStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Login authenticates and persists the resulting session.
func (s *AuthStore) Login(creds models.LoginCredentials) bool {
	s.begin()
	session, err := s.svc.Login(creds)
	if err != nil {
		s.fail(err)
		return false
	}
	s.adopt(session)
	return true
}

// Register creates an account and persists the resulting session.
func (s *AuthStore) Register(data models.RegisterData) bool {
	s.begin()
	session, err := s.svc.Register(data)
	if err != nil {
		s.fail(err)
		return false
	}
	s.adopt(session)
	return true
}

// Logout clears the in-memory session and its durable copies.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.durable.Delete(storage.KeyAuthToken)
	s.durable.Delete(storage.KeyAuthUser)
}

func (s *AuthStore) adopt(session *models.Session) {
	user := session.User

	s.mu.Lock()
	s.token = session.Token
	s.user = &user
	s.loading = false
	s.mu.Unlock()

	s.durable.Save(storage.KeyAuthToken, []byte(session.Token))
	if raw, err := json.Marshal(user); err == nil {
		s.durable.Save(storage.KeyAuthUser, raw)
	}
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *AuthStore) fail(err error) {
	s.mu.Lock()
	s.err = err.Error()
	s.loading = false
	s.mu.Unlock()
}
