// Package services is the seam between the state stores and the
// backend. Today every call passes straight through to the mock API;
// when a real network client exists it slots in behind the same
// interfaces without touching the stores.
package services

import "github.com/jo-carlos-borges/pantry-tracker/models"

// AuthAPI is what the auth service needs from a backend.
type AuthAPI interface {
	Login(creds models.LoginCredentials) (*models.Session, error)
	Register(data models.RegisterData) (*models.Session, error)
}

// AuthService forwards auth calls to the backend unchanged.
type AuthService struct {
	api AuthAPI
}

func NewAuthService(api AuthAPI) *AuthService {
	return &AuthService{api: api}
}

func (s *AuthService) Login(creds models.LoginCredentials) (*models.Session, error) {
	return s.api.Login(creds)
}

func (s *AuthService) Register(data models.RegisterData) (*models.Session, error) {
	return s.api.Register(data)
}
