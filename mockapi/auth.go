package mockapi

import (
	"fmt"

	"github.com/jo-carlos-borges/pantry-tracker/models"
	"github.com/jo-carlos-borges/pantry-tracker/storage"
)

// Login checks the credentials against the stored users. Passwords are
// never verified for real: only the seeded demo account is accepted,
// with any non-empty password.
func (a *API) Login(creds models.LoginCredentials) (*models.Session, error) {
	a.delayAuth()

	if creds.Email == "" || creds.Password == "" {
		return nil, models.ErrMissingCredentials
	}

	users, err := storage.GetData[models.User](a.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}

	var user *models.User
	for i := range users {
		if users[i].Email == creds.Email {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	if user.Email != storage.DemoEmail {
		return nil, models.ErrInvalidCredentials
	}

	return &models.Session{Token: a.newToken(), User: *user}, nil
}

// Register appends a new user unless the email is already taken.
func (a *API) Register(data models.RegisterData) (*models.Session, error) {
	a.delayAuth()

	if data.Username == "" || data.Email == "" || data.Password == "" {
		return nil, models.ErrMissingFields
	}

	users, err := storage.GetData[models.User](a.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == data.Email {
			return nil, models.ErrEmailTaken
		}
	}

	user := models.User{
		ID:       nextID(users, func(u models.User) int { return u.ID }),
		Username: data.Username,
		Email:    data.Email,
	}
	users = append(users, user)
	if err := storage.SaveData(a.store, storage.KeyUsers, users); err != nil {
		return nil, err
	}

	return &models.Session{Token: a.newToken(), User: user}, nil
}

func (a *API) newToken() string {
	return fmt.Sprintf("mock-jwt-token-%d", a.now().UnixMilli())
}
