package mockapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jo-carlos-borges/pantry-tracker/models"
	"github.com/jo-carlos-borges/pantry-tracker/storage"
)

// --- Helpers ---

var testClock = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

// newTestAPI returns an API with zero latency, a pinned clock and a
// seeded in-memory store.
func newTestAPI(t *testing.T) (*API, *storage.MemoryStore) {
	t.Helper()
	s := storage.NewMemoryStore()
	require.NoError(t, storage.Seed(s, testClock))
	return New(s, WithoutLatency(), WithClock(func() time.Time { return testClock })), s
}

// newEmptyAPI returns an API over an unseeded store.
func newEmptyAPI() (*API, *storage.MemoryStore) {
	s := storage.NewMemoryStore()
	return New(s, WithoutLatency(), WithClock(func() time.Time { return testClock })), s
}

// --- Tests ---

func TestLogin(t *testing.T) {
	testCases := []struct {
		name        string
		creds       models.LoginCredentials
		expectedErr error
	}{
		{
			name:  "Demo user with any password",
			creds: models.LoginCredentials{Email: storage.DemoEmail, Password: "anything"},
		},
		{
			name:        "Missing email",
			creds:       models.LoginCredentials{Password: "secret"},
			expectedErr: models.ErrMissingCredentials,
		},
		{
			name:        "Missing password",
			creds:       models.LoginCredentials{Email: storage.DemoEmail},
			expectedErr: models.ErrMissingCredentials,
		},
		{
			name:        "Unknown email",
			creds:       models.LoginCredentials{Email: "x@x.com", Password: "y"},
			expectedErr: models.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			api, _ := newTestAPI(t)

			// Act
			session, err := api.Login(tc.creds)

			// Assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, session)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, session.Token)
			assert.Equal(t, storage.DemoEmail, session.User.Email)
			assert.Equal(t, "demo", session.User.Username)
		})
	}
}

func TestLoginNonDemoUserIsRejected(t *testing.T) {
	api, s := newTestAPI(t)
	_, err := api.Register(models.RegisterData{Username: "ana", Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)

	session, err := api.Login(models.LoginCredentials{Email: "ana@example.com", Password: "pw"})

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Nil(t, session)

	// The registered user still exists; login just cannot verify the
	// password of anything but the demo account.
	users, err := storage.GetData[models.User](s, storage.KeyUsers)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestRegister(t *testing.T) {
	testCases := []struct {
		name        string
		data        models.RegisterData
		expectedErr error
	}{
		{
			name: "Success",
			data: models.RegisterData{Username: "ana", Email: "ana@example.com", Password: "pw"},
		},
		{
			name:        "Missing username",
			data:        models.RegisterData{Email: "ana@example.com", Password: "pw"},
			expectedErr: models.ErrMissingFields,
		},
		{
			name:        "Missing email",
			data:        models.RegisterData{Username: "ana", Password: "pw"},
			expectedErr: models.ErrMissingFields,
		},
		{
			name:        "Missing password",
			data:        models.RegisterData{Username: "ana", Email: "ana@example.com"},
			expectedErr: models.ErrMissingFields,
		},
		{
			name:        "Duplicate email",
			data:        models.RegisterData{Username: "other", Email: storage.DemoEmail, Password: "pw"},
			expectedErr: models.ErrEmailTaken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			api, _ := newTestAPI(t)

			// Act
			session, err := api.Register(tc.data)

			// Assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, session)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, session.Token)
			assert.Equal(t, tc.data.Username, session.User.Username)
			assert.Equal(t, tc.data.Email, session.User.Email)
			assert.Equal(t, 2, session.User.ID, "id follows the seeded demo user")
		})
	}
}

func TestRegisterDuplicateLeavesCollectionUnchanged(t *testing.T) {
	api, s := newTestAPI(t)
	_, err := api.Register(models.RegisterData{Username: "ana", Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = api.Register(models.RegisterData{Username: "ana2", Email: "ana@example.com", Password: "pw"})

	assert.ErrorIs(t, err, models.ErrEmailTaken)
	users, err := storage.GetData[models.User](s, storage.KeyUsers)
	require.NoError(t, err)
	assert.Len(t, users, 2, "a rejected registration must not grow the collection")
}

func TestTokenDerivedFromClock(t *testing.T) {
	api, _ := newTestAPI(t)

	session, err := api.Login(models.LoginCredentials{Email: storage.DemoEmail, Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "mock-jwt-token-1787918400000", session.Token)
}
