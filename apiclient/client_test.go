package apiclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jo-carlos-borges/pantry-tracker/storage"
)

func TestBearerTokenAttachment(t *testing.T) {
	testCases := []struct {
		name           string
		storedToken    string
		expectedHeader string
	}{
		{
			name:           "Token present",
			storedToken:    "mock-jwt-token-1",
			expectedHeader: "Bearer mock-jwt-token-1",
		},
		{
			name:           "No token stored",
			storedToken:    "",
			expectedHeader: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var gotHeader string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("Authorization")
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			session := storage.NewMemoryStore()
			if tc.storedToken != "" {
				require.NoError(t, session.Save(storage.KeyAuthToken, []byte(tc.storedToken)))
			}
			client := New(server.URL, session)

			// Act
			err := client.Get("/items", nil)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedHeader, gotHeader)
		})
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	session := storage.NewMemoryStore()
	require.NoError(t, session.Save(storage.KeyAuthToken, []byte("stale")))
	require.NoError(t, session.Save(storage.KeyAuthUser, []byte(`{"id":1}`)))

	redirected := false
	client := New(server.URL, session, WithUnauthorizedHandler(func() { redirected = true }))

	err := client.Get("/items", nil)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, redirected, "the navigation seam fires after the session is cleared")
	_, found, loadErr := session.Load(storage.KeyAuthToken)
	require.NoError(t, loadErr)
	assert.False(t, found)
	_, found, loadErr = session.Load(storage.KeyAuthUser)
	require.NoError(t, loadErr)
	assert.False(t, found)
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := New(server.URL, storage.NewMemoryStore())

	err := client.Get("/items", nil)

	assert.ErrorIs(t, err, ErrNoResponse)
}

func TestErrorBodyMessageUnwrapping(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		expectedErr string
	}{
		{
			name:        "Message field present",
			status:      http.StatusConflict,
			body:        `{"message":"user with this email already exists"}`,
			expectedErr: "user with this email already exists",
		},
		{
			name:        "No message field",
			status:      http.StatusInternalServerError,
			body:        `{}`,
			expectedErr: "request failed with status 500",
		},
		{
			name:        "Unparseable body",
			status:      http.StatusBadGateway,
			body:        `<html>`,
			expectedErr: "request failed with status 502",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()
			client := New(server.URL, storage.NewMemoryStore())

			// Act
			err := client.Get("/items", nil)

			// Assert
			require.Error(t, err)
			assert.Equal(t, tc.expectedErr, err.Error())
		})
	}
}

func TestSuccessfulRequestDecodesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id":3,"name":"Rice"}`))
	}))
	defer server.Close()
	client := New(server.URL, storage.NewMemoryStore())

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	err := client.Post("/items", map[string]string{"name": "Rice"}, &out)

	require.NoError(t, err)
	assert.Equal(t, 3, out.ID)
	assert.Equal(t, "Rice", out.Name)
}
