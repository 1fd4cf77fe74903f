// Package storage provides the durable key-value blob store backing the
// mock API and the session state. Collections are persisted as whole
// JSON arrays under fixed keys; the port is narrow so backends can be
// swapped (in-memory for tests, files or Postgres for a real profile).
package storage

import "encoding/json"

// Fixed keys of the four entity collections.
const (
	KeyUsers      = "pantry_users"
	KeyItems      = "pantry_items"
	KeyCategories = "pantry_categories"
	KeyPrices     = "pantry_prices"
)

// Keys of the persisted session.
const (
	KeyAuthToken = "auth_token"
	KeyAuthUser  = "auth_user"
)

// Store is the persistence port. Save overwrites the full value under a
// key; Load reports ok=false when the key is absent.
type Store interface {
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// GetData loads the collection stored under key. An absent key or a
// blob that fails to parse yields an empty collection, never an error:
// business logic treats both the same way.
func GetData[T any](s Store, key string) ([]T, error) {
	raw, ok, err := s.Load(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return []T{}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// SaveData overwrites the collection stored under key. The write is
// atomic from the caller's perspective: readers never observe a
// partially written collection.
func SaveData[T any](s Store, key string, data []T) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.Save(key, raw)
}
