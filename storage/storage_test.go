package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jo-carlos-borges/pantry-tracker/models"
)

func TestGetSaveDataRoundTrip(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"file": func(t *testing.T) Store {
			fs, err := NewFileStore(t.TempDir())
			require.NoError(t, err)
			return fs
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			testCases := []struct {
				name string
				data []models.Category
			}{
				{
					name: "Collection with records",
					data: []models.Category{
						{ID: 1, Name: "Dairy"},
						{ID: 2, Name: "Fruits"},
					},
				},
				{
					name: "Empty collection",
					data: []models.Category{},
				},
			}

			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					s := newStore(t)

					err := SaveData(s, KeyCategories, tc.data)
					require.NoError(t, err)

					got, err := GetData[models.Category](s, KeyCategories)
					require.NoError(t, err)
					assert.Equal(t, tc.data, got)
				})
			}
		})
	}
}

func TestGetDataAbsentKey(t *testing.T) {
	s := NewMemoryStore()

	got, err := GetData[models.Item](s, KeyItems)

	assert.NoError(t, err)
	assert.Equal(t, []models.Item{}, got)
}

func TestGetDataUnparseableBlob(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save(KeyItems, []byte("{not json")))

	got, err := GetData[models.Item](s, KeyItems)

	assert.NoError(t, err, "corrupt content should degrade to an empty collection, not an error")
	assert.Equal(t, []models.Item{}, got)
}

func TestSaveDataOverwritesWholeCollection(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, SaveData(s, KeyCategories, []models.Category{
		{ID: 1, Name: "Dairy"},
		{ID: 2, Name: "Fruits"},
	}))

	require.NoError(t, SaveData(s, KeyCategories, []models.Category{
		{ID: 3, Name: "Grains"},
	}))

	got, err := GetData[models.Category](s, KeyCategories)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{ID: 3, Name: "Grains"}}, got)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, SaveData(first, KeyCategories, []models.Category{{ID: 1, Name: "Dairy"}}))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	got, err := GetData[models.Category](second, KeyCategories)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{ID: 1, Name: "Dairy"}}, got)
}

func TestDeleteRemovesKey(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"file": func(t *testing.T) Store {
			fs, err := NewFileStore(t.TempDir())
			require.NoError(t, err)
			return fs
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			require.NoError(t, s.Save(KeyAuthToken, []byte("token")))

			require.NoError(t, s.Delete(KeyAuthToken))

			_, ok, err := s.Load(KeyAuthToken)
			assert.NoError(t, err)
			assert.False(t, ok)

			// Deleting an absent key is not an error.
			assert.NoError(t, s.Delete(KeyAuthToken))
		})
	}
}
