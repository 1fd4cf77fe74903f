package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is the single-table schema of the database-backed store: one row
// per collection key, the whole JSON array in the data column.
type Blob struct {
	Key  string `gorm:"primaryKey;column:key"`
	Data []byte `gorm:"column:data"`
}

func (Blob) TableName() string {
	return "blobs"
}

// GormStore persists blobs through a gorm-managed table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the blobs table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Load(key string) ([]byte, bool, error) {
	var blob Blob
	err := g.db.First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return blob.Data, true, nil
}

func (g *GormStore) Save(key string, data []byte) error {
	blob := Blob{Key: key, Data: data}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&blob).Error
}

func (g *GormStore) Delete(key string) error {
	return g.db.Delete(&Blob{}, "key = ?", key).Error
}
