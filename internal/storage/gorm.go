package storage

import (
	"errors"
	"time"

	"github.com/yukikurage/hackathon-hub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBackend stores items as rows of the kv_entries table.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend creates a GormBackend. The kv_entries table must already be migrated.
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) GetItem(key string) (string, bool, error) {
	var entry models.KVEntry
	if err := b.db.Where("item_key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (b *GormBackend) SetItem(key, value string) error {
	entry := models.KVEntry{
		ItemKey:   key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (b *GormBackend) RemoveItem(key string) error {
	return b.db.Where("item_key = ?", key).Delete(&models.KVEntry{}).Error
}
