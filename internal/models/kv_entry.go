package models

import "time"

// KVEntry is one row of the SQL-backed key-value store. Value has no size so
// MySQL maps it to longtext; a collection with data-URL banners exceeds text.
type KVEntry struct {
	ItemKey   string    `gorm:"primarykey;type:varchar(255)" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
