package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CategoryLimits maps a category name to its spending limit. The key set is
// open-ended; the store enforces no category enum. Stored as a single JSON
// document so replacement of the whole mapping is one atomic write.
type CategoryLimits map[string]float64

// Value implements driver.Valuer, serializing the mapping to JSON.
func (l CategoryLimits) Value() (driver.Value, error) {
	if l == nil {
		l = CategoryLimits{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner, deserializing the mapping from JSON.
func (l *CategoryLimits) Scan(value interface{}) error {
	if value == nil {
		*l = CategoryLimits{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for category limits: %T", value)
	}
}

// Budget holds the per-category spending limits for a user. The unique
// index on UserID enforces at most one budget row per user.
type Budget struct {
	Base
	UserID         string         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CategoryLimits CategoryLimits `gorm:"type:jsonb;not null" json:"category_limits"`
}
