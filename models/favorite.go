package models

import "time"

// Favorite is a user's bookmark of a perfume. The composite unique
// index makes adding idempotent at the storage layer.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_perfume" json:"user_id"`
	PerfumeID uint      `gorm:"uniqueIndex:idx_user_perfume" json:"perfume_id"`
	Perfume   Perfume   `json:"perfume"`
	CreatedAt time.Time `json:"created_at"`
}
