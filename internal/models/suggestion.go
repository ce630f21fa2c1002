package models

import "time"

// Suggestion caches one piece of AI-generated advice per kind so repeated
// reads within the TTL don't re-hit the completion API.
type Suggestion struct {
	Base
	Kind      string    `gorm:"not null;index" json:"kind"`
	Content   string    `gorm:"not null" json:"content"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
