package models

import "time"

// MailSettings stores the IMAP account used for transaction email import.
// The app-password is encrypted at rest (internal/crypto) and is never
// serialized into API responses. Saving a new password replaces the stored
// string wholesale: fresh IV, fresh ciphertext.
type MailSettings struct {
	Base
	Address           string     `gorm:"not null" json:"address"`
	EncryptedPassword string     `gorm:"not null" json:"-"`
	IMAPHost          string     `gorm:"not null" json:"imap_host"`
	IMAPPort          int        `gorm:"not null;default:993" json:"imap_port"`
	LastSyncedAt      *time.Time `json:"last_synced_at,omitempty"`
}
