package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fitledger/internal/crypto"
	apperrors "fitledger/internal/errors"
	"fitledger/internal/models"
)

// mailSettingsService stores the IMAP account used for transaction email
// sync. The mailbox password is encrypted at rest.
type mailSettingsService struct {
	db     *gorm.DB
	cipher *crypto.Cipher
}

// NewMailSettingsService creates a new MailSettingsServicer.
func NewMailSettingsService(db *gorm.DB, cipher *crypto.Cipher) MailSettingsServicer {
	return &mailSettingsService{db: db, cipher: cipher}
}

// Save creates or replaces the mail settings row, encrypting the password.
func (s *mailSettingsService) Save(address, password, imapHost string, imapPort int) (*models.MailSettings, error) {
	encrypted, err := s.cipher.Encrypt(password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	settings := &models.MailSettings{
		Address:           address,
		EncryptedPassword: encrypted,
		IMAPHost:          imapHost,
		IMAPPort:          imapPort,
	}

	// Single-account setup, so saving replaces whatever was there.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.MailSettings{}).Error; err != nil {
			return err
		}
		return tx.Create(settings).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settings, nil
}

// Get returns the stored mail settings.
func (s *mailSettingsService) Get() (*models.MailSettings, error) {
	var settings models.MailSettings
	if err := s.db.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMailSettingsNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// GetWithPassword returns the settings along with the decrypted mailbox
// password.
func (s *mailSettingsService) GetWithPassword() (*models.MailSettings, string, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, "", err
	}

	password, err := s.cipher.Decrypt(settings.EncryptedPassword)
	if err != nil {
		var decErr *crypto.DecryptionError
		if errors.As(err, &decErr) {
			return nil, "", apperrors.Wrap(apperrors.ErrDecryptionFailed, err)
		}
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settings, password, nil
}

// MarkSynced records the time of the last successful sync.
func (s *mailSettingsService) MarkSynced(t time.Time) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if err := s.db.Model(settings).Update("last_synced_at", t).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Delete removes the stored mail settings.
func (s *mailSettingsService) Delete() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if err := s.db.Unscoped().Delete(settings).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
