package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"fitledger/internal/crypto"
	"fitledger/internal/models"
	"fitledger/internal/testutil"
)

func newTestCipher(t *testing.T) *crypto.Cipher {
	t.Helper()
	c, err := crypto.New("test-passphrase")
	if err != nil {
		t.Fatalf("failed to create cipher: %v", err)
	}
	return c
}

func newMailSettingsService(t *testing.T, db *gorm.DB) MailSettingsServicer {
	t.Helper()
	return NewMailSettingsService(db, newTestCipher(t))
}

func TestSaveMailSettings(t *testing.T) {
	t.Run("encrypts_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newMailSettingsService(t, db)

		settings, err := svc.Save("me@example.com", "app-password", "imap.example.com", 993)
		testutil.AssertNoError(t, err)

		if settings.EncryptedPassword == "app-password" {
			t.Fatal("password should not be stored in plaintext")
		}
		if settings.EncryptedPassword == "" {
			t.Fatal("expected encrypted password to be stored")
		}
	})

	t.Run("replaces_previous_settings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newMailSettingsService(t, db)

		_, err := svc.Save("old@example.com", "old-pass", "imap.old.com", 993)
		testutil.AssertNoError(t, err)
		_, err = svc.Save("new@example.com", "new-pass", "imap.new.com", 993)
		testutil.AssertNoError(t, err)

		var count int64
		if err := db.Model(&models.MailSettings{}).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected a single settings row, got %d", count)
		}

		settings, err := svc.Get()
		testutil.AssertNoError(t, err)
		if settings.Address != "new@example.com" {
			t.Errorf("expected new address, got %s", settings.Address)
		}
	})
}

func TestGetMailSettings(t *testing.T) {
	t.Run("not_configured", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newMailSettingsService(t, db)

		_, err := svc.Get()
		testutil.AssertAppError(t, err, "MAIL_SETTINGS_NOT_FOUND")
	})
}

func TestGetWithPassword(t *testing.T) {
	t.Run("round_trips", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newMailSettingsService(t, db)

		_, err := svc.Save("me@example.com", "app-password", "imap.example.com", 993)
		testutil.AssertNoError(t, err)

		settings, password, err := svc.GetWithPassword()
		testutil.AssertNoError(t, err)
		if password != "app-password" {
			t.Errorf("expected decrypted password, got %q", password)
		}
		if settings.IMAPHost != "imap.example.com" {
			t.Errorf("expected imap host, got %s", settings.IMAPHost)
		}
	})

	t.Run("corrupt_ciphertext", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newMailSettingsService(t, db)

		_, err := svc.Save("me@example.com", "app-password", "imap.example.com", 993)
		testutil.AssertNoError(t, err)
		if err := db.Model(&models.MailSettings{}).Where("1 = 1").Update("encrypted_password", "not-a-valid-blob").Error; err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		_, _, err = svc.GetWithPassword()
		testutil.AssertAppError(t, err, "DECRYPTION_FAILED")
	})
}

func TestMarkSynced(t *testing.T) {
	t.Run("records_time", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newMailSettingsService(t, db)

		_, err := svc.Save("me@example.com", "app-password", "imap.example.com", 993)
		testutil.AssertNoError(t, err)

		now := time.Now()
		testutil.AssertNoError(t, svc.MarkSynced(now))

		settings, err := svc.Get()
		testutil.AssertNoError(t, err)
		if settings.LastSyncedAt == nil {
			t.Fatal("expected last synced time to be set")
		}
	})
}

func TestDeleteMailSettings(t *testing.T) {
	t.Run("deleted_is_gone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newMailSettingsService(t, db)

		_, err := svc.Save("me@example.com", "app-password", "imap.example.com", 993)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.Delete())

		_, err = svc.Get()
		testutil.AssertAppError(t, err, "MAIL_SETTINGS_NOT_FOUND")
	})
}
