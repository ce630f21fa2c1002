package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "fitledger/internal/errors"
	"fitledger/internal/logger"
	"fitledger/internal/mailfetch"
	"fitledger/internal/mailparse"
)

// trustedSenders maps sender domains to the parsing template used for
// their mail. Mail from anyone else is never parsed.
var trustedSenders = map[string]string{
	"vib.com.vn": "VIB",
	"grab.com":   "Grab",
}

// syncLookback bounds how far back a sync searches when no previous
// sync time is recorded.
const syncLookback = 30 * 24 * time.Hour

// mailSyncService pulls transaction emails over IMAP and imports the
// ones that parse into expenses.
type mailSyncService struct {
	settings MailSettingsServicer
	expenses ExpenseServicer
	fetcher  mailfetch.Fetcher
}

// NewMailSyncService creates a new MailSyncServicer.
func NewMailSyncService(settings MailSettingsServicer, expenses ExpenseServicer, fetcher mailfetch.Fetcher) MailSyncServicer {
	return &mailSyncService{
		settings: settings,
		expenses: expenses,
		fetcher:  fetcher,
	}
}

// Sync fetches mail from the trusted senders since the last sync, parses
// each message, and imports new transactions as expenses.
func (s *mailSyncService) Sync(ctx context.Context) (*SyncResult, error) {
	log := logger.Get()

	settings, password, err := s.settings.GetWithPassword()
	if err != nil {
		return nil, err
	}

	since := time.Now().Add(-syncLookback)
	if settings.LastSyncedAt != nil {
		since = *settings.LastSyncedAt
	}

	creds := mailfetch.Credentials{
		Host:     settings.IMAPHost,
		Port:     settings.IMAPPort,
		Address:  settings.Address,
		Password: password,
	}
	senders := make([]string, 0, len(trustedSenders))
	for domain := range trustedSenders {
		senders = append(senders, domain)
	}

	messages, err := s.fetcher.Fetch(ctx, creds, since, senders)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrMailFetchFailed, err)
	}

	result := &SyncResult{Fetched: len(messages)}
	for _, msg := range messages {
		templateID := templateFor(msg.From)
		if templateID == "" {
			result.Skipped++
			continue
		}

		tx := mailparse.Parse(templateID, msg.Subject, msg.Body)
		if tx == nil {
			result.Skipped++
			continue
		}

		created, err := s.expenses.ImportIfNew(tx, dedupeKey(tx))
		if err != nil {
			return nil, err
		}
		if created {
			result.Imported++
		} else {
			result.Skipped++
		}
	}

	if err := s.settings.MarkSynced(time.Now()); err != nil {
		return nil, err
	}

	log.Infow("mail sync finished",
		"fetched", result.Fetched,
		"imported", result.Imported,
		"skipped", result.Skipped,
	)
	return result, nil
}

// templateFor matches a From header against the trusted sender domains.
func templateFor(from string) string {
	from = strings.ToLower(from)
	for domain, templateID := range trustedSenders {
		if strings.Contains(from, domain) {
			return templateID
		}
	}
	return ""
}

// dedupeKey builds a stable identity for a parsed transaction so that
// re-fetching the same email never creates a second expense.
func dedupeKey(tx *mailparse.Transaction) string {
	return fmt.Sprintf("%s|%s|%d", tx.Date.Format("2006-01-02"), tx.Merchant, tx.Amount)
}
