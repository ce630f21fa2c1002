// Package mailfetch retrieves raw messages from the user's mailbox for
// transaction import. The parser never talks to the network; this package is
// the only mail I/O boundary, kept behind an interface so sync logic can be
// tested with canned messages.
package mailfetch

import (
	"context"
	"time"
)

// Message is one raw mail message relevant to transaction import.
type Message struct {
	UID     uint32
	From    string
	Subject string
	Body    string
	Date    time.Time
}

// Credentials identify the IMAP account to read from. Password is the
// decrypted app-password; it lives only in memory during a sync pass.
type Credentials struct {
	Host     string
	Port     int
	Address  string
	Password string
}

// Fetcher retrieves messages sent by any of the given sender addresses since
// the given time. A zero since fetches the whole mailbox.
type Fetcher interface {
	Fetch(ctx context.Context, creds Credentials, since time.Time, senders []string) ([]Message, error)
}
