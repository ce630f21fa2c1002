package mailfetch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
)

// IMAPFetcher reads messages from an IMAP mailbox over TLS.
type IMAPFetcher struct{}

// NewIMAPFetcher creates a new IMAPFetcher.
func NewIMAPFetcher() *IMAPFetcher {
	return &IMAPFetcher{}
}

// Fetch connects, selects INBOX read-only, and collects envelope plus text
// body for every message matching the sender filters.
func (f *IMAPFetcher) Fetch(ctx context.Context, creds Credentials, since time.Time, senders []string) ([]Message, error) {
	c, err := client.DialTLS(fmt.Sprintf("%s:%d", creds.Host, creds.Port), nil)
	if err != nil {
		return nil, fmt.Errorf("dial imap: %w", err)
	}
	defer c.Logout()

	if err := c.Login(creds.Address, creds.Password); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}

	if _, err := c.Select("INBOX", true); err != nil {
		return nil, fmt.Errorf("select inbox: %w", err)
	}

	var out []Message
	for _, sender := range senders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		msgs, err := f.fetchFrom(c, sender, since)
		if err != nil {
			return nil, err
		}
		out = append(out, msgs...)
	}
	return out, nil
}

func (f *IMAPFetcher) fetchFrom(c *client.Client, sender string, since time.Time) ([]Message, error) {
	criteria := imap.NewSearchCriteria()
	criteria.Header.Add("From", sender)
	if !since.IsZero() {
		criteria.Since = since
	}

	ids, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", sender, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	// Peek keeps the messages unread in the mailbox.
	section := &imap.BodySectionName{
		BodyPartName: imap.BodyPartName{Specifier: imap.TextSpecifier},
		Peek:         true,
	}
	items := []imap.FetchItem{imap.FetchEnvelope, imap.FetchUid, section.FetchItem()}

	messages := make(chan *imap.Message, 16)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, messages)
	}()

	var out []Message
	for msg := range messages {
		m := Message{UID: msg.Uid}
		if msg.Envelope != nil {
			m.Subject = msg.Envelope.Subject
			m.Date = msg.Envelope.Date
			if len(msg.Envelope.From) > 0 {
				m.From = msg.Envelope.From[0].Address()
			}
		}
		if r := msg.GetBody(section); r != nil {
			body, err := io.ReadAll(r)
			if err != nil {
				return nil, fmt.Errorf("read body uid %d: %w", msg.Uid, err)
			}
			m.Body = string(body)
		}
		out = append(out, m)
	}
	if err := <-done; err != nil {
		return nil, fmt.Errorf("fetch %s: %w", sender, err)
	}
	return out, nil
}
