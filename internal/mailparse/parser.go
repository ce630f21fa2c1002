// Package mailparse extracts expense transactions from trusted bank and
// ride-hailing notification emails. Each supported sender has a template: a
// set of anchor phrases and patterns that locate the amount, merchant, and
// timestamp in the free-text body. Parsing never fails with an error; an
// email that does not look like a completed transaction simply yields nil.
package mailparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Source identifiers stamped on parsed transactions.
const (
	SourceVIB  = "vib_email"
	SourceGrab = "grab_email"
)

// Transaction is the structured result of parsing one transaction email.
// It is only ever constructed with all of amount, merchant, and date set.
type Transaction struct {
	Amount   int64
	Currency string
	Merchant string
	Date     time.Time
	Type     string
	Category Category
	Source   string
}

type parseFunc func(subject, body string) *Transaction

// templates is the closed registry of supported sender templates. Adding a
// bank means adding one entry here plus its extraction rules.
var templates = map[string]parseFunc{
	"VIB":  parseVIB,
	"Grab": parseGrab,
}

// Parse extracts a transaction from a trusted email using the named template.
// It returns nil when the template is unknown, the email is not a completed
// transaction (e.g. a pending Grab order), or any required field cannot be
// located. It never panics on malformed input.
func Parse(templateID, subject, body string) *Transaction {
	fn, ok := templates[templateID]
	if !ok {
		return nil
	}
	return fn(subject, body)
}

// TemplateIDs returns the registered template identifiers.
func TemplateIDs() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	return ids
}

// parseAmount converts a matched numeric token such as "120,000" or
// "1.250.000" into a whole-VND value. Commas and periods are grouping
// separators in the supported templates, never decimal points.
func parseAmount(raw string) (int64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || r == '.' {
			return -1
		}
		return r
	}, raw)
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// cleanMerchant trims surrounding whitespace and trailing punctuation from a
// merchant capture.
func cleanMerchant(raw string) string {
	m := strings.TrimSpace(raw)
	m = strings.TrimRight(m, ".,;:!-")
	return strings.TrimSpace(m)
}

var monthsByName = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var timeOfDayRe = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)

// timeOfDay finds the first HH:MM token in the body.
func timeOfDay(body string) (hour, minute int, ok bool) {
	m := timeOfDayRe.FindStringSubmatch(body)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// buildDate combines validated date and time components into a timestamp.
// Two-digit years are resolved into the 2000s, matching the short layouts
// the supported senders use.
func buildDate(year, month, day, hour, minute int) (time.Time, bool) {
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local), true
}
