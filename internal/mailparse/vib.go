package mailparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// VIB card alert emails are bilingual (Vietnamese/English). Typical body:
//
//	Giá trị: 120,000 VND
//	Vào lúc: 14:30 08/11/2025
//	Tại Circle K Nguyen Hue
//
// The date appears either as DD/MM/YYYY or as a short day-month-name form
// with a two-digit year ("17 Nov 25").
var (
	vibAmountRe = regexp.MustCompile(`(?i)(?:giá trị|gia tri|số tiền|so tien|amount)\s*:?\s*([0-9][0-9.,]*)\s*(?:vnd|vnđ|đ)`)

	vibMerchantRe = regexp.MustCompile(`(?i)\b(?:tại|tai|at)\b\s*:?\s*([^\r\n]+)`)

	vibDateNumRe  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	vibDateNameRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+(\d{2})\b`)
)

func parseVIB(subject, body string) *Transaction {
	am := vibAmountRe.FindStringSubmatch(body)
	if am == nil {
		return nil
	}
	amount, ok := parseAmount(am[1])
	if !ok {
		return nil
	}

	mm := vibMerchantRe.FindStringSubmatch(body)
	if mm == nil {
		return nil
	}
	merchant := cleanMerchant(mm[1])
	if merchant == "" {
		return nil
	}

	date, ok := vibTimestamp(body)
	if !ok {
		return nil
	}

	txType := vibType(subject, body)
	return &Transaction{
		Amount:   amount,
		Currency: "VND",
		Merchant: merchant,
		Date:     date,
		Type:     txType,
		Category: MapToCategory(txType, merchant),
		Source:   SourceVIB,
	}
}

// vibTimestamp combines the first HH:MM token with whichever date layout
// matches first. Both must be present for a valid transaction time.
func vibTimestamp(body string) (time.Time, bool) {
	hour, minute, ok := timeOfDay(body)
	if !ok {
		return time.Time{}, false
	}

	if d := vibDateNumRe.FindStringSubmatch(body); d != nil {
		day, _ := strconv.Atoi(d[1])
		month, _ := strconv.Atoi(d[2])
		year, _ := strconv.Atoi(d[3])
		return buildDate(year, month, day, hour, minute)
	}
	if d := vibDateNameRe.FindStringSubmatch(body); d != nil {
		day, _ := strconv.Atoi(d[1])
		month := monthsByName[strings.ToLower(d[2])]
		year, _ := strconv.Atoi(d[3])
		return buildDate(year, int(month), day, hour, minute)
	}
	return time.Time{}, false
}

func vibType(subject, body string) string {
	haystack := strings.ToLower(subject + " " + body)
	switch {
	case strings.Contains(haystack, "atm"):
		return "ATM Withdrawal"
	case strings.Contains(haystack, "chuyển khoản") || strings.Contains(haystack, "transfer"):
		return "Transfer"
	default:
		return "Card Payment"
	}
}
