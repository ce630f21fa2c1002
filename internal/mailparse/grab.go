package mailparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Grab receipts cover rides (GrabCar/GrabBike) and food delivery (GrabFood).
// The total sits next to a currency marker, the restaurant or pickup point
// follows "Đặt từ"/"from", and the date uses either a short day-month-name
// form ("08 Nov 25") or DD/MM/YYYY. Emails for orders that are merely
// scheduled are receipts for nothing yet and must never become expenses.
var (
	grabTotalRe  = regexp.MustCompile(`(?i)(?:tổng cộng|tong cong|total)\s*:?\s*(?:₫|đ)?\s*([0-9][0-9.,]*)`)
	grabAmountRe = regexp.MustCompile(`(?i)(?:₫|đ)\s*([0-9][0-9.,]*)|([0-9][0-9.,]*)\s*(?:vnd|₫|đ)`)

	grabMerchantRe = regexp.MustCompile(`(?i)(?:đặt từ|dat tu|from)\s*:?\s+([^\r\n]+)`)

	grabDateNameRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+(\d{2,4})\b`)
	grabDateNumRe  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
)

// pendingMarkers flag orders that are scheduled but not completed.
var pendingMarkers = []string{"pending", "scheduled", "for later", "đặt trước", "hẹn giờ"}

func parseGrab(subject, body string) *Transaction {
	haystack := strings.ToLower(subject + " " + body)
	for _, marker := range pendingMarkers {
		if strings.Contains(haystack, marker) {
			return nil
		}
	}

	amount, ok := grabAmount(body)
	if !ok {
		return nil
	}

	mm := grabMerchantRe.FindStringSubmatch(body)
	if mm == nil {
		return nil
	}
	merchant := cleanMerchant(mm[1])
	if merchant == "" {
		return nil
	}

	date, ok := grabTimestamp(body)
	if !ok {
		return nil
	}

	txType := grabType(haystack)
	return &Transaction{
		Amount:   amount,
		Currency: "VND",
		Merchant: merchant,
		Date:     date,
		Type:     txType,
		Category: MapToCategory(txType, merchant),
		Source:   SourceGrab,
	}
}

// grabAmount prefers the anchored order total and falls back to the first
// number adjacent to a currency marker.
func grabAmount(body string) (int64, bool) {
	if m := grabTotalRe.FindStringSubmatch(body); m != nil {
		if amount, ok := parseAmount(m[1]); ok {
			return amount, true
		}
	}
	if m := grabAmountRe.FindStringSubmatch(body); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		return parseAmount(raw)
	}
	return 0, false
}

func grabTimestamp(body string) (time.Time, bool) {
	hour, minute, ok := timeOfDay(body)
	if !ok {
		return time.Time{}, false
	}

	if d := grabDateNameRe.FindStringSubmatch(body); d != nil {
		day, _ := strconv.Atoi(d[1])
		month := monthsByName[strings.ToLower(d[2])]
		year, _ := strconv.Atoi(d[3])
		return buildDate(year, int(month), day, hour, minute)
	}
	if d := grabDateNumRe.FindStringSubmatch(body); d != nil {
		day, _ := strconv.Atoi(d[1])
		month, _ := strconv.Atoi(d[2])
		year, _ := strconv.Atoi(d[3])
		return buildDate(year, month, day, hour, minute)
	}
	return time.Time{}, false
}

// grabType distinguishes the service sub-kind from subject/body substrings.
// The label feeds categorization: food-flavored subtypes must be named so
// they classify as Food rather than falling through to generic Grab
// transport.
func grabType(haystack string) string {
	switch {
	case strings.Contains(haystack, "grabfood"):
		return "GrabFood"
	case strings.Contains(haystack, "grabmart"):
		return "GrabMart"
	case strings.Contains(haystack, "grabexpress"):
		return "GrabExpress"
	case strings.Contains(haystack, "grabbike"):
		return "GrabBike"
	case strings.Contains(haystack, "grabcar"):
		return "GrabCar"
	default:
		return "Grab"
	}
}
