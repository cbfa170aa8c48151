package conversation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical date format stored in trip data.
const DateLayout = "2006-01-02"

const monthPattern = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

// Date token shapes shared by the extractor rules.
const (
	numericDatePattern = `(?:\d{4}-\d{1,2}-\d{1,2}|\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`
	namedDatePattern   = `(?:\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthPattern + `\b(?:,?\s+\d{4})?|` + monthPattern + `\s+\d{1,2}(?:st|nd|rd|th)?\b(?:,?\s+\d{4})?)`
	anyDatePattern     = `(?:` + numericDatePattern + `|` + namedDatePattern + `)`
)

var (
	isoDateRe     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	numericDateRe = regexp.MustCompile(`^(\d{1,2})[-/.](\d{1,2})[-/.](\d{2}|\d{4})$`)
	ordinalRe     = regexp.MustCompile(`(\d)(?:st|nd|rd|th)\b`)
	spacesRe      = regexp.MustCompile(`\s+`)
	septRe        = regexp.MustCompile(`\bsept\b`)
)

var namedLayouts = []string{
	"2 January 2006", "2 Jan 2006", "January 2 2006", "Jan 2 2006",
}

var namedLayoutsNoYear = []string{
	"2 January", "2 Jan", "January 2", "Jan 2",
}

// NormalizeDate converts free date text to YYYY-MM-DD. Numeric dates are read
// day first. A date without a year resolves to its next occurrence on or after
// now. The second result is false when the text could not be parsed.
func NormalizeDate(raw string, now time.Time) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		return buildDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := numericDateRe.FindStringSubmatch(s); m != nil {
		year := atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		return buildDate(year, atoi(m[2]), atoi(m[1]))
	}

	s = ordinalRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, " of ", " ")
	s = strings.TrimPrefix(s, "the ")
	s = septRe.ReplaceAllString(s, "sep")
	s = spacesRe.ReplaceAllString(strings.TrimSpace(s), " ")

	for _, layout := range namedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), true
		}
	}
	for _, layout := range namedLayoutsNoYear {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		d := time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(today) {
			d = d.AddDate(1, 0, 0)
		}
		return d.Format(DateLayout), true
	}
	return "", false
}

// normalizeOrRaw returns the canonical date, or the trimmed input when it cannot be parsed.
func normalizeOrRaw(raw string, now time.Time) string {
	if d, ok := NormalizeDate(raw, now); ok {
		return d
	}
	return strings.TrimSpace(raw)
}

// AddDays returns date plus n days. The date must be canonical.
func AddDays(date string, n int) (string, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", false
	}
	return t.AddDate(0, 0, n).Format(DateLayout), true
}

// DaysBetween returns the number of days from start to end.
func DaysBetween(start, end string) (int, bool) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0, false
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0, false
	}
	return int(e.Sub(s).Hours() / 24), true
}

func buildDate(year, month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return "", false
	}
	return t.Format(DateLayout), true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
