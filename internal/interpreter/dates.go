package interpreter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthAlt matches English month names and their usual abbreviations.
const monthAlt = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|` +
	`jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

// dateTokenRe finds date-like substrings in one of the accepted
// shapes: YYYY-MM-DD, DD-Mon[-YYYY], DDth Mon, Mon-DD[-YYYY] and
// Mon DD, YYYY. Separators may be dashes, slashes or spaces.
var dateTokenRe = regexp.MustCompile(`(?i)\b(?:` +
	`\d{4}[-/]\d{1,2}[-/]\d{1,2}` +
	`|\d{1,2}(?:st|nd|rd|th)?[-/ ](?:of )?(?:` + monthAlt + `)(?:[-/, ]+\d{4})?` +
	`|(?:` + monthAlt + `)[-/ ]\d{1,2}(?:st|nd|rd|th)?(?:[-/, ]+\d{4})?` +
	`)\b`)

var (
	ordinalRe = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)\b`)
	sepRe     = regexp.MustCompile(`[-/,]+`)
)

var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// ExtractDates scans text for date-like substrings in the order they
// appear. No match returns ok=false. A single match is treated as a
// one-day leave, so it becomes both start and end. With two or more
// matches the first two are start and end; extras are ignored and the
// pair is not validated against start <= end. Fragments that look
// date-like but do not resolve to a real calendar date are silently
// dropped.
func (i *Interpreter) ExtractDates(text string) (from, to time.Time, ok bool) {
	year := i.now().Year()
	var found []time.Time
	for _, fragment := range dateTokenRe.FindAllString(text, -1) {
		if d, parsed := parseFragment(fragment, year); parsed {
			found = append(found, d)
			if len(found) == 2 {
				break
			}
		}
	}
	switch len(found) {
	case 0:
		return time.Time{}, time.Time{}, false
	case 1:
		return found[0], found[0], true
	default:
		return found[0], found[1], true
	}
}

// parseFragment resolves one matched fragment to a calendar date,
// substituting currentYear when the fragment carries no year.
func parseFragment(fragment string, currentYear int) (time.Time, bool) {
	s := strings.ToLower(strings.TrimSpace(fragment))
	s = ordinalRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, " of ", " ")
	s = sepRe.ReplaceAllString(s, " ")
	fields := strings.Fields(s)
	if len(fields) < 2 || len(fields) > 3 {
		return time.Time{}, false
	}

	// All-numeric fragments are year month day.
	if isNumeric(fields[0]) && len(fields[0]) == 4 {
		if len(fields) != 3 || !isNumeric(fields[1]) || !isNumeric(fields[2]) {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(fields[0])
		monthNum, _ := strconv.Atoi(fields[1])
		day, _ := strconv.Atoi(fields[2])
		if monthNum < 1 || monthNum > 12 {
			return time.Time{}, false
		}
		return makeDate(year, time.Month(monthNum), day)
	}

	// Otherwise one field is a month name, one a day, optionally a year.
	year := currentYear
	day := 0
	var month time.Month
	for _, field := range fields {
		switch {
		case isNumeric(field) && len(field) == 4:
			year, _ = strconv.Atoi(field)
		case isNumeric(field):
			day, _ = strconv.Atoi(field)
		default:
			m, known := monthsByName[field]
			if !known {
				return time.Time{}, false
			}
			month = m
		}
	}
	if month == 0 || day == 0 {
		return time.Time{}, false
	}
	return makeDate(year, month, day)
}

func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 becomes Mar 2); reject it.
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
