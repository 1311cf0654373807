package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

var (
	nextWeekdayRe = regexp.MustCompile(`next\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
	bareWeekdayRe = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	inWeeksRe     = regexp.MustCompile(`in\s+(\d+|one|two|three|four|five|six|seven|eight|nine|ten)\s+weeks?`)
	inDaysRe      = regexp.MustCompile(`in\s+(\d+|one|two|three|four|five|six|seven|eight|nine|ten)\s+days?`)
	monthDayRe    = regexp.MustCompile(`(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	dayMonthRe    = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)\b`)
	numericDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
)

// ResolveRelative scans text for a relative-date phrase and resolves it
// against baseTime. Recognized phrases, in match order:
//
//	"next <weekday>"    → next future occurrence of that weekday
//	"next week"         → +7 days
//	"in N weeks"        → +7N days (digits or spelled-out one..ten)
//	"in N days"         → +N days
//	"end of month"      → last calendar day of the current month
//	"end of semester"   → the fixed semester-end date this year
//
// The boolean reports whether anything matched. Text is matched
// case-insensitively.
func (p *Parser) ResolveRelative(text string, baseTime time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	if m := nextWeekdayRe.FindStringSubmatch(lower); m != nil {
		return p.NextWeekday(baseTime, weekdayNames[m[1]]), true
	}

	if strings.Contains(lower, "next week") {
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), true
	}

	if m := inWeeksRe.FindStringSubmatch(lower); m != nil {
		return p.startOfDay(baseTime.AddDate(0, 0, parseCount(m[1])*7)), true
	}

	if m := inDaysRe.FindStringSubmatch(lower); m != nil {
		return p.startOfDay(baseTime.AddDate(0, 0, parseCount(m[1]))), true
	}

	if strings.Contains(lower, "end of month") || strings.Contains(lower, "end of the month") {
		return p.EndOfMonth(baseTime), true
	}

	if strings.Contains(lower, "end of semester") || strings.Contains(lower, "end of the semester") {
		return p.EndOfSemester(baseTime), true
	}

	return time.Time{}, false
}

// FindWeekday reports the first weekday name mentioned in text, matched
// case-insensitively. Callers decide what the mention means; resolving it
// to a date goes through NextWeekday.
func (p *Parser) FindWeekday(text string) (time.Weekday, bool) {
	if m := bareWeekdayRe.FindStringSubmatch(strings.ToLower(text)); m != nil {
		return weekdayNames[m[1]], true
	}
	return time.Sunday, false
}

// FindAbsolute scans text for an explicit date token and parses it.
// Recognized forms: month-name + day ("March 15th", ordinal suffixes
// stripped), day + month-name ("15 March", "3rd of April"), and numeric
// dd/mm/yy(yy). Month-name forms without a year take baseTime's year.
// Unrecognizable or out-of-range tokens return false, never an error.
func (p *Parser) FindAbsolute(text string, baseTime time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)
	year := baseTime.In(p.location).Year()

	if m := monthDayRe.FindStringSubmatch(lower); m != nil {
		month := monthNames[m[1]]
		day, _ := strconv.Atoi(m[2])
		if validDay(year, month, day) {
			return time.Date(year, month, day, 0, 0, 0, 0, p.location), true
		}
	}

	if m := dayMonthRe.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := monthNames[m[2]]
		if validDay(year, month, day) {
			return time.Date(year, month, day, 0, 0, 0, 0, p.location), true
		}
	}

	// Numeric dates are day-first: dd/mm/yy(yy).
	if m := numericDateRe.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		monthNum, _ := strconv.Atoi(m[2])
		yearNum, _ := strconv.Atoi(m[3])
		if yearNum < 100 {
			yearNum += 2000
		}
		if monthNum >= 1 && monthNum <= 12 && validDay(yearNum, time.Month(monthNum), day) {
			return time.Date(yearNum, time.Month(monthNum), day, 0, 0, 0, 0, p.location), true
		}
	}

	return time.Time{}, false
}

func parseCount(token string) int {
	if n, ok := wordNumbers[token]; ok {
		return n
	}
	n, _ := strconv.Atoi(token)
	return n
}

func validDay(year int, month time.Month, day int) bool {
	if day < 1 {
		return false
	}
	lastDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
	return day <= lastDay
}
