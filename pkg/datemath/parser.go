package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// End-of-semester is a fixed calendar day in the current year. There is no
// academic-calendar authority to derive it from, so it is a package constant.
const (
	semesterEndMonth = time.May
	semesterEndDay   = 31
)

// Parser converts date expressions to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Paris"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		dayName := strings.TrimPrefix(relative, "next ")
		targetWeekday, ok := weekdayNames[dayName]
		if !ok {
			return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
		}
		return p.NextWeekday(baseTime, targetWeekday), nil
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	re := regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	matches := re.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// NextWeekday returns the next future occurrence of the given weekday.
// When baseTime already falls on that weekday the result is one week out,
// never today. "Due Monday" seen on a Monday means next Monday.
func (p *Parser) NextWeekday(baseTime time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// EndOfMonth returns the last calendar day of baseTime's month.
func (p *Parser) EndOfMonth(baseTime time.Time) time.Time {
	t := baseTime.In(p.location)
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, p.location).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// EndOfSemester returns the fixed semester-end date in baseTime's year.
func (p *Parser) EndOfSemester(baseTime time.Time) time.Time {
	t := baseTime.In(p.location)
	return time.Date(t.Year(), semesterEndMonth, semesterEndDay, 0, 0, 0, 0, p.location)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
