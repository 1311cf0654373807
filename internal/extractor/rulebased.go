package extractor

import (
	"context"
	"regexp"
	"strings"
	"time"

	"lecture-pipeline/pkg/datemath"
)

// RuleBased is the deterministic fallback strategy. It always terminates
// and never returns an error: malformed dates degrade to a nil due date.
type RuleBased struct {
	rules    *compiledRules
	dateMath *datemath.Parser
}

var _ Strategy = (*RuleBased)(nil)

// NewRuleBased creates the rule-based strategy from the given rule table.
func NewRuleBased(table RuleTable, dateMath *datemath.Parser) *RuleBased {
	return &RuleBased{
		rules:    compileRules(table),
		dateMath: dateMath,
	}
}

var edgeNonWordRe = regexp.MustCompile(`^\W+|\W+$`)

// Extract scans the transcript line by line. A line qualifies when it
// matches at least one task-type keyword category; the first matching
// category in the fixed priority order becomes the type.
func (s *RuleBased) Extract(_ context.Context, transcript string, now time.Time) ([]TaskDraft, error) {
	lines := strings.Split(transcript, "\n")
	drafts := make([]TaskDraft, 0)

	for i, line := range lines {
		lower := strings.ToLower(line)

		taskType, ok := s.rules.matchType(lower)
		if !ok {
			continue
		}

		title := edgeNonWordRe.ReplaceAllString(strings.TrimSpace(line), "")
		if title == "" {
			continue
		}

		description := ""
		if i+1 < len(lines) {
			description = strings.TrimSpace(lines[i+1])
		}

		// Priority window: the line plus the one after it.
		priorityWindow := lower
		if i+1 < len(lines) {
			priorityWindow += "\n" + strings.ToLower(lines[i+1])
		}
		priority := s.rules.classifyPriority(priorityWindow)

		// Due-date window: the line plus the next two.
		dateWindow := line
		for j := i + 1; j <= i+2 && j < len(lines); j++ {
			dateWindow += "\n" + lines[j]
		}

		drafts = append(drafts, TaskDraft{
			Title:       title,
			Description: description,
			Type:        taskType,
			Priority:    priority,
			DueDate:     s.resolveDueDate(dateWindow, now),
		})
	}

	return drafts, nil
}

// resolveDueDate tries relative phrases first, then an explicit date token
// or a bare weekday name, both gated on a due-cue word. Nothing
// recognizable means no due date.
func (s *RuleBased) resolveDueDate(window string, now time.Time) *time.Time {
	if resolved, ok := s.dateMath.ResolveRelative(window, now); ok {
		return &resolved
	}

	if !s.rules.hasDueCue(strings.ToLower(window)) {
		return nil
	}
	if resolved, ok := s.dateMath.FindAbsolute(window, now); ok {
		return &resolved
	}
	// "due Monday" style: a weekday on its own resolves to its next
	// strictly-future occurrence.
	if weekday, ok := s.dateMath.FindWeekday(window); ok {
		resolved := s.dateMath.NextWeekday(now, weekday)
		return &resolved
	}
	return nil
}
