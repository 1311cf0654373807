package extractor

import (
	"regexp"
	"strings"

	"lecture-pipeline/internal/model"
)

// RuleTable is the data-driven keyword configuration consulted by the
// rule-based strategy. It can be replaced wholesale from external config;
// classification stays unit-testable independent of the date logic.
type RuleTable struct {
	// Types maps each task type to its trigger keywords. TypeOrder fixes
	// the classification priority when a line matches several categories.
	Types     map[model.TaskType][]string
	TypeOrder []model.TaskType

	// DueCues are words that must co-occur with an explicit date token for
	// absolute due-date resolution.
	DueCues []string

	// HighCues / LowCues drive priority classification. Neither matching
	// means medium.
	HighCues []string
	LowCues  []string
}

// DefaultRuleTable returns the built-in keyword sets.
// RuleOverrides carries externally supplied keyword lists, typically read
// from service config. Empty fields keep the base table's values; type
// names that the base table does not know are ignored.
type RuleOverrides struct {
	Types    map[string][]string
	DueCues  []string
	HighCues []string
	LowCues  []string
}

// WithOverrides returns a copy of the table with non-empty override
// fields applied. The receiver is never mutated.
func (t RuleTable) WithOverrides(o RuleOverrides) RuleTable {
	merged := t
	merged.Types = make(map[model.TaskType][]string, len(t.Types))
	for taskType, keywords := range t.Types {
		merged.Types[taskType] = keywords
	}

	for name, keywords := range o.Types {
		taskType := model.TaskType(strings.ToLower(name))
		if _, known := merged.Types[taskType]; known && len(keywords) > 0 {
			merged.Types[taskType] = keywords
		}
	}
	if len(o.DueCues) > 0 {
		merged.DueCues = o.DueCues
	}
	if len(o.HighCues) > 0 {
		merged.HighCues = o.HighCues
	}
	if len(o.LowCues) > 0 {
		merged.LowCues = o.LowCues
	}
	return merged
}

func DefaultRuleTable() RuleTable {
	return RuleTable{
		Types: map[model.TaskType][]string{
			model.TaskTypeAssignment:   {"assignment", "homework", "essay", "problem set", "submit", "report"},
			model.TaskTypeQuiz:         {"quiz", "exam", "midterm", "test"},
			model.TaskTypeReading:      {"reading", "read", "chapter", "textbook", "article"},
			model.TaskTypePresentation: {"presentation", "present", "slides"},
			model.TaskTypeLab:          {"lab", "laboratory", "experiment", "practical"},
		},
		TypeOrder: []model.TaskType{
			model.TaskTypeAssignment,
			model.TaskTypeQuiz,
			model.TaskTypeReading,
			model.TaskTypePresentation,
			model.TaskTypeLab,
		},
		DueCues:  []string{"due", "deadline", "submit by", "turn in", "hand in"},
		HighCues: []string{"important", "critical", "mandatory", "must", "crucial", "counts toward"},
		LowCues:  []string{"optional", "extra credit", "bonus", "suggested", "not graded"},
	}
}

// compiledRules holds word-boundary matchers built once per strategy so
// "lab" does not fire inside "syllabus".
type compiledRules struct {
	table    RuleTable
	types    map[model.TaskType][]*regexp.Regexp
	dueCues  []*regexp.Regexp
	highCues []*regexp.Regexp
	lowCues  []*regexp.Regexp
}

func compileRules(table RuleTable) *compiledRules {
	c := &compiledRules{
		table: table,
		types: make(map[model.TaskType][]*regexp.Regexp, len(table.Types)),
	}
	for taskType, keywords := range table.Types {
		c.types[taskType] = compileKeywords(keywords)
	}
	c.dueCues = compileKeywords(table.DueCues)
	c.highCues = compileKeywords(table.HighCues)
	c.lowCues = compileKeywords(table.LowCues)
	return c
}

func compileKeywords(keywords []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(kw))+`\b`))
	}
	return res
}

// matchType classifies a lower-cased line, first category wins.
func (c *compiledRules) matchType(lowerLine string) (model.TaskType, bool) {
	for _, taskType := range c.table.TypeOrder {
		if matchAny(lowerLine, c.types[taskType]) {
			return taskType, true
		}
	}
	return "", false
}

func (c *compiledRules) hasDueCue(lowerText string) bool {
	return matchAny(lowerText, c.dueCues)
}

// classifyPriority applies high > low > medium over the search window.
func (c *compiledRules) classifyPriority(lowerWindow string) model.TaskPriority {
	if matchAny(lowerWindow, c.highCues) {
		return model.TaskPriorityHigh
	}
	if matchAny(lowerWindow, c.lowCues) {
		return model.TaskPriorityLow
	}
	return model.TaskPriorityMedium
}

func matchAny(text string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
