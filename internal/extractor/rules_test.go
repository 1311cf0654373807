package extractor_test

import (
	"context"
	"testing"

	"lecture-pipeline/internal/extractor"
	"lecture-pipeline/internal/model"
	"lecture-pipeline/pkg/datemath"
)

func TestRuleTableWithOverrides(t *testing.T) {
	base := extractor.DefaultRuleTable()

	merged := base.WithOverrides(extractor.RuleOverrides{
		Types:    map[string][]string{"quiz": {"klausur"}, "seminar": {"seminar"}},
		HighCues: []string{"verpflichtend"},
	})

	if got := merged.Types[model.TaskTypeQuiz]; len(got) != 1 || got[0] != "klausur" {
		t.Errorf("quiz keywords = %v, want [klausur]", got)
	}
	if _, ok := merged.Types[model.TaskType("seminar")]; ok {
		t.Error("unknown type name was adopted, want ignored")
	}
	if len(merged.HighCues) != 1 || merged.HighCues[0] != "verpflichtend" {
		t.Errorf("HighCues = %v, want [verpflichtend]", merged.HighCues)
	}
	if len(merged.DueCues) != len(base.DueCues) {
		t.Errorf("DueCues = %v, want base defaults kept", merged.DueCues)
	}

	// The receiver must stay untouched.
	if got := base.Types[model.TaskTypeQuiz]; len(got) == 1 && got[0] == "klausur" {
		t.Error("override mutated the base table")
	}
}

func TestRuleBasedWithOverriddenKeywords(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	table := extractor.DefaultRuleTable().WithOverrides(extractor.RuleOverrides{
		Types: map[string][]string{"assignment": {"tarea"}},
	})
	s := extractor.NewRuleBased(table, parser)

	drafts, err := s.Extract(context.Background(), "Tarea for next class", refDate)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(drafts) != 1 || drafts[0].Type != model.TaskTypeAssignment {
		t.Fatalf("drafts = %+v, want one assignment draft", drafts)
	}

	// The default keyword list was replaced, not appended to.
	drafts, err = s.Extract(context.Background(), "The essay topic is open", refDate)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(drafts) != 0 {
		t.Fatalf("drafts = %+v, want none for a replaced keyword", drafts)
	}
}
