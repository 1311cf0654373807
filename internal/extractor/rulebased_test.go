package extractor_test

import (
	"context"
	"testing"
	"time"

	"lecture-pipeline/internal/extractor"
	"lecture-pipeline/internal/model"
	"lecture-pipeline/pkg/datemath"
)

func newRuleBased(t *testing.T) *extractor.RuleBased {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return extractor.NewRuleBased(extractor.DefaultRuleTable(), parser)
}

// Friday, March 1st 2024 is the reference date used throughout.
var refDate = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestRuleBasedExtract(t *testing.T) {
	s := newRuleBased(t)
	ctx := context.Background()

	transcript := "Welcome back everyone.\n" +
		"Your essay on the French Revolution is due next Monday.\n" +
		"It counts toward your final grade, so take it seriously.\n" +
		"Also, read chapter 7 before the next session.\n" +
		"This one is optional if you already know the material.\n"

	drafts, err := s.Extract(ctx, transcript, refDate)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("Extract() returned %d drafts, want 2: %+v", len(drafts), drafts)
	}

	essay := drafts[0]
	if essay.Type != model.TaskTypeAssignment {
		t.Errorf("essay.Type = %q, want assignment", essay.Type)
	}
	if essay.Title != "Your essay on the French Revolution is due next Monday" {
		t.Errorf("essay.Title = %q", essay.Title)
	}
	if essay.Description != "It counts toward your final grade, so take it seriously." {
		t.Errorf("essay.Description = %q", essay.Description)
	}
	if essay.Priority != model.TaskPriorityHigh {
		t.Errorf("essay.Priority = %q, want high", essay.Priority)
	}
	wantDue := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	if essay.DueDate == nil || !essay.DueDate.Equal(wantDue) {
		t.Errorf("essay.DueDate = %v, want %v", essay.DueDate, wantDue)
	}

	reading := drafts[1]
	if reading.Type != model.TaskTypeReading {
		t.Errorf("reading.Type = %q, want reading", reading.Type)
	}
	if reading.Priority != model.TaskPriorityLow {
		t.Errorf("reading.Priority = %q, want low", reading.Priority)
	}
	if reading.DueDate != nil {
		t.Errorf("reading.DueDate = %v, want nil", reading.DueDate)
	}
}

func TestRuleBasedDeterminism(t *testing.T) {
	s := newRuleBased(t)
	ctx := context.Background()

	transcript := "Quiz on Friday about chapter 3.\n" +
		"The assignment deadline is March 15th.\n" +
		"Lab session next week, attendance is mandatory.\n"

	first, err := s.Extract(ctx, transcript, refDate)
	if err != nil {
		t.Fatalf("first Extract() error: %v", err)
	}
	second, err := s.Extract(ctx, transcript, refDate)
	if err != nil {
		t.Fatalf("second Extract() error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("runs disagree on count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Title != b.Title || a.Type != b.Type || a.Priority != b.Priority {
			t.Errorf("draft %d differs between runs: %+v vs %+v", i, a, b)
		}
		if (a.DueDate == nil) != (b.DueDate == nil) {
			t.Errorf("draft %d due dates disagree", i)
		}
		if a.DueDate != nil && !a.DueDate.Equal(*b.DueDate) {
			t.Errorf("draft %d due dates differ: %v vs %v", i, a.DueDate, b.DueDate)
		}
	}
}

func TestRuleBasedTypePriorityOrder(t *testing.T) {
	s := newRuleBased(t)

	tests := []struct {
		name string
		line string
		want model.TaskType
	}{
		{
			name: "Quiz beats reading",
			line: "The quiz covers the reading from last week",
			want: model.TaskTypeQuiz,
		},
		{
			name: "Assignment beats quiz",
			line: "The assignment includes a short quiz section",
			want: model.TaskTypeAssignment,
		},
		{
			name: "Reading beats presentation",
			line: "Read the article before preparing your presentation",
			want: model.TaskTypeReading,
		},
		{
			name: "Presentation beats lab",
			line: "Presentation slots during the lab session",
			want: model.TaskTypePresentation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts, err := s.Extract(context.Background(), tt.line, refDate)
			if err != nil {
				t.Fatalf("Extract() error: %v", err)
			}
			if len(drafts) != 1 {
				t.Fatalf("got %d drafts, want 1", len(drafts))
			}
			if drafts[0].Type != tt.want {
				t.Errorf("Type = %q, want %q", drafts[0].Type, tt.want)
			}
		})
	}
}

func TestRuleBasedDueDateResolution(t *testing.T) {
	s := newRuleBased(t)

	tests := []struct {
		name       string
		transcript string
		want       *time.Time
	}{
		{
			name:       "Relative next Monday",
			transcript: "Homework due next Monday",
			want:       datePtr(2024, 3, 4),
		},
		{
			name:       "Absolute with ordinal suffix",
			transcript: "Submit the report\nsubmit by March 15th please",
			want:       datePtr(2024, 3, 15),
		},
		{
			name:       "Date token two lines below",
			transcript: "Problem set three is posted\nsee the portal\ndeadline is 22/03/2024",
			want:       datePtr(2024, 3, 22),
		},
		{
			name:       "Bare weekday after due cue",
			transcript: "Essay due Monday",
			want:       datePtr(2024, 3, 4),
		},
		{
			name:       "Bare weekday without due cue is ignored",
			transcript: "Quiz covers what we discussed on Monday",
			want:       nil,
		},
		{
			name:       "Due cue without recognizable token degrades to nil",
			transcript: "Essay due whenever you finish it",
			want:       nil,
		},
		{
			name:       "Date token without due cue is ignored",
			transcript: "Read chapter 2, written on March 15th by the author",
			want:       nil,
		},
		{
			name:       "End of month",
			transcript: "Lab report due at the end of month",
			want:       datePtr(2024, 3, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts, err := s.Extract(context.Background(), tt.transcript, refDate)
			if err != nil {
				t.Fatalf("Extract() error: %v", err)
			}
			if len(drafts) == 0 {
				t.Fatalf("no drafts extracted from %q", tt.transcript)
			}

			got := drafts[0].DueDate
			if tt.want == nil {
				if got != nil {
					t.Errorf("DueDate = %v, want nil", got)
				}
				return
			}
			if got == nil || !got.Equal(*tt.want) {
				t.Errorf("DueDate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRuleBasedNoDeduplication(t *testing.T) {
	s := newRuleBased(t)

	transcript := "Quiz on chapter 1\nQuiz on chapter 1"
	drafts, err := s.Extract(context.Background(), transcript, refDate)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(drafts) != 2 {
		t.Errorf("got %d drafts, want 2 (adjacent qualifying lines are not merged)", len(drafts))
	}
}

func TestRuleBasedTitleTrimming(t *testing.T) {
	s := newRuleBased(t)

	drafts, err := s.Extract(context.Background(), "  - Quiz next Friday! -  ", refDate)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts, want 1", len(drafts))
	}
	if drafts[0].Title != "Quiz next Friday" {
		t.Errorf("Title = %q, want non-word edges trimmed", drafts[0].Title)
	}
}

func TestRuleBasedNeverErrors(t *testing.T) {
	s := newRuleBased(t)

	inputs := []string{"", "\n\n\n", "no keywords at all here", "due 99/99/9999 assignment"}
	for _, in := range inputs {
		if _, err := s.Extract(context.Background(), in, refDate); err != nil {
			t.Errorf("Extract(%q) returned error: %v", in, err)
		}
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
