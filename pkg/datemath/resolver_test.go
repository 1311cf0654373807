package datemath_test

import (
	"testing"
	"time"

	"lecture-pipeline/pkg/datemath"
)

func TestResolveRelative(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC) // Friday

	tests := []struct {
		name      string
		text      string
		want      time.Time
		wantMatch bool
	}{
		{
			name:      "Next weekday",
			text:      "The essay is due next Monday at the latest",
			want:      time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "Next week",
			text:      "quiz next week covering chapters 3 and 4",
			want:      time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "In two weeks spelled out",
			text:      "presentations start in two weeks",
			want:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "In N weeks numeric",
			text:      "lab report in 3 weeks",
			want:      time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "In N days",
			text:      "submit in 5 days",
			want:      time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "End of month",
			text:      "final draft by end of month",
			want:      time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "End of the semester",
			text:      "project presentations at the end of the semester",
			want:      time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "No relative phrase",
			text:      "read chapter 7 carefully",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ResolveRelative(tt.text, base)
			if ok != tt.wantMatch {
				t.Fatalf("ResolveRelative() match = %v, want %v", ok, tt.wantMatch)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ResolveRelative() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindWeekday(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		name      string
		text      string
		want      time.Weekday
		wantMatch bool
	}{
		{
			name:      "Bare weekday",
			text:      "Essay due Monday",
			want:      time.Monday,
			wantMatch: true,
		},
		{
			name:      "Case insensitive",
			text:      "hand in by FRIDAY",
			want:      time.Friday,
			wantMatch: true,
		},
		{
			name:      "No weekday mentioned",
			text:      "submit the lab report soon",
			wantMatch: false,
		},
		{
			name:      "Weekday embedded in another word is not matched",
			text:      "the saturdays playlist",
			want:      time.Saturday,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.FindWeekday(tt.text)
			if ok != tt.wantMatch {
				t.Fatalf("FindWeekday() match = %v, want %v", ok, tt.wantMatch)
			}
			if ok && got != tt.want {
				t.Errorf("FindWeekday() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindAbsolute(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		text      string
		want      time.Time
		wantMatch bool
	}{
		{
			name:      "Month name with ordinal suffix",
			text:      "submit by March 15th",
			want:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "Month name without suffix",
			text:      "deadline is april 2",
			want:      time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "Day before month name",
			text:      "due 15 March",
			want:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "Ordinal day of month",
			text:      "hand in on the 3rd of April",
			want:      time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "Numeric day-first with two-digit year",
			text:      "deadline 25/03/24",
			want:      time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "Numeric day-first with four-digit year",
			text:      "deadline 05/04/2024",
			want:      time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
			wantMatch: true,
		},
		{
			name:      "Out-of-range day degrades",
			text:      "due February 31st",
			wantMatch: false,
		},
		{
			name:      "Out-of-range numeric month degrades",
			text:      "due 10/13/24",
			wantMatch: false,
		},
		{
			name:      "No date token",
			text:      "due as soon as possible",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.FindAbsolute(tt.text, base)
			if ok != tt.wantMatch {
				t.Fatalf("FindAbsolute() match = %v, want %v", ok, tt.wantMatch)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("FindAbsolute() got = %v, want %v", got, tt.want)
			}
		})
	}
}
