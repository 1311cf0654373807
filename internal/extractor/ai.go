package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"lecture-pipeline/internal/model"
	"lecture-pipeline/pkg/datemath"
	"lecture-pipeline/pkg/llmprovider"
)

const extractionPromptTemplate = `You are an assistant that extracts actionable academic tasks from a lecture transcript.

Today's date is %s.

Return ONLY a JSON array, no prose. One element per task:
[
  {
    "title": "short task title",
    "description": "one-sentence description",
    "type": "assignment|quiz|reading|presentation|lab",
    "priority": "low|medium|high",
    "due_date": "YYYY-MM-DD or null"
  }
]

Resolve relative dates ("next Monday", "in two weeks") against today's date.
If no due date is mentioned, use null. Return [] when the transcript contains
no tasks.

Transcript:
---
%s
---`

// AI is the AI-delegated strategy: it forwards the transcript to an external
// extraction collaborator and parses its structured reply. A malformed reply
// surfaces as ErrMalformedReply; falling back to the rule-based strategy is
// the caller's decision, not this type's.
type AI struct {
	provider llmprovider.Provider
	dateMath *datemath.Parser
}

var _ Strategy = (*AI)(nil)

// NewAI creates the AI-delegated strategy on top of an LLM provider. The
// date parser recovers due dates when the model echoes a relative phrase
// instead of resolving it; nil disables that recovery.
func NewAI(provider llmprovider.Provider, dateMath *datemath.Parser) *AI {
	return &AI{provider: provider, dateMath: dateMath}
}

type aiTaskReply struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// Extract implements Strategy.
func (s *AI) Extract(ctx context.Context, transcript string, now time.Time) ([]TaskDraft, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}

	prompt := fmt.Sprintf(extractionPromptTemplate, now.Format("2006-01-02"), transcript)

	resp, err := s.provider.GenerateContent(ctx, &llmprovider.Request{
		Prompt:      prompt,
		Temperature: 0.2, // low temperature for deterministic JSON output
		MaxTokens:   2048,
	})
	if err != nil {
		return nil, err
	}

	cleaned := sanitizeJSONResponse(resp.Text)

	var replies []aiTaskReply
	if err := json.Unmarshal([]byte(cleaned), &replies); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	drafts := make([]TaskDraft, 0, len(replies))
	for _, r := range replies {
		if strings.TrimSpace(r.Title) == "" {
			continue
		}
		drafts = append(drafts, TaskDraft{
			Title:       strings.TrimSpace(r.Title),
			Description: strings.TrimSpace(r.Description),
			Type:        normalizeType(r.Type),
			Priority:    normalizePriority(r.Priority),
			DueDate:     s.parseReplyDate(r.DueDate, now),
		})
	}
	return drafts, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// normalizeType keeps unknown values as-is: the type set is open.
func normalizeType(raw string) model.TaskType {
	t := model.TaskType(strings.ToLower(strings.TrimSpace(raw)))
	if t == "" {
		return model.TaskTypeAssignment
	}
	return t
}

func normalizePriority(raw string) model.TaskPriority {
	switch model.TaskPriority(strings.ToLower(strings.TrimSpace(raw))) {
	case model.TaskPriorityLow:
		return model.TaskPriorityLow
	case model.TaskPriorityHigh:
		return model.TaskPriorityHigh
	default:
		return model.TaskPriorityMedium
	}
}

// parseReplyDate degrades unparseable dates to nil rather than erroring.
// Relative phrases the model failed to resolve ("tomorrow", "in 2 weeks",
// "next monday") are resolved against now when a date parser is set.
func (s *AI) parseReplyDate(raw *string, now time.Time) *time.Time {
	if raw == nil || *raw == "" || strings.EqualFold(*raw, "null") {
		return nil
	}

	token := strings.TrimSpace(*raw)
	if parsed, err := time.Parse("2006-01-02", token); err == nil {
		return &parsed
	}

	if s.dateMath == nil {
		return nil
	}
	lower := strings.ToLower(token)
	switch {
	case lower == "today", lower == "tomorrow", lower == "yesterday",
		strings.HasPrefix(lower, "in "), strings.HasPrefix(lower, "next "):
		if resolved, err := s.dateMath.Parse(lower, now); err == nil {
			return &resolved
		}
	}
	return nil
}
