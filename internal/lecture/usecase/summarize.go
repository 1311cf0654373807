package usecase

import (
	"context"
	"fmt"
	"strings"

	"lecture-pipeline/internal/lecture"
	"lecture-pipeline/internal/model"
	"lecture-pipeline/pkg/llmprovider"
)

const summarySystemPrompt = `You are an assistant that summarizes university lecture transcripts for students.
Write a concise summary that covers the main topics, key definitions and any announcements.
Use short paragraphs. Do not invent content that is not in the transcript.`

// Summarize runs the summarization transition with the selected engine.
// The only precondition is a non-empty transcript; a completed lecture may
// be re-summarized. An empty engine selects the primary one.
func (uc *implUseCase) Summarize(ctx context.Context, input lecture.SummarizeInput) (model.Lecture, error) {
	lec, err := uc.GetLecture(ctx, input.LectureID)
	if err != nil {
		return model.Lecture{}, err
	}

	started, err := lecture.StartSummary(lec)
	if err != nil {
		return model.Lecture{}, err
	}

	if len(uc.summarizers) == 0 {
		return model.Lecture{}, fmt.Errorf("%w: %w", lecture.ErrConfiguration, llmprovider.ErrNoProvidersConfigured)
	}

	engine := input.Engine
	if engine == "" {
		engine = lecture.EnginePrimary
	}
	provider, ok := uc.summarizers[engine]
	if !ok || provider == nil {
		return model.Lecture{}, fmt.Errorf("%w: summarizer %q", lecture.ErrConfiguration, engine)
	}

	resp, err := provider.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: summarySystemPrompt,
		Prompt:            fmt.Sprintf("Lecture title: %s\n\nTranscript:\n%s", lec.Title, *lec.Transcript),
		Temperature:       0.3,
		MaxTokens:         2048,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summarize GenerateContent (%s): %v", engine, err)
		if _, perr := uc.persistTransition(ctx, lecture.MarkFailed(started), lec.Version); perr != nil {
			return model.Lecture{}, perr
		}
		return model.Lecture{}, fmt.Errorf("%w: %v", lecture.ErrProvider, err)
	}

	done, err := lecture.FinishSummary(started, strings.TrimSpace(resp.Text))
	if err != nil {
		if _, perr := uc.persistTransition(ctx, lecture.MarkFailed(started), lec.Version); perr != nil {
			return model.Lecture{}, perr
		}
		return model.Lecture{}, fmt.Errorf("%w: empty reply from %s", lecture.ErrProvider, provider.Name())
	}

	uc.l.Infof(ctx, "uc.Summarize: lecture %s summarized by %s/%s", lec.ID, provider.Name(), provider.Model())
	return uc.persistTransition(ctx, done, lec.Version)
}
