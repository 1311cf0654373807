package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"lecture-pipeline/internal/extractor"
	"lecture-pipeline/internal/lecture"
	"lecture-pipeline/internal/lecture/repository"
	"lecture-pipeline/pkg/llmprovider"
	pkgLog "lecture-pipeline/pkg/log"
	"lecture-pipeline/pkg/transcribe"
)

// audioKeyCacheSize bounds the virtual-identifier lookup cache.
const audioKeyCacheSize = 256

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	transcriber  transcribe.Transcriber
	summarizers  map[lecture.SummaryEngine]llmprovider.Provider
	aiStrategy   extractor.Strategy
	ruleStrategy extractor.Strategy
	scheduler    lecture.Scheduler

	// audioKeys maps resolved virtual identifiers to the lecture that
	// owns the inline audio, so repeated lookups skip the table scan.
	audioKeys *lru.Cache[string, string]
}

// New creates a new lecture UseCase instance. Transcriber, summarizers and
// scheduler may be nil when the corresponding provider is not configured;
// operations that need them fail with a configuration error.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	transcriber transcribe.Transcriber,
	summarizers map[lecture.SummaryEngine]llmprovider.Provider,
	aiStrategy extractor.Strategy,
	ruleStrategy extractor.Strategy,
	scheduler lecture.Scheduler,
) *implUseCase {
	cache, _ := lru.New[string, string](audioKeyCacheSize)
	return &implUseCase{
		l:            l,
		repo:         repo,
		transcriber:  transcriber,
		summarizers:  summarizers,
		aiStrategy:   aiStrategy,
		ruleStrategy: ruleStrategy,
		scheduler:    scheduler,
		audioKeys:    cache,
	}
}
