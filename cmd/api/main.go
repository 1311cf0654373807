package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"lecture-pipeline/config"
	_ "lecture-pipeline/docs" // Swagger docs
	"lecture-pipeline/internal/extractor"
	"lecture-pipeline/internal/httpserver"
	"lecture-pipeline/internal/lecture"
	"lecture-pipeline/internal/lecture/usecase"
	"lecture-pipeline/pkg/datemath"
	"lecture-pipeline/pkg/deepseek"
	"lecture-pipeline/pkg/gcalendar"
	"lecture-pipeline/pkg/gemini"
	"lecture-pipeline/pkg/llmprovider"
	"lecture-pipeline/pkg/log"
	"lecture-pipeline/pkg/transcribe"
)

// @title       Lecture Pipeline API
// @description Lecture processing and task-extraction pipeline: transcription, summarization, task extraction and calendar scheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Lecture Pipeline...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres connection: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ping postgres: %v", err)
	}

	// 4. Date math (shared by the rule-based extractor)
	dateMathParser, dtErr := datemath.NewParser(cfg.Pipeline.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Pipeline.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Transcription adapter (optional)
	var transcriber transcribe.Transcriber
	if cfg.OpenAI.APIKey != "" {
		transcriber = transcribe.NewOpenAIClient(transcribe.Config{
			APIKey: cfg.OpenAI.APIKey,
			Model:  cfg.OpenAI.Model,
		})
		logger.Info(ctx, "Transcription adapter initialized")
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY missing, transcription disabled (manual transcripts still work)")
	}

	// 6. Summarization engines (primary: Gemini, secondary: DeepSeek)
	summarizers := make(map[lecture.SummaryEngine]llmprovider.Provider)
	var primary llmprovider.Provider
	if cfg.Gemini.APIKey != "" {
		geminiClient, gerr := gemini.New(gemini.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		})
		if gerr != nil {
			logger.Warnf(ctx, "Gemini not available: %v", gerr)
		} else {
			primary = llmprovider.NewGeminiAdapter(geminiClient)
			summarizers[lecture.EnginePrimary] = primary
			logger.Infof(ctx, "Primary summarizer: %s", primary.Model())
		}
	}
	if cfg.DeepSeek.APIKey != "" {
		deepseekClient, derr := deepseek.New(deepseek.Config{
			APIKey: cfg.DeepSeek.APIKey,
			Model:  cfg.DeepSeek.Model,
		})
		if derr != nil {
			logger.Warnf(ctx, "DeepSeek not available: %v", derr)
		} else {
			secondary := llmprovider.NewDeepSeekAdapter(deepseekClient)
			summarizers[lecture.EngineSecondary] = secondary
			if primary == nil {
				primary = secondary
			}
			logger.Infof(ctx, "Secondary summarizer: %s", secondary.Model())
		}
	}
	if len(summarizers) == 0 {
		logger.Warn(ctx, "No summarization engine configured")
	}

	// 7. Extraction strategies. The rule-based one always works; the AI
	// one follows the primary summarization provider. Keyword lists can
	// be overridden per deployment via pipeline.rules.
	ruleTable := extractor.DefaultRuleTable().WithOverrides(extractor.RuleOverrides{
		Types:    cfg.Pipeline.Rules.Types,
		DueCues:  cfg.Pipeline.Rules.DueCues,
		HighCues: cfg.Pipeline.Rules.HighCues,
		LowCues:  cfg.Pipeline.Rules.LowCues,
	})
	ruleStrategy := extractor.NewRuleBased(ruleTable, dateMathParser)
	var aiStrategy extractor.Strategy
	if primary != nil {
		aiStrategy = extractor.NewAI(primary, dateMathParser)
	}

	// 8. Google Calendar scheduler (optional)
	var scheduler lecture.Scheduler
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, cerr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if cerr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", cerr)
		} else {
			scheduler = usecase.NewGCalScheduler(calendarClient, cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		PostgresDB:     db,
		Transcriber:    transcriber,
		Summarizers:    summarizers,
		AIStrategy:     aiStrategy,
		RuleStrategy:   ruleStrategy,
		Scheduler:      scheduler,
		RateLimitRPS:   cfg.Pipeline.RateLimitRPS,
		RateLimitBurst: cfg.Pipeline.RateLimitBurst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
