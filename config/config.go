package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Lecture pipeline providers
	OpenAI         OpenAIConfig
	Gemini         GeminiConfig
	DeepSeek       DeepSeekConfig
	GoogleCalendar GoogleCalendarConfig
	Pipeline       PipelineConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN builds the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// OpenAIConfig configures the Whisper transcription adapter.
type OpenAIConfig struct {
	APIKey string
	Model  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type DeepSeekConfig struct {
	APIKey string
	Model  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// PipelineConfig holds cross-cutting pipeline settings.
type PipelineConfig struct {
	Timezone       string
	RateLimitRPS   float64
	RateLimitBurst int
	Rules          RulesConfig
}

// RulesConfig overrides the built-in extraction keyword lists. Empty
// fields fall back to the defaults.
type RulesConfig struct {
	Types    map[string][]string
	DueCues  []string
	HighCues []string
	LowCues  []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// Providers
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	cfg.DeepSeek.APIKey = viper.GetString("deepseek.api_key")
	cfg.DeepSeek.Model = viper.GetString("deepseek.model")
	if key := viper.GetString("deepseek_api_key"); key != "" {
		cfg.DeepSeek.APIKey = key
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if creds := viper.GetString("google_calendar_credentials"); creds != "" {
		cfg.GoogleCalendar.CredentialsPath = creds
	}

	// Pipeline
	cfg.Pipeline.Timezone = viper.GetString("pipeline.timezone")
	cfg.Pipeline.RateLimitRPS = viper.GetFloat64("pipeline.rate_limit_rps")
	cfg.Pipeline.RateLimitBurst = viper.GetInt("pipeline.rate_limit_burst")
	cfg.Pipeline.Rules.Types = viper.GetStringMapStringSlice("pipeline.rules.types")
	cfg.Pipeline.Rules.DueCues = viper.GetStringSlice("pipeline.rules.due_cues")
	cfg.Pipeline.Rules.HighCues = viper.GetStringSlice("pipeline.rules.high_cues")
	cfg.Pipeline.Rules.LowCues = viper.GetStringSlice("pipeline.rules.low_cues")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "lectures")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("pipeline.timezone", "UTC")
	viper.SetDefault("pipeline.rate_limit_rps", 20)
	viper.SetDefault("pipeline.rate_limit_burst", 40)
}
