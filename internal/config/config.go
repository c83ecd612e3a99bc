package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Auth       AuthConfig       `yaml:"auth"`
	Storage    StorageConfig    `yaml:"storage"`
	Vision     VisionConfig     `yaml:"vision"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Lexicon    LexiconConfig    `yaml:"lexicon"`
	Opening    OpeningConfig    `yaml:"opening"`
	Redis      RedisConfig      `yaml:"redis"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AuthConfig holds the settings of the bearer-token identity resolver.
// An empty secret disables token resolution.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"encuentrame"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"1h"`
}

// StorageConfig locates uploaded photos.
type StorageConfig struct {
	Bucket string `yaml:"bucket" env:"STORAGE_BUCKET"`
	Region string `yaml:"region" env:"AWS_REGION" env-default:"us-east-1"`
}

// VisionConfig holds label and moderation detection parameters.
type VisionConfig struct {
	MaxLabels     int     `yaml:"max_labels"     env:"VISION_MAX_LABELS"     env-default:"25"`
	MinConfidence float64 `yaml:"min_confidence" env:"VISION_MIN_CONFIDENCE" env-default:"70"`
}

// ExtractionConfig holds the generative inventory extraction chain.
type ExtractionConfig struct {
	ProvidersRaw    string        `yaml:"providers"         env:"EXTRACTION_PROVIDERS"   env-default:"anthropic,openai"`
	Timeout         time.Duration `yaml:"timeout"           env:"EXTRACTION_TIMEOUT"     env-default:"20s"`
	MaxTokens       int64         `yaml:"max_tokens"        env:"EXTRACTION_MAX_TOKENS"  env-default:"700"`
	Temperature     float64       `yaml:"temperature"       env:"EXTRACTION_TEMPERATURE" env-default:"0"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `yaml:"anthropic_model"   env:"ANTHROPIC_MODEL"        env-default:"claude-3-5-haiku-latest"`
	OpenAIAPIKey    string        `yaml:"openai_api_key"    env:"OPENAI_API_KEY"`
	OpenAIModel     string        `yaml:"openai_model"      env:"OPENAI_MODEL"           env-default:"gpt-4o-mini"`

	// Providers is parsed from ProvidersRaw during validation.
	Providers []string `yaml:"-" env:"-"`
}

// LexiconConfig optionally replaces the embedded reconciliation lexicon.
type LexiconConfig struct {
	Path string `yaml:"path" env:"LEXICON_PATH"`
}

// OpeningConfig holds stall lifecycle settings.
type OpeningConfig struct {
	ReopenPolicy   string        `yaml:"reopen_policy"   env:"OPENING_REOPEN_POLICY"   env-default:"reject"`
	StaleAfter     time.Duration `yaml:"stale_after"     env:"OPENING_STALE_AFTER"     env-default:"16h"`
	HistoryDefault int           `yaml:"history_default" env:"OPENING_HISTORY_DEFAULT" env-default:"20"`
	HistoryMax     int           `yaml:"history_max"     env:"OPENING_HISTORY_MAX"     env-default:"50"`
	SweepBatch     int           `yaml:"sweep_batch"     env:"OPENING_SWEEP_BATCH"     env-default:"500"`
}

// RedisConfig enables the per-stall lock. An empty URL disables it.
type RedisConfig struct {
	URL     string        `yaml:"url"      env:"REDIS_URL"`
	LockTTL time.Duration `yaml:"lock_ttl" env:"REDIS_LOCK_TTL" env-default:"30s"`
}

// Enabled reports whether a Redis URL is configured.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// TokensEnabled reports whether bearer tokens can be resolved.
func (c AuthConfig) TokensEnabled() bool {
	return c.JWTSecret != ""
}
