package config

import (
	"fmt"
	"slices"
	"strings"
)

// Known generative extraction providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Vision.MaxLabels <= 0 {
		return fmt.Errorf("vision.max_labels must be > 0 (got %d)", c.Vision.MaxLabels)
	}
	if c.Vision.MinConfidence < 0 || c.Vision.MinConfidence > 100 {
		return fmt.Errorf("vision.min_confidence must be within 0..100 (got %v)", c.Vision.MinConfidence)
	}

	if err := c.Extraction.validate(); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}

	if err := c.Opening.validate(); err != nil {
		return fmt.Errorf("opening: %w", err)
	}

	if c.Redis.Enabled() && c.Redis.LockTTL <= 0 {
		return fmt.Errorf("redis.lock_ttl must be > 0 (got %v)", c.Redis.LockTTL)
	}

	return nil
}

func (e *ExtractionConfig) validate() error {
	providers, err := ParseProviders(e.ProvidersRaw)
	if err != nil {
		return fmt.Errorf("providers: %w", err)
	}
	e.Providers = providers

	if e.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", e.Timeout)
	}
	if e.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", e.MaxTokens)
	}
	if e.Temperature < 0 || e.Temperature > 1 {
		return fmt.Errorf("temperature must be within 0..1 (got %v)", e.Temperature)
	}
	return nil
}

func (o *OpeningConfig) validate() error {
	switch o.ReopenPolicy {
	case "reject", "supersede":
	default:
		return fmt.Errorf("reopen_policy must be reject or supersede (got %q)", o.ReopenPolicy)
	}
	if o.StaleAfter <= 0 {
		return fmt.Errorf("stale_after must be > 0 (got %v)", o.StaleAfter)
	}
	if o.HistoryDefault <= 0 || o.HistoryMax < o.HistoryDefault {
		return fmt.Errorf("history_default must be > 0 and <= history_max (got %d, %d)", o.HistoryDefault, o.HistoryMax)
	}
	if o.SweepBatch <= 0 {
		return fmt.Errorf("sweep_batch must be > 0 (got %d)", o.SweepBatch)
	}
	return nil
}

// ParseProviders parses a comma-separated, ordered provider list
// (e.g. "anthropic,openai"). An empty string returns a nil slice, which
// leaves only the rule-based parser.
func ParseProviders(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	providers := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if p != ProviderAnthropic && p != ProviderOpenAI {
			return nil, fmt.Errorf("unknown provider %q", p)
		}
		if slices.Contains(providers, p) {
			return nil, fmt.Errorf("duplicate provider %q", p)
		}
		providers = append(providers, p)
	}

	return providers, nil
}
