// Package anthropic implements text generation backed by the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/encuentrame-backend/internal/provider"
)

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("empty response")

// Provider sends prompts to a Claude model.
type Provider struct {
	client anthropic.Client
	model  string
	log    *slog.Logger
}

// NewProvider creates a Provider for model. Extra request options (base URL,
// retries) are passed through to the SDK client.
func NewProvider(apiKey, model string, logger *slog.Logger, opts ...option.RequestOption) *Provider {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Provider{
		client: anthropic.NewClient(opts...),
		model:  model,
		log:    logger.With("adapter", "anthropic"),
	}
}

// Name identifies the provider in extraction attempts.
func (p *Provider) Name() string { return "anthropic" }

// Generate sends req.Prompt as a single user message and returns the
// concatenated text blocks of the reply.
func (p *Provider) Generate(ctx context.Context, req provider.GenerateRequest) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   req.MaxTokens,
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages call: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("anthropic: %w", ErrEmptyResponse)
	}

	p.log.DebugContext(ctx, "anthropic response",
		slog.String("model", p.model),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return b.String(), nil
}
