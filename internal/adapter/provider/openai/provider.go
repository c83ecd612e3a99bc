// Package openai implements text generation backed by the OpenAI Responses API,
// constrained to the inventory JSON shape with a strict JSON schema.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"

	"github.com/heartmarshall/encuentrame-backend/internal/provider"
)

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("empty response")

// inventoryPayload mirrors the extractor's expected JSON. Strict schemas
// require every property, so optional values are empty strings here.
type inventoryPayload struct {
	Items []inventoryItemPayload `json:"items" jsonschema:"description=Products the vendor declared"`
}

type inventoryItemPayload struct {
	Canonical string   `json:"canonical" jsonschema:"description=Singular lower-case product name"`
	Display   string   `json:"display" jsonschema:"description=Name as the vendor said it"`
	Qty       int      `json:"qty" jsonschema:"description=Stated quantity or 1"`
	Unit      string   `json:"unit" jsonschema:"description=Unit of sale or empty"`
	Category  string   `json:"category" jsonschema:"description=Product category or empty"`
	Tags      []string `json:"tags"`
	Suggested bool     `json:"suggested" jsonschema:"description=True when inferred rather than stated"`
}

// Provider sends prompts to an OpenAI model.
type Provider struct {
	client openai.Client
	model  string
	schema map[string]any
	log    *slog.Logger
}

// NewProvider creates a Provider for model. Extra request options (base URL,
// retries) are passed through to the SDK client.
func NewProvider(apiKey, model string, logger *slog.Logger, opts ...option.RequestOption) (*Provider, error) {
	schema, err := inventorySchema()
	if err != nil {
		return nil, err
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Provider{
		client: openai.NewClient(opts...),
		model:  model,
		schema: schema,
		log:    logger.With("adapter", "openai"),
	}, nil
}

// Name identifies the provider in extraction attempts.
func (p *Provider) Name() string { return "openai" }

// Generate returns the model's JSON answer to req.Prompt.
func (p *Provider) Generate(ctx context.Context, req provider.GenerateRequest) (string, error) {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(p.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(req.Prompt),
		},
		Temperature:     param.NewOpt(req.Temperature),
		MaxOutputTokens: param.NewOpt(req.MaxTokens),
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "stall_inventory",
					Strict:      param.NewOpt(true),
					Schema:      p.schema,
					Description: param.NewOpt("Structured inventory of a market stall"),
				},
			},
		},
	}

	resp, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: responses call: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return "", fmt.Errorf("openai: %w", ErrEmptyResponse)
	}

	p.log.DebugContext(ctx, "openai response",
		slog.String("model", p.model),
		slog.Int64("output_tokens", resp.Usage.OutputTokens),
	)

	return content, nil
}

// inventorySchema reflects inventoryPayload into the map form the SDK expects.
func inventorySchema() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	raw, err := json.Marshal(reflector.Reflect(inventoryPayload{}))
	if err != nil {
		return nil, fmt.Errorf("openai: marshal schema: %w", err)
	}

	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("openai: unmarshal schema: %w", err)
	}
	return schema, nil
}
