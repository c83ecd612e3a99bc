package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/internal/provider"
)

// ErrNoGenerators is reported when extraction runs without any generator.
var ErrNoGenerators = errors.New("no generators configured")

// errUnusableOutput marks a response that did not contain usable items.
var errUnusableOutput = errors.New("unusable model output")

// Generator produces raw model output for an extraction prompt.
type Generator interface {
	Name() string
	Generate(ctx context.Context, req provider.GenerateRequest) (string, error)
}

// AttemptError is the failure of one generator.
type AttemptError struct {
	Generator string
	Err       error
}

// ExtractionError reports that no generator produced a usable extraction.
// Callers recover from it with ParseFallback.
type ExtractionError struct {
	Attempts []AttemptError
}

func (e *ExtractionError) Error() string {
	if len(e.Attempts) == 0 {
		return "extraction: " + ErrNoGenerators.Error()
	}
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = fmt.Sprintf("%s: %v", a.Generator, a.Err)
	}
	return "extraction: " + strings.Join(parts, "; ")
}

func (e *ExtractionError) Unwrap() []error {
	if len(e.Attempts) == 0 {
		return []error{ErrNoGenerators}
	}
	errs := make([]error, len(e.Attempts))
	for i, a := range e.Attempts {
		errs[i] = a.Err
	}
	return errs
}

// ExtractorConfig holds per-call limits for generative extraction.
type ExtractorConfig struct {
	Timeout     time.Duration
	MaxTokens   int64
	Temperature float64
}

// Extractor converts free-text inventory into items by asking each
// configured generator in order until one returns usable JSON.
type Extractor struct {
	generators []Generator
	cfg        ExtractorConfig
	log        *slog.Logger
}

// NewExtractor creates a new Extractor. Nil generators are skipped.
func NewExtractor(log *slog.Logger, cfg ExtractorConfig, generators ...Generator) *Extractor {
	gens := make([]Generator, 0, len(generators))
	for _, g := range generators {
		if g != nil {
			gens = append(gens, g)
		}
	}
	return &Extractor{
		generators: gens,
		cfg:        cfg,
		log:        log.With("service", "inventory"),
	}
}

// Extract runs the generator chain. On failure it returns an
// *ExtractionError describing every attempt.
func (e *Extractor) Extract(ctx context.Context, text string, labels []domain.Label) (Extraction, error) {
	if len(e.generators) == 0 {
		return Extraction{}, &ExtractionError{}
	}

	req := provider.GenerateRequest{
		Prompt:      buildPrompt(text, labels),
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	var attempts []AttemptError
	for _, g := range e.generators {
		items, err := e.attempt(ctx, g, req)
		if err == nil {
			return Extraction{Items: items, Source: g.Name()}, nil
		}

		e.log.WarnContext(ctx, "inventory generator failed",
			slog.String("generator", g.Name()),
			slog.String("error", err.Error()),
		)
		attempts = append(attempts, AttemptError{Generator: g.Name(), Err: err})

		if ctx.Err() != nil {
			break
		}
	}

	return Extraction{}, &ExtractionError{Attempts: attempts}
}

func (e *Extractor) attempt(ctx context.Context, g Generator, req provider.GenerateRequest) ([]ExtractedItem, error) {
	callCtx := ctx
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	out, err := g.Generate(callCtx, req)
	if err != nil {
		return nil, err
	}
	return parseItems(out)
}

// parseItems reads the {"items": [...]} object embedded in a model response.
func parseItems(out string) ([]ExtractedItem, error) {
	jsonStr, err := extractJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnusableOutput, err)
	}

	var payload struct {
		Items []ExtractedItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", errUnusableOutput, err)
	}

	items := make([]ExtractedItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		if it.name() == "" {
			continue
		}
		it.Unit = trimmedOrNil(it.Unit)
		it.Category = trimmedOrNil(it.Category)
		items = append(items, it)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items", errUnusableOutput)
	}
	return items, nil
}

// extractJSON returns the substring between the first '{' and the last '}'.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// buildPrompt creates the extraction prompt. Vendors speak Bolivian
// Spanish, so the instructions are in Spanish.
func buildPrompt(text string, labels []domain.Label) string {
	if labels == nil {
		labels = []domain.Label{}
	}
	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		labelsJSON = []byte("[]")
	}

	return fmt.Sprintf(`Eres un extractor de inventario para un puesto de venta en Bolivia.
Entrada: texto hablado (español) + etiquetas de visión (evidencia visual).
Objetivo: devolver un inventario estructurado y fácil de entender.

REGLAS:
- Devuelve SOLO JSON válido, sin explicación.
- Si el texto dice cantidades (ej "10 poleras"), respétalas aunque no se vean en la foto.
- Normaliza nombres: "tomatodo" -> "botella", "polera/camiseta" -> "polera", "gafas de sol/lentes" -> "gafas de sol".
- No inventes productos. Si aparece solo en las etiquetas, NO lo metas como item confirmado.
- Si en el texto aparece "hombre/persona", NO lo trates como producto.

FORMATO:
{
  "items":[
    {
      "canonical": string,
      "display": string,
      "qty": number,
      "unit": "unidad"|"par"|"paquete"|null,
      "category": string|null,
      "tags": string[],
      "suggested": boolean
    }
  ]
}

Texto:
"""%s"""

Etiquetas de visión:
%s
`, text, labelsJSON)
}
