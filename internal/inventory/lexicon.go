package inventory

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

//go:embed lexicon.yaml
var defaultLexiconYAML []byte

// CanonicalRule folds one product name into its canonical form.
type CanonicalRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// LabelSynonym lists product words that a vision label supports.
type LabelSynonym struct {
	Label string   `yaml:"label"`
	Words []string `yaml:"words"`
}

// Lexicon is the configurable vocabulary used to canonicalize and match
// inventory items. Rule order is significant.
type Lexicon struct {
	StopLabels    []string        `yaml:"stop_labels"`
	Canonical     []CanonicalRule `yaml:"canonical"`
	LabelSynonyms []LabelSynonym  `yaml:"label_synonyms"`
	NonProducts   []string        `yaml:"non_products"`
	GenericLabels []string        `yaml:"generic_labels"`

	stop       map[string]struct{}
	nonProduct map[string]struct{}
	generic    map[string]struct{}
}

// DefaultLexicon returns the built-in vocabulary.
func DefaultLexicon() *Lexicon {
	lex, err := ParseLexicon(defaultLexiconYAML)
	if err != nil {
		panic(fmt.Sprintf("inventory: embedded lexicon: %v", err))
	}
	return lex
}

// LoadLexicon reads a lexicon from path, or returns the built-in one when
// path is empty.
func LoadLexicon(path string) (*Lexicon, error) {
	if path == "" {
		return DefaultLexicon(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	lex, err := ParseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lex, nil
}

// ParseLexicon decodes and indexes a YAML lexicon document.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := lex.validate(); err != nil {
		return nil, err
	}
	lex.index()
	return &lex, nil
}

func (l *Lexicon) validate() error {
	for i, r := range l.Canonical {
		if domain.NormalizeText(r.From) == "" || domain.NormalizeText(r.To) == "" {
			return fmt.Errorf("canonical[%d]: from and to are required", i)
		}
	}
	for i, s := range l.LabelSynonyms {
		if strings.TrimSpace(s.Label) == "" || len(s.Words) == 0 {
			return fmt.Errorf("label_synonyms[%d]: label and words are required", i)
		}
	}
	return nil
}

func (l *Lexicon) index() {
	l.stop = make(map[string]struct{}, len(l.StopLabels))
	for _, s := range l.StopLabels {
		l.stop[s] = struct{}{}
	}
	l.nonProduct = make(map[string]struct{}, len(l.NonProducts))
	for _, s := range l.NonProducts {
		l.nonProduct[domain.NormalizeText(s)] = struct{}{}
	}
	l.generic = make(map[string]struct{}, len(l.GenericLabels))
	for _, s := range l.GenericLabels {
		l.generic[domain.NormalizeText(s)] = struct{}{}
	}
}

// Canonicalize normalizes a product name and applies the first matching
// canonical rule.
func (l *Lexicon) Canonicalize(name string) string {
	n := domain.NormalizeText(name)
	if n == "" {
		return ""
	}
	for _, r := range l.Canonical {
		if n == domain.NormalizeText(r.From) {
			return domain.NormalizeText(r.To)
		}
	}
	return n
}

// IsNonProduct reports whether a canonical name refers to people.
func (l *Lexicon) IsNonProduct(canonical string) bool {
	_, ok := l.nonProduct[domain.NormalizeText(canonical)]
	return ok
}

// IsStopLabel reports whether a vision label is always ignored.
// Stop labels match by exact provider spelling.
func (l *Lexicon) IsStopLabel(label string) bool {
	_, ok := l.stop[label]
	return ok
}

// IsGenericLabel reports whether a label is too broad to suggest.
func (l *Lexicon) IsGenericLabel(label string) bool {
	_, ok := l.generic[domain.NormalizeText(label)]
	return ok
}
