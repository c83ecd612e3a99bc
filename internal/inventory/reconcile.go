package inventory

import (
	"math"
	"strings"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// Confidence scoring constants.
const (
	ConfidenceStated     = 0.78
	ConfidenceSuggested  = 0.60
	ConfidenceVisionHit  = 0.14
	ConfidenceCap        = 0.95
	ConfidenceVisionOnly = 0.65
)

// Reconciler merges extracted items with vision labels. It is pure.
type Reconciler struct {
	lex *Lexicon
}

// NewReconciler creates a Reconciler; a nil lexicon selects the default.
func NewReconciler(lex *Lexicon) *Reconciler {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Reconciler{lex: lex}
}

// Reconcile canonicalizes and deduplicates items, scores them against the
// labels, and lists labels no item accounted for as vision-only suggestions.
func (r *Reconciler) Reconcile(items []ExtractedItem, labels []domain.Label) domain.Inventory {
	usable := make([]domain.Label, 0, len(labels))
	for _, l := range labels {
		if l.Name != "" && !r.lex.IsStopLabel(l.Name) {
			usable = append(usable, l)
		}
	}

	confirmed := make([]domain.InventoryItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, it := range items {
		canonical := r.lex.Canonicalize(it.name())
		if canonical == "" || r.lex.IsNonProduct(canonical) {
			continue
		}

		qty := it.quantity()
		matched := r.matchLabels(canonical, usable)
		confidence := score(it.Suggested, len(matched) > 0)

		if i, ok := index[canonical]; ok {
			existing := &confirmed[i]
			existing.Qty += qty
			existing.Confidence = math.Max(existing.Confidence, confidence)
			existing.Evidence.Vision = union(existing.Evidence.Vision, matched)
			continue
		}

		display := strings.TrimSpace(it.Display)
		if display == "" {
			display = canonical
		}

		unit := domain.DefaultUnit
		if u := trimmedOrNil(it.Unit); u != nil {
			unit = *u
		}

		category := trimmedOrNil(it.Category)
		if category == nil && len(matched) > 0 {
			first := matched[0]
			category = &first
		}

		tags := it.Tags
		if tags == nil {
			tags = []string{}
		}

		index[canonical] = len(confirmed)
		confirmed = append(confirmed, domain.InventoryItem{
			Canonical:  canonical,
			Display:    display,
			Qty:        qty,
			Unit:       unit,
			Category:   category,
			Tags:       tags,
			Evidence:   domain.Evidence{Text: true, Vision: matched},
			Confidence: confidence,
			Suggested:  false,
		})
	}

	used := make(map[string]struct{})
	for _, it := range confirmed {
		for _, v := range it.Evidence.Vision {
			used[v] = struct{}{}
		}
	}

	visionOnly := make([]domain.InventoryItem, 0)
	for _, l := range usable {
		if _, ok := used[l.Name]; ok {
			continue
		}
		if r.lex.IsGenericLabel(l.Name) {
			continue
		}
		used[l.Name] = struct{}{}

		category := l.Name
		visionOnly = append(visionOnly, domain.InventoryItem{
			Canonical:  r.lex.Canonicalize(l.Name),
			Display:    l.Name,
			Qty:        1,
			Unit:       domain.DefaultUnit,
			Category:   &category,
			Tags:       []string{},
			Evidence:   domain.Evidence{Text: false, Vision: []string{l.Name}},
			Confidence: ConfidenceVisionOnly,
			Suggested:  true,
		})
	}

	return domain.Inventory{Items: confirmed, VisionOnly: visionOnly}
}

// matchLabels returns the detected labels supporting canonical: labels whose
// name contains or is contained in it, then synonym-table labels whose
// trigger words appear in it, provided that label was detected.
func (r *Reconciler) matchLabels(canonical string, usable []domain.Label) []string {
	matched := make([]string, 0)

	for _, l := range usable {
		ln := domain.NormalizeText(l.Name)
		if ln == "" {
			continue
		}
		if strings.Contains(canonical, ln) || strings.Contains(ln, canonical) {
			matched = append(matched, l.Name)
		}
	}

	for _, syn := range r.lex.LabelSynonyms {
		detected, ok := findLabel(usable, syn.Label)
		if !ok {
			continue
		}
		for _, w := range syn.Words {
			if w = domain.NormalizeText(w); w != "" && strings.Contains(canonical, w) {
				matched = append(matched, detected)
				break
			}
		}
	}

	return union(nil, matched)
}

func findLabel(labels []domain.Label, name string) (string, bool) {
	for _, l := range labels {
		if strings.EqualFold(l.Name, name) {
			return l.Name, true
		}
	}
	return "", false
}

// score computes an item's confidence, rounded to two decimals.
func score(suggested, visionHit bool) float64 {
	c := ConfidenceStated
	if suggested {
		c = ConfidenceSuggested
	}
	if visionHit {
		c += ConfidenceVisionHit
	}
	return math.Round(math.Min(ConfidenceCap, c)*100) / 100
}

// union appends the values of b missing from a, keeping first-seen order.
func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
