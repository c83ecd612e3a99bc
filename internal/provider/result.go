package provider

import "errors"

// ErrObjectNotFound is returned by storage-backed capabilities when the
// object key does not resolve in the bucket.
var ErrObjectNotFound = errors.New("object not found")

// LabelResult is a single detection from an image-labeling or moderation
// provider. Confidence is on the provider's 0..100 scale, unrounded.
type LabelResult struct {
	Name       string
	Confidence float64
}

// GenerateRequest is a single prompt for a generative text provider.
type GenerateRequest struct {
	Prompt      string
	MaxTokens   int64
	Temperature float64
}
