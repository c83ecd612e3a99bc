// Package objectkey canonicalizes object-storage keys produced by the mobile
// upload layer, which is inconsistent about the "public/" access-level prefix.
package objectkey

import (
	"regexp"
	"strings"
)

// PublicPrefix is the access-level prefix the upload layer puts on keys.
const PublicPrefix = "public/"

const doublePrefix = PublicPrefix + PublicPrefix

// MaxCandidates bounds how many keys a lookup will try.
const MaxCandidates = 4

var repeatedSlashes = regexp.MustCompile(`/{2,}`)

// Normalize trims the key, collapses repeated separators, strips the
// leading slash and fixes a duplicated "public/public/" prefix.
// A key made only of slashes and spaces normalizes to "".
func Normalize(raw string) string {
	key := repeatedSlashes.ReplaceAllString(strings.TrimSpace(raw), "/")
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return ""
	}
	if strings.HasPrefix(key, doublePrefix) {
		key = PublicPrefix + strings.TrimPrefix(key, doublePrefix)
	}
	return key
}

// Candidates returns the keys to try in order, starting with the normalized
// key, without duplicates and at most MaxCandidates long. An empty key
// yields no candidates.
func Candidates(raw string) []string {
	key := Normalize(raw)
	if key == "" {
		return nil
	}
	out := make([]string, 0, MaxCandidates)
	push := func(k string) {
		if k == "" {
			return
		}
		for _, existing := range out {
			if existing == k {
				return
			}
		}
		out = append(out, k)
	}

	push(key)
	if !strings.HasPrefix(key, PublicPrefix) {
		push(PublicPrefix + key)
	}
	if strings.HasPrefix(key, PublicPrefix) {
		push(doublePrefix + strings.TrimPrefix(key, PublicPrefix))
	}
	if strings.HasPrefix(key, doublePrefix) {
		push(PublicPrefix + strings.TrimPrefix(key, doublePrefix))
	}

	if len(out) > MaxCandidates {
		out = out[:MaxCandidates]
	}
	return out
}
