package domain

import (
	"math"
	"strings"
	"unicode/utf8"
)

// SecondsPerDay converts expiry timestamps to day counts.
const SecondsPerDay = 24 * 60 * 60

// NameLength is the length feature: characters, not bytes, so
// internationalized names measure the way users read them.
func NameLength(name string) int {
	return utf8.RuneCountInString(name)
}

// HasKeyword reports whether name contains any configured keyword,
// case-insensitively.
func (d *ScoringData) HasKeyword(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range d.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Rarity returns the rarity score in [0,1] for a TLD, falling back to
// DefaultTLDRarity for TLDs absent from the table.
func (d *ScoringData) Rarity(tld string) float64 {
	if r, ok := d.TLDRarity[strings.ToLower(tld)]; ok {
		return r
	}
	return DefaultTLDRarity
}

// ExpiryDays returns the whole days between now and expiry, floored at
// zero. An absent expiry (zero timestamp) defaults to DefaultExpiryDays.
func ExpiryDays(expiry, now int64) int {
	if expiry == 0 {
		return DefaultExpiryDays
	}
	days := int(math.Floor(float64(expiry-now) / SecondsPerDay))
	if days < 0 {
		return 0
	}
	return days
}

// ExtractFeatures derives the predictor input from a raw record.
//
// It is a pure function: same record and same now produce the same
// vector. Missing optional fields degrade to defaults instead of
// failing (no expiry -> DefaultExpiryDays, no activities -> 0).
func (d *ScoringData) ExtractFeatures(rec Record, now int64) FeatureVector {
	return FeatureVector{
		Length:     NameLength(rec.Name),
		HasKeyword: d.HasKeyword(rec.Name),
		TLDRarity:  d.Rarity(rec.TLD),
		TxnHistory: rec.ActivityCount(),
		ExpiryDays: ExpiryDays(rec.Expiry, now),
	}
}

// ClampScore rounds a raw prediction to the nearest integer and clamps
// it into [0,100]. Every user-facing score goes through this.
func ClampScore(raw float64) int {
	score := int(math.Round(raw))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
