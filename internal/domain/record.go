package domain

import "time"

// Activity is a single on-chain event observed for a domain.
type Activity struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

// Record is a tokenized domain as returned by the subgraph.
//
// It is read-only to the scoring core: all inputs (subgraph, tests,
// fixtures) are merged into this structure before scoring.
//
// Expiry is a Unix timestamp in seconds; 0 means "no expiry recorded"
// and scoring falls back to DefaultExpiryDays.
type Record struct {
	Name       string     `json:"name"`
	TLD        string     `json:"tld"`
	Expiry     int64      `json:"expiry,omitempty"`
	Owner      string     `json:"owner,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
}

// ActivityCount returns the number of recorded activities.
func (r Record) ActivityCount() int {
	return len(r.Activities)
}

// FeatureVector is the fixed 5-dimensional input of the score predictor.
//
// The predictor consumes it flattened in the order
// [length, hasKeyword, tldRarity, txnHistory, expiryDays].
type FeatureVector struct {
	Length     int     `json:"length"`
	HasKeyword bool    `json:"hasKeyword"`
	TLDRarity  float64 `json:"tldRarity"`
	TxnHistory int     `json:"txnHistory"`
	ExpiryDays int     `json:"expiryDays"`
}

// Slice flattens the vector into the fixed predictor order.
func (f FeatureVector) Slice() []float64 {
	hasKeyword := 0.0
	if f.HasKeyword {
		hasKeyword = 1.0
	}
	return []float64{
		float64(f.Length),
		hasKeyword,
		f.TLDRarity,
		float64(f.TxnHistory),
		float64(f.ExpiryDays),
	}
}

// Alert is an expiry alert for a high-score domain.
//
// An alert is uniquely identified by its (DomainName, DaysUntilExpiry)
// pair; it is created once and never updated or removed.
type Alert struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	DomainName      string    `json:"domainName"`
	TLD             string    `json:"tld"`
	Score           int       `json:"score"`
	DaysUntilExpiry int       `json:"daysUntilExpiry"`
	Owner           string    `json:"owner"`
	Timestamp       time.Time `json:"timestamp"`
	Priority        Priority  `json:"priority"`
}

// AlertTypeExpiringHighScore is the only alert type emitted today.
const AlertTypeExpiringHighScore = "expiring_high_score"
