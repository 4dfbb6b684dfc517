package alerts

import (
	"fmt"
	"time"

	"domainsight/internal/domain"
)

// Config bounds which expiring domains become alerts.
type Config struct {
	// ExpiryThresholdDays keeps only domains expiring within this many days.
	ExpiryThresholdDays int `json:"expiryThreshold"`
	// MinScore keeps only domains scoring at least this value.
	MinScore int `json:"minScoreThreshold"`
}

// PriorityMinScore promotes an alert to high priority.
const PriorityMinScore = 90

// Scorer predicts a raw value for a flattened feature vector.
// *model.Forest satisfies it.
type Scorer interface {
	Predict(features []float64) (float64, error)
}

// ExpiringDomain is one scan match, alert-worthy or already alerted.
type ExpiringDomain struct {
	DomainName      string    `json:"domainName"`
	TLD             string    `json:"tld"`
	Score           int       `json:"score"`
	DaysUntilExpiry int       `json:"daysUntilExpiry"`
	Owner           string    `json:"owner"`
	ActivityCount   int       `json:"activityCount"`
	Timestamp       time.Time `json:"timestamp"`
}

// Result summarizes one batch scan.
type Result struct {
	Expiring     []ExpiringDomain
	Inserted     []domain.Alert
	NewAlerts    int
	TotalChecked int
}

// Scan walks a record batch, scores domains expiring within the
// configured window and appends previously unseen (domain, days)
// alerts to the log.
//
// Records without an expiry are skipped, as are already-expired ones.
// Scoring uses the actual days-until-expiry as the expiryDays feature,
// not the missing-expiry default. Scan does not fail on well-formed
// input; an upstream fetch failure is the caller's to surface, and
// yields a zero Result rather than a partial one.
func Scan(records []domain.Record, now time.Time, cfg Config, data *domain.ScoringData, scorer Scorer, log *Log) (Result, error) {
	result := Result{TotalChecked: len(records)}
	nowUnix := now.Unix()

	for _, rec := range records {
		if rec.Expiry == 0 {
			continue
		}

		days := domain.ExpiryDays(rec.Expiry, nowUnix)
		if days <= 0 || days > cfg.ExpiryThresholdDays {
			continue
		}

		features := domain.FeatureVector{
			Length:     domain.NameLength(rec.Name),
			HasKeyword: data.HasKeyword(rec.Name),
			TLDRarity:  data.Rarity(rec.TLD),
			TxnHistory: rec.ActivityCount(),
			ExpiryDays: days,
		}

		raw, err := scorer.Predict(features.Slice())
		if err != nil {
			return Result{}, fmt.Errorf("score %s: %w", rec.Name, err)
		}
		score := domain.ClampScore(raw)
		if score < cfg.MinScore {
			continue
		}

		result.Expiring = append(result.Expiring, ExpiringDomain{
			DomainName:      rec.Name,
			TLD:             rec.TLD,
			Score:           score,
			DaysUntilExpiry: days,
			Owner:           rec.Owner,
			ActivityCount:   rec.ActivityCount(),
			Timestamp:       now,
		})

		priority := domain.PriorityMedium
		if score >= PriorityMinScore {
			priority = domain.PriorityHigh
		}

		alert := domain.Alert{
			ID:              fmt.Sprintf("%s-%d", rec.Name, now.UnixMilli()),
			Type:            domain.AlertTypeExpiringHighScore,
			DomainName:      rec.Name,
			TLD:             rec.TLD,
			Score:           score,
			DaysUntilExpiry: days,
			Owner:           rec.Owner,
			Timestamp:       now,
			Priority:        priority,
		}

		if log.Insert(alert) {
			result.Inserted = append(result.Inserted, alert)
			result.NewAlerts++
		}
	}

	return result, nil
}
