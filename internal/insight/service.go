// Package insight is the valuation core facade: it wires feature
// extraction, the trained ensemble, recommendations, trend analytics
// and the expiry-alert scanner behind plain methods the HTTP layer
// calls.
package insight

import (
	"context"
	"fmt"
	"time"

	"domainsight/internal/alerts"
	"domainsight/internal/domain"
	"domainsight/internal/logger"
	"domainsight/internal/model"
	"domainsight/internal/sources/subgraph"
)

// AlertMirror persists newly inserted alerts. Implemented by the redis
// store; nil disables persistence.
type AlertMirror interface {
	SaveAlertsMany(ctx context.Context, alerts []domain.Alert) error
}

// Options wires a Service.
type Options struct {
	Logger    logger.Logger
	Data      *domain.ScoringData
	Model     *model.Forest
	Client    *subgraph.Client
	AlertLog  *alerts.Log
	AlertCfg  alerts.Config
	Mirror    AlertMirror
	BatchSize int
	TimeNow   func() time.Time
}

// Service exposes the scoring core. The model is read-only after
// training, so all methods are safe for concurrent use; only the
// alert log mutates, behind its own lock.
type Service struct {
	logger    logger.Logger
	data      *domain.ScoringData
	model     *model.Forest
	client    *subgraph.Client
	alertLog  *alerts.Log
	alertCfg  alerts.Config
	mirror    AlertMirror
	batchSize int
	now       func() time.Time
}

// New creates the service.
func New(opts Options) *Service {
	if opts.TimeNow == nil {
		opts.TimeNow = time.Now
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = subgraph.DefaultBatchSize
	}
	return &Service{
		logger:    opts.Logger,
		data:      opts.Data,
		model:     opts.Model,
		client:    opts.Client,
		alertLog:  opts.AlertLog,
		alertCfg:  opts.AlertCfg,
		mirror:    opts.Mirror,
		batchSize: opts.BatchSize,
		now:       opts.TimeNow,
	}
}

// DomainSummary echoes the scored record back to the caller.
type DomainSummary struct {
	Name          string `json:"name"`
	TLD           string `json:"tld"`
	Expiry        int64  `json:"expiry,omitempty"`
	Owner         string `json:"owner,omitempty"`
	ActivityCount int    `json:"activityCount"`
}

// ScoreResult is the full scoring response for one domain.
type ScoreResult struct {
	DomainName      string                  `json:"domainName"`
	Chain           string                  `json:"chain,omitempty"`
	Score           int                     `json:"score"`
	Features        domain.FeatureVector    `json:"features"`
	Domain          DomainSummary           `json:"domainData"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// ScoreDomain scores a domain on the primary chain.
func (s *Service) ScoreDomain(ctx context.Context, name string) (*ScoreResult, error) {
	return s.ScoreDomainOn(ctx, s.client.Primary(), name)
}

// ScoreDomainOn fetches a domain from the given chain, extracts its
// features, predicts and clamps the score and attaches
// recommendations.
func (s *Service) ScoreDomainOn(ctx context.Context, chain, name string) (*ScoreResult, error) {
	if name == "" {
		return nil, domain.ErrEmptyDomainName
	}
	if !s.client.HasChain(chain) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownChain, chain)
	}

	rec, err := s.client.FetchDomain(ctx, chain, name)
	if err != nil {
		return nil, err
	}

	features := s.data.ExtractFeatures(*rec, s.now().Unix())
	raw, err := s.model.Predict(features.Slice())
	if err != nil {
		return nil, err
	}
	score := domain.ClampScore(raw)

	s.logger.Info("scored domain",
		logger.String("domain", rec.Name),
		logger.String("chain", chain),
		logger.Int("score", score))

	return &ScoreResult{
		DomainName: name,
		Chain:      chain,
		Score:      score,
		Features:   features,
		Domain: DomainSummary{
			Name:          rec.Name,
			TLD:           rec.TLD,
			Expiry:        rec.Expiry,
			Owner:         rec.Owner,
			ActivityCount: rec.ActivityCount(),
		},
		Recommendations: domain.Recommend(score, &features, rec.Name),
	}, nil
}

// Recommend maps an externally supplied score and feature set to the
// ordered recommendation list.
func (s *Service) Recommend(score int, features *domain.FeatureVector, name string) []domain.Recommendation {
	return domain.Recommend(score, features, name)
}

// Trends aggregates trend analytics over the primary chain.
func (s *Service) Trends(ctx context.Context) (*domain.TrendSummary, error) {
	return s.TrendsOn(ctx, s.client.Primary())
}

// TrendsOn aggregates trend analytics for one chain.
func (s *Service) TrendsOn(ctx context.Context, chain string) (*domain.TrendSummary, error) {
	records, err := s.client.FetchDomains(ctx, chain, s.batchSize)
	if err != nil {
		return nil, err
	}
	trends := s.data.ComputeTrends(records)
	return &trends, nil
}

// CheckExpiring fetches the current batch from the primary chain and
// runs the expiry-alert scan over it. An upstream failure yields a
// zero result alongside the error; it never partially mutates the
// alert log. Newly inserted alerts are mirrored to persistence best
// effort.
func (s *Service) CheckExpiring(ctx context.Context) (alerts.Result, error) {
	records, err := s.client.FetchDomains(ctx, s.client.Primary(), s.batchSize)
	if err != nil {
		return alerts.Result{}, err
	}

	result, err := alerts.Scan(records, s.now(), s.alertCfg, s.data, s.model, s.alertLog)
	if err != nil {
		return alerts.Result{}, err
	}

	if s.mirror != nil && len(result.Inserted) > 0 {
		if err := s.mirror.SaveAlertsMany(ctx, result.Inserted); err != nil {
			s.logger.Warn("failed to persist alerts",
				logger.Error(err))
		}
	}

	if result.NewAlerts > 0 {
		s.logger.Info("expiry scan produced new alerts",
			logger.Int("new_alerts", result.NewAlerts),
			logger.Int("checked", result.TotalChecked))
	}

	return result, nil
}

// AlertConfig returns the active alert thresholds.
func (s *Service) AlertConfig() alerts.Config { return s.alertCfg }

// AlertLog returns the shared alert history.
func (s *Service) AlertLog() *alerts.Log { return s.alertLog }

// Chains returns the configured chain names.
func (s *Service) Chains() []string { return s.client.Chains() }

// Endpoints returns the chain -> endpoint map.
func (s *Service) Endpoints() map[string]string { return s.client.Endpoints() }
