package insight

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"domainsight/internal/domain"
	"domainsight/internal/logger"
)

// ChainSlot carries one chain's trend result. A failed chain keeps its
// slot with the error flagged; it is never silently dropped.
type ChainSlot struct {
	Trends *domain.TrendSummary `json:"trends,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// ChainStat summarizes one chain inside the aggregate.
type ChainStat struct {
	Domains  int `json:"domains"`
	Activity int `json:"activity"`
	AvgScore int `json:"avgScore"`
}

// Aggregated merges the per-chain trend summaries.
type Aggregated struct {
	TotalDomains      int                      `json:"totalDomains"`
	TotalActivity     int                      `json:"totalActivity"`
	AvgScore          int                      `json:"avgScore"`
	ScoreDistribution domain.ScoreDistribution `json:"scoreDistribution"`
	ChainStats        map[string]ChainStat     `json:"chainStats"`
	TopTLDs           []domain.TLDStat         `json:"topTlds"`
}

// MultiTrends is the cross-chain analytics response.
type MultiTrends struct {
	Chains     map[string]ChainSlot `json:"chains"`
	Aggregated Aggregated           `json:"aggregated"`
	LastSync   time.Time            `json:"lastSync"`
}

// TrendsAcrossChains queries every configured chain concurrently and
// aggregates whatever succeeded. One chain's failure does not block
// the others; partial results are expected.
func (s *Service) TrendsAcrossChains(ctx context.Context) (*MultiTrends, error) {
	chains := s.client.Chains()
	slots := make([]ChainSlot, len(chains))

	g, gctx := errgroup.WithContext(ctx)
	for i, chain := range chains {
		i, chain := i, chain
		g.Go(func() error {
			trends, err := s.TrendsOn(gctx, chain)
			if err != nil {
				s.logger.Warn("failed to fetch trends from chain",
					logger.String("chain", chain),
					logger.Error(err))
				slots[i] = ChainSlot{Error: err.Error()}
				return nil
			}
			slots[i] = ChainSlot{Trends: trends}
			return nil
		})
	}
	// Per-chain errors live in their slots; the group never fails.
	_ = g.Wait()

	result := &MultiTrends{
		Chains:   make(map[string]ChainSlot, len(chains)),
		LastSync: s.now(),
	}
	for i, chain := range chains {
		result.Chains[chain] = slots[i]
	}
	result.Aggregated = aggregate(chains, slots)
	return result, nil
}

// aggregate merges successful chain summaries: totals are summed, TLD
// stats merged (counts and activity summed, average scores averaged
// pairwise) and the overall average recomputed from the merged
// histogram with the fixed 85/55/25 bucket weights.
func aggregate(chains []string, slots []ChainSlot) Aggregated {
	agg := Aggregated{
		ChainStats: make(map[string]ChainStat, len(chains)),
	}

	tldStats := make(map[string]*domain.TLDStat)
	tldOrder := make([]string, 0)

	for i, chain := range chains {
		trends := slots[i].Trends
		if trends == nil {
			continue
		}

		agg.TotalDomains += trends.TotalDomains
		agg.TotalActivity += trends.Insights.TotalActivity
		agg.ScoreDistribution.High += trends.ScoreDistribution.High
		agg.ScoreDistribution.Medium += trends.ScoreDistribution.Medium
		agg.ScoreDistribution.Low += trends.ScoreDistribution.Low

		for _, stat := range trends.TLDStats {
			merged, ok := tldStats[stat.TLD]
			if !ok {
				merged = &domain.TLDStat{TLD: stat.TLD}
				tldStats[stat.TLD] = merged
				tldOrder = append(tldOrder, stat.TLD)
				merged.AvgScore = stat.AvgScore
			} else {
				merged.AvgScore = (merged.AvgScore + stat.AvgScore) / 2
			}
			merged.Count += stat.Count
			merged.TotalActivity += stat.TotalActivity
		}

		agg.ChainStats[chain] = ChainStat{
			Domains:  trends.TotalDomains,
			Activity: trends.Insights.TotalActivity,
			AvgScore: trends.Insights.AvgScore,
		}
	}

	for _, merged := range tldStats {
		if merged.Count > 0 {
			merged.AvgActivity = float64(merged.TotalActivity) / float64(merged.Count)
		}
	}

	if agg.TotalDomains > 0 {
		weighted := agg.ScoreDistribution.High*domain.HistogramHighWeight +
			agg.ScoreDistribution.Medium*domain.HistogramMediumWeight +
			agg.ScoreDistribution.Low*domain.HistogramLowWeight
		agg.AvgScore = domain.ClampScore(float64(weighted) / float64(agg.TotalDomains))
	}

	ranked := make([]domain.TLDStat, 0, len(tldOrder))
	for _, tld := range tldOrder {
		ranked = append(ranked, *tldStats[tld])
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > domain.MaxTopTLDs {
		ranked = ranked[:domain.MaxTopTLDs]
	}
	agg.TopTLDs = ranked

	return agg
}
