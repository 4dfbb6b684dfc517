package domain

import (
	"sort"
	"time"
)

// Heuristic estimate weights. The trend path deliberately bypasses the
// trained model: batches can be large and the cheap formula is close
// enough for distribution buckets. Do not unify with model scoring,
// the trend numbers are observable output.
const (
	estimateShortNameBonus = 20
	estimateKeywordBonus   = 30
	estimateRarityWeight   = 30
	estimateActivityCap    = 20
	shortNameMaxLen        = 5
)

// Score histogram bucket boundaries and representative weights.
const (
	HistogramHighMin   = 70
	HistogramMediumMin = 40

	HistogramHighWeight   = 85
	HistogramMediumWeight = 55
	HistogramLowWeight    = 25
)

// TLD average-score formula weights.
const (
	tldScoreRarityWeight   = 50
	tldScoreActivityWeight = 2
)

// MaxTopTLDs caps the per-TLD breakdown to the most popular entries.
const MaxTopTLDs = 10

// TLDStat aggregates domains sharing a TLD.
type TLDStat struct {
	TLD           string  `json:"tld"`
	Count         int     `json:"count"`
	TotalActivity int     `json:"totalActivity"`
	AvgActivity   float64 `json:"avgActivity"`
	AvgScore      float64 `json:"avgScore"`
}

// MonthlyActivity counts activities in a YYYY-MM bucket.
type MonthlyActivity struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ScoreDistribution is the coarse 3-bucket histogram of estimated scores.
type ScoreDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// TrendInsights summarizes a trend batch for display.
type TrendInsights struct {
	MostPopularTLD string `json:"mostPopularTld"`
	TotalActivity  int    `json:"totalActivity"`
	AvgScore       int    `json:"avgScore"`
}

// TrendSummary is the aggregated analytics output over a record batch.
type TrendSummary struct {
	TotalDomains      int               `json:"totalDomains"`
	TLDStats          []TLDStat         `json:"tldStats"`
	MonthlyActivity   []MonthlyActivity `json:"monthlyActivity"`
	ScoreDistribution ScoreDistribution `json:"scoreDistribution"`
	Insights          TrendInsights     `json:"insights"`
}

// EstimateScore computes the cheap heuristic score used for histogram
// bucketing, clamped to [0,100].
func (d *ScoringData) EstimateScore(rec Record) float64 {
	estimate := 0.0
	if NameLength(rec.Name) < shortNameMaxLen {
		estimate += estimateShortNameBonus
	}
	if d.HasKeyword(rec.Name) {
		estimate += estimateKeywordBonus
	}
	estimate += d.Rarity(rec.TLD) * estimateRarityWeight

	activity := rec.ActivityCount()
	if activity > estimateActivityCap {
		activity = estimateActivityCap
	}
	estimate += float64(activity)

	if estimate < 0 {
		return 0
	}
	if estimate > 100 {
		return 100
	}
	return estimate
}

// ComputeTrends aggregates per-TLD stats, monthly activity and the
// score histogram over a batch of records. An empty batch yields zero
// totals and empty breakdowns.
func (d *ScoringData) ComputeTrends(records []Record) TrendSummary {
	tldStats := make(map[string]*TLDStat)
	tldOrder := make([]string, 0)
	monthly := make(map[string]int)
	var dist ScoreDistribution

	for _, rec := range records {
		stat, ok := tldStats[rec.TLD]
		if !ok {
			stat = &TLDStat{TLD: rec.TLD}
			tldStats[rec.TLD] = stat
			tldOrder = append(tldOrder, rec.TLD)
		}
		stat.Count++
		stat.TotalActivity += rec.ActivityCount()

		for _, act := range rec.Activities {
			month := time.Unix(act.Timestamp, 0).UTC().Format("2006-01")
			monthly[month]++
		}

		switch estimate := d.EstimateScore(rec); {
		case estimate >= HistogramHighMin:
			dist.High++
		case estimate >= HistogramMediumMin:
			dist.Medium++
		default:
			dist.Low++
		}
	}

	// Derived averages per TLD
	for _, stat := range tldStats {
		stat.AvgActivity = float64(stat.TotalActivity) / float64(stat.Count)
		avgScore := d.Rarity(stat.TLD)*tldScoreRarityWeight + stat.AvgActivity*tldScoreActivityWeight
		if avgScore > 100 {
			avgScore = 100
		}
		if avgScore < 0 {
			avgScore = 0
		}
		stat.AvgScore = avgScore
	}

	topTLDs := topTLDStats(tldStats, tldOrder, MaxTopTLDs)

	months := make([]MonthlyActivity, 0, len(monthly))
	totalActivity := 0
	for month, count := range monthly {
		months = append(months, MonthlyActivity{Month: month, Count: count})
		totalActivity += count
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	mostPopular := "eth"
	if len(topTLDs) > 0 {
		mostPopular = topTLDs[0].TLD
	}

	avgScore := 0
	if len(records) > 0 {
		weighted := dist.High*HistogramHighWeight + dist.Medium*HistogramMediumWeight + dist.Low*HistogramLowWeight
		avgScore = ClampScore(float64(weighted) / float64(len(records)))
	}

	return TrendSummary{
		TotalDomains:      len(records),
		TLDStats:          topTLDs,
		MonthlyActivity:   months,
		ScoreDistribution: dist,
		Insights: TrendInsights{
			MostPopularTLD: mostPopular,
			TotalActivity:  totalActivity,
			AvgScore:       avgScore,
		},
	}
}

// topTLDStats ranks TLDs by domain count descending, ties broken by
// first appearance in the batch.
func topTLDStats(stats map[string]*TLDStat, order []string, limit int) []TLDStat {
	ranked := make([]TLDStat, 0, len(order))
	for _, tld := range order {
		ranked = append(ranked, *stats[tld])
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
