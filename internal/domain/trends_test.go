package domain

import (
	"testing"
)

// 2024-01-15 and 2024-02-15 UTC
const (
	tsJanuary  = int64(1705276800)
	tsFebruary = int64(1707955200)
)

func activitiesAt(ts int64, n int) []Activity {
	acts := make([]Activity, n)
	for i := range acts {
		acts[i] = Activity{Type: "TRANSFER", Timestamp: ts}
	}
	return acts
}

func TestEstimateScore(t *testing.T) {
	data := DefaultScoringData()

	tests := []struct {
		name     string
		rec      Record
		expected float64
	}{
		{
			// keyword 30 + rarity 0.9*30 + capped activity 20
			name:     "keyword rare tld busy domain",
			rec:      Record{Name: "btc.ai", TLD: "ai", Activities: activitiesAt(tsFebruary, 25)},
			expected: 77,
		},
		{
			// default rarity only
			name:     "plain domain",
			rec:      Record{Name: "zzz.xyz", TLD: "xyz"},
			expected: 9,
		},
		{
			// short-name bonus 20 + default rarity 9
			name:     "short name without keyword",
			rec:      Record{Name: "q.ro", TLD: "ro"},
			expected: 29,
		},
		{
			// 4 characters (6 bytes): bonus 20 + default rarity 9
			name:     "short unicode name measured in characters",
			rec:      Record{Name: "日.ro", TLD: "ro"},
			expected: 29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := data.EstimateScore(tt.rec); got != tt.expected {
				t.Errorf("EstimateScore(%q) = %v, want %v", tt.rec.Name, got, tt.expected)
			}
		})
	}
}

func TestEstimateScoreActivityCap(t *testing.T) {
	data := DefaultScoringData()

	capped := data.EstimateScore(Record{Name: "zzz.xyz", TLD: "xyz", Activities: activitiesAt(tsJanuary, 50)})
	atCap := data.EstimateScore(Record{Name: "zzz.xyz", TLD: "xyz", Activities: activitiesAt(tsJanuary, 20)})
	if capped != atCap {
		t.Errorf("EstimateScore with 50 activities = %v, want same as 20 activities (%v)", capped, atCap)
	}
}

func TestComputeTrends(t *testing.T) {
	data := DefaultScoringData()

	records := []Record{
		{Name: "crypto.eth", TLD: "eth", Activities: append(activitiesAt(tsJanuary, 3), activitiesAt(tsFebruary, 2)...)},
		{Name: "dev.eth", TLD: "eth"},
		{Name: "btc.ai", TLD: "ai", Activities: activitiesAt(tsFebruary, 25)},
		{Name: "zzz.xyz", TLD: "xyz"},
	}

	trends := data.ComputeTrends(records)

	if trends.TotalDomains != 4 {
		t.Errorf("TotalDomains = %v, want 4", trends.TotalDomains)
	}

	// Estimates: btc.ai 77 (high), crypto.eth 44 (medium), the rest low.
	wantDist := ScoreDistribution{High: 1, Medium: 1, Low: 2}
	if trends.ScoreDistribution != wantDist {
		t.Errorf("ScoreDistribution = %+v, want %+v", trends.ScoreDistribution, wantDist)
	}

	if len(trends.TLDStats) != 3 {
		t.Fatalf("TLDStats length = %v, want 3", len(trends.TLDStats))
	}
	if trends.TLDStats[0].TLD != "eth" || trends.TLDStats[0].Count != 2 {
		t.Errorf("top TLD = %v (count %v), want eth (count 2)",
			trends.TLDStats[0].TLD, trends.TLDStats[0].Count)
	}
	if trends.TLDStats[0].AvgActivity != 2.5 {
		t.Errorf("eth AvgActivity = %v, want 2.5", trends.TLDStats[0].AvgActivity)
	}
	// rarity 0.3 * 50 + avgActivity 2.5 * 2
	if trends.TLDStats[0].AvgScore != 20 {
		t.Errorf("eth AvgScore = %v, want 20", trends.TLDStats[0].AvgScore)
	}

	wantMonths := []MonthlyActivity{
		{Month: "2024-01", Count: 3},
		{Month: "2024-02", Count: 27},
	}
	if len(trends.MonthlyActivity) != len(wantMonths) {
		t.Fatalf("MonthlyActivity = %v, want %v", trends.MonthlyActivity, wantMonths)
	}
	for i := range wantMonths {
		if trends.MonthlyActivity[i] != wantMonths[i] {
			t.Errorf("MonthlyActivity[%d] = %+v, want %+v", i, trends.MonthlyActivity[i], wantMonths[i])
		}
	}

	if trends.Insights.MostPopularTLD != "eth" {
		t.Errorf("MostPopularTLD = %v, want eth", trends.Insights.MostPopularTLD)
	}
	if trends.Insights.TotalActivity != 30 {
		t.Errorf("TotalActivity = %v, want 30", trends.Insights.TotalActivity)
	}
	// (1*85 + 1*55 + 2*25) / 4 = 47.5 -> 48
	if trends.Insights.AvgScore != 48 {
		t.Errorf("AvgScore = %v, want 48", trends.Insights.AvgScore)
	}
}

func TestComputeTrendsEmptyBatch(t *testing.T) {
	data := DefaultScoringData()

	trends := data.ComputeTrends(nil)

	if trends.TotalDomains != 0 {
		t.Errorf("TotalDomains = %v, want 0", trends.TotalDomains)
	}
	if trends.Insights.AvgScore != 0 {
		t.Errorf("AvgScore = %v, want 0", trends.Insights.AvgScore)
	}
	if trends.Insights.MostPopularTLD != "eth" {
		t.Errorf("MostPopularTLD = %v, want fallback eth", trends.Insights.MostPopularTLD)
	}
	if len(trends.TLDStats) != 0 {
		t.Errorf("TLDStats = %v, want empty", trends.TLDStats)
	}
}

func TestComputeTrendsTieBreakByFirstAppearance(t *testing.T) {
	data := DefaultScoringData()

	records := []Record{
		{Name: "one.art", TLD: "art"},
		{Name: "two.dev", TLD: "dev"},
	}

	trends := data.ComputeTrends(records)
	if len(trends.TLDStats) != 2 {
		t.Fatalf("TLDStats length = %v, want 2", len(trends.TLDStats))
	}
	if trends.TLDStats[0].TLD != "art" || trends.TLDStats[1].TLD != "dev" {
		t.Errorf("tied TLDs ordered %v, %v; want art, dev (first appearance)",
			trends.TLDStats[0].TLD, trends.TLDStats[1].TLD)
	}
}

func TestComputeTrendsTopTLDCap(t *testing.T) {
	data := DefaultScoringData()

	records := make([]Record, 0, 12)
	tlds := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for _, tld := range tlds {
		records = append(records, Record{Name: "zzz." + tld, TLD: tld})
	}

	trends := data.ComputeTrends(records)
	if len(trends.TLDStats) != MaxTopTLDs {
		t.Errorf("TLDStats length = %v, want %v", len(trends.TLDStats), MaxTopTLDs)
	}
}
