package domain

// TrainingSample is one labeled row of the pre-trained valuation dataset.
// Features follow the fixed predictor order
// [length, hasKeyword, tldRarity, txnHistory, expiryDays].
type TrainingSample struct {
	Features [5]float64 `yaml:"features"`
	Score    float64    `yaml:"score"`
}

// ScoringData holds the market-knowledge tables the valuation engine
// runs on: the keyword list, the TLD rarity map and the training set.
//
// The compiled-in defaults stand in for real market data. All three
// tables can be replaced wholesale from a YAML file (see
// sources/scoringdata) without touching the engine.
type ScoringData struct {
	Keywords  []string           `yaml:"keywords"`
	TLDRarity map[string]float64 `yaml:"tld_rarity"`
	Samples   []TrainingSample   `yaml:"training_samples"`
}

const (
	// DefaultTLDRarity is the rarity assigned to TLDs absent from the table.
	DefaultTLDRarity = 0.3

	// DefaultExpiryDays is used when a record carries no expiry.
	DefaultExpiryDays = 365
)

// DefaultScoringData returns the built-in tables.
func DefaultScoringData() *ScoringData {
	return &ScoringData{
		Keywords: []string{
			"crypto", "nft", "defi", "dao", "web3", "meta", "game",
			"art", "ai", "tech", "btc", "sol", "app", "dev", "eth",
		},
		TLDRarity: map[string]float64{
			"eth":    0.3,
			"com":    0.2,
			"org":    0.4,
			"net":    0.3,
			"crypto": 0.9,
			"nft":    0.8,
			"defi":   0.8,
			"dao":    0.9,
			"web3":   0.7,
			"meta":   0.7,
			"game":   0.8,
			"art":    0.6,
			"ai":     0.9,
			"tech":   0.7,
			"btc":    0.8,
			"sol":    0.9,
			"app":    0.7,
			"dev":    0.8,
		},
		Samples: defaultTrainingSamples(),
	}
}

// defaultTrainingSamples is the fixed 30-row dataset the model is
// trained on at startup.
func defaultTrainingSamples() []TrainingSample {
	return []TrainingSample{
		{Features: [5]float64{3, 1, 0.9, 15, 95}, Score: 95},
		{Features: [5]float64{8, 0, 0.3, 2, 45}, Score: 45},
		{Features: [5]float64{5, 1, 0.7, 8, 78}, Score: 78},
		{Features: [5]float64{12, 0, 0.2, 1, 12}, Score: 12},
		{Features: [5]float64{4, 1, 0.8, 12, 88}, Score: 88},
		{Features: [5]float64{6, 0, 0.4, 3, 34}, Score: 34},
		{Features: [5]float64{7, 1, 0.6, 6, 67}, Score: 67},
		{Features: [5]float64{9, 0, 0.3, 1, 23}, Score: 23},
		{Features: [5]float64{5, 1, 0.9, 20, 98}, Score: 98},
		{Features: [5]float64{10, 0, 0.2, 2, 15}, Score: 15},
		{Features: [5]float64{4, 1, 0.7, 10, 82}, Score: 82},
		{Features: [5]float64{8, 0, 0.3, 4, 56}, Score: 56},
		{Features: [5]float64{6, 1, 0.8, 14, 91}, Score: 91},
		{Features: [5]float64{11, 0, 0.2, 1, 8}, Score: 8},
		{Features: [5]float64{5, 1, 0.6, 7, 72}, Score: 72},
		{Features: [5]float64{7, 0, 0.4, 3, 41}, Score: 41},
		{Features: [5]float64{4, 1, 0.9, 18, 96}, Score: 96},
		{Features: [5]float64{9, 0, 0.3, 2, 28}, Score: 28},
		{Features: [5]float64{6, 1, 0.7, 9, 85}, Score: 85},
		{Features: [5]float64{12, 0, 0.2, 1, 5}, Score: 5},
		{Features: [5]float64{3, 1, 0.8, 16, 94}, Score: 94},
		{Features: [5]float64{8, 0, 0.3, 3, 38}, Score: 38},
		{Features: [5]float64{5, 1, 0.6, 8, 76}, Score: 76},
		{Features: [5]float64{10, 0, 0.2, 2, 18}, Score: 18},
		{Features: [5]float64{4, 1, 0.9, 22, 99}, Score: 99},
		{Features: [5]float64{7, 0, 0.4, 4, 52}, Score: 52},
		{Features: [5]float64{6, 1, 0.7, 11, 87}, Score: 87},
		{Features: [5]float64{9, 0, 0.3, 2, 31}, Score: 31},
		{Features: [5]float64{5, 1, 0.8, 13, 89}, Score: 89},
		{Features: [5]float64{11, 0, 0.2, 1, 11}, Score: 11},
	}
}
