package domain

import "fmt"

// Priority ranks a recommendation or alert for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Action identifies a suggested move for a domain holder.
type Action string

const (
	ActionTokenize Action = "tokenize"
	ActionAuction  Action = "auction"
	ActionHold     Action = "hold"
	ActionMarket   Action = "market"
	ActionMonitor  Action = "monitor"
	ActionSEO      Action = "seo"
	ActionPremium  Action = "premium"
	ActionRenew    Action = "renew"

	// ActionTransfer is only triggered explicitly, never recommended.
	ActionTransfer Action = "transfer"
)

// Estimated-value multipliers per action. These are presentation
// values: exact linear functions of the score, not financial advice.
const (
	ValueFactorTokenize = 100
	ValueFactorAuction  = 80
	ValueFactorHold     = 50
	ValueFactorMarket   = 60
	ValueFactorMonitor  = 20
	ValueFactorSEO      = 30
	ValueFactorPremium  = 120
	ValueFactorRenew    = 100
)

// Score band boundaries for the primary recommendation tiers.
const (
	TierTokenizeMin = 80
	TierHoldMin     = 60
)

// Feature-triggered add-on thresholds.
const (
	PremiumRarityMin = 0.8
	RenewWithinDays  = 30
)

// Recommendation is a single suggested action with display metadata.
type Recommendation struct {
	Action         Action   `json:"action"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       Priority `json:"priority"`
	EstimatedValue int      `json:"estimatedValue"`
	GasEstimate    string   `json:"gasEstimate"`
	ROI            string   `json:"roi"`
}

// Recommend maps a clamped score to an ordered list of recommendations.
//
// The primary tier is mutually exclusive and exhaustive over [0,100]:
// tokenize+auction (>= 80), hold+market (60-79) or monitor (< 60).
// Feature-triggered add-ons follow in fixed order: keyword, rarity,
// expiry. features may be nil, in which case only the tier applies.
// At least one recommendation is always returned.
func Recommend(score int, features *FeatureVector, domainName string) []Recommendation {
	recs := make([]Recommendation, 0, 4)

	switch {
	case score >= TierTokenizeMin:
		recs = append(recs,
			Recommendation{
				Action:         ActionTokenize,
				Title:          "Tokenize for Fractional Sales",
				Description:    fmt.Sprintf("High-value domain (%d/100) perfect for tokenization. Create ERC-721 tokens for fractional ownership.", score),
				Priority:       PriorityHigh,
				EstimatedValue: score * ValueFactorTokenize,
				GasEstimate:    "0.01 ETH",
				ROI:            "High potential for 3-5x returns",
			},
			Recommendation{
				Action:         ActionAuction,
				Title:          "List Premium Auction",
				Description:    "Premium domain suitable for high-value auction with reserve price.",
				Priority:       PriorityHigh,
				EstimatedValue: score * ValueFactorAuction,
				GasEstimate:    "0.005 ETH",
				ROI:            "Expected 2-4x current valuation",
			})
	case score >= TierHoldMin:
		recs = append(recs,
			Recommendation{
				Action:         ActionHold,
				Title:          "Strategic Hold & Develop",
				Description:    fmt.Sprintf("Good potential domain (%d/100). Consider developing or holding for market appreciation.", score),
				Priority:       PriorityMedium,
				EstimatedValue: score * ValueFactorHold,
				GasEstimate:    "0 ETH",
				ROI:            "Long-term appreciation potential",
			},
			Recommendation{
				Action:         ActionMarket,
				Title:          "Targeted Marketing",
				Description:    "Market to specific buyer segments for optimal sale price.",
				Priority:       PriorityMedium,
				EstimatedValue: score * ValueFactorMarket,
				GasEstimate:    "0 ETH",
				ROI:            "1.5-2x with proper marketing",
			})
	default:
		recs = append(recs, Recommendation{
			Action:         ActionMonitor,
			Title:          "Monitor Market Trends",
			Description:    fmt.Sprintf("Lower value domain (%d/100). Monitor for market changes and keyword trends.", score),
			Priority:       PriorityLow,
			EstimatedValue: score * ValueFactorMonitor,
			GasEstimate:    "0 ETH",
			ROI:            "Potential for improvement with time",
		})
	}

	if features == nil {
		return recs
	}

	if features.HasKeyword {
		recs = append(recs, Recommendation{
			Action:         ActionSEO,
			Title:          "SEO Optimization",
			Description:    "Domain contains valuable keywords. Optimize for search visibility.",
			Priority:       PriorityMedium,
			EstimatedValue: score * ValueFactorSEO,
			GasEstimate:    "0 ETH",
			ROI:            "Increased organic traffic value",
		})
	}

	if features.TLDRarity > PremiumRarityMin {
		recs = append(recs, Recommendation{
			Action:         ActionPremium,
			Title:          "Premium TLD Strategy",
			Description:    "Rare TLD detected. Position as premium offering.",
			Priority:       PriorityHigh,
			EstimatedValue: score * ValueFactorPremium,
			GasEstimate:    "0 ETH",
			ROI:            "Premium pricing potential",
		})
	}

	if features.ExpiryDays < RenewWithinDays {
		recs = append(recs, Recommendation{
			Action:         ActionRenew,
			Title:          "Urgent Renewal Required",
			Description:    fmt.Sprintf("Domain expires in %d days. Renew immediately to maintain ownership.", features.ExpiryDays),
			Priority:       PriorityHigh,
			EstimatedValue: score * ValueFactorRenew,
			GasEstimate:    "0.002 ETH",
			ROI:            "Prevents loss of valuable asset",
		})
	}

	return recs
}
