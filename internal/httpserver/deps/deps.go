package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"domainsight/internal/chain"
	"domainsight/internal/insight"
	"domainsight/internal/logger"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Insight        *insight.Service // scoring, trends and alert scans
	Actions        *chain.Simulator // simulated on-chain actions
	ActionsEnabled bool             // false when no private key is configured
	RedisClient    *redis.Client    // nil when persistence is disabled

	PrimaryChain       string        // default chain for requests that omit one
	SyncInterval       time.Duration // reported by the status endpoint
	AlertCheckInterval time.Duration // reported by the status endpoint
}
