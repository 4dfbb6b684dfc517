package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default subgraph endpoints per chain. Overridable one-by-one via
// DOMAINSIGHT_CHAIN_ENDPOINTS ("chain=url,chain=url").
var defaultChainEndpoints = map[string]string{
	"testnet":  "https://api-testnet.doma.xyz/graphql",
	"mainnet":  "https://api.doma.xyz/graphql",
	"polygon":  "https://api-polygon.doma.xyz/graphql",
	"arbitrum": "https://api-arbitrum.doma.xyz/graphql",
}

type Config struct {
	ListenPort      string        // ex: ":3001"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Subgraph upstream
	ChainEndpoints  map[string]string // chain name -> GraphQL endpoint
	PrimaryChain    string            // chain used when a request omits one
	UpstreamTimeout time.Duration     // per-query timeout against the subgraph
	BatchSize       int               // records per batch query (default: 1000)

	// Reported by the status endpoint; scans themselves are request-driven.
	SyncInterval       time.Duration
	AlertCheckInterval time.Duration

	// Alerting thresholds
	AlertExpiryThresholdDays int // alert on domains expiring within N days
	AlertMinScore            int // minimum score for an alert to fire

	// Valuation model
	ModelTrees      int    // ensemble size (default: 100)
	ModelSeed       int64  // bootstrap sampling seed (default: 42)
	ScoringDataFile string // optional YAML overriding the scoring tables

	// Redis (optional alert persistence, empty addr = memory only)
	RedisAddr           string
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)

	// PrivateKey unlocks the simulated transaction endpoints. Optional;
	// without it action requests are refused. Never logged.
	PrivateKey string
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("DOMAINSIGHT_LISTEN_PORT", ":3001"),
		ShutdownTimeout: mustDuration("DOMAINSIGHT_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("DOMAINSIGHT_LOG_LEVEL", "info"),
		PrettyLog: mustBool("DOMAINSIGHT_PRETTY_LOG", false),

		// Subgraph upstream
		ChainEndpoints:  chainEndpoints(getenv("DOMAINSIGHT_CHAIN_ENDPOINTS", "")),
		PrimaryChain:    getenv("DOMAINSIGHT_PRIMARY_CHAIN", "testnet"),
		UpstreamTimeout: mustDuration("DOMAINSIGHT_UPSTREAM_TIMEOUT", 10*time.Second),
		BatchSize:       getenvInt("DOMAINSIGHT_BATCH_SIZE", 1000),

		// State sync
		SyncInterval:       mustDuration("DOMAINSIGHT_SYNC_INTERVAL", 30*time.Second),
		AlertCheckInterval: mustDuration("DOMAINSIGHT_ALERT_CHECK_INTERVAL", time.Minute),

		// Alerting
		AlertExpiryThresholdDays: getenvInt("DOMAINSIGHT_ALERT_EXPIRY_THRESHOLD_DAYS", 7),
		AlertMinScore:            getenvInt("DOMAINSIGHT_ALERT_MIN_SCORE", 70),

		// Model
		ModelTrees:      getenvInt("DOMAINSIGHT_MODEL_TREES", 100),
		ModelSeed:       int64(getenvInt("DOMAINSIGHT_MODEL_SEED", 42)),
		ScoringDataFile: getenv("DOMAINSIGHT_SCORING_DATA_FILE", ""),

		// Redis settings
		RedisAddr:           getenv("DOMAINSIGHT_REDIS_ADDR", ""),
		RedisUser:           getenv("DOMAINSIGHT_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("DOMAINSIGHT_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("DOMAINSIGHT_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),

		PrivateKey: getenv("PRIVATE_KEY", ""),
	}

	if _, ok := cfg.ChainEndpoints[cfg.PrimaryChain]; !ok {
		panic(fmt.Sprintf("❌ FATAL: primary chain %q has no configured endpoint", cfg.PrimaryChain))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		if cfg.PrivateKey != "" {
			cfgCopy.PrivateKey = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// chainEndpoints merges "chain=url" overrides over the defaults.
func chainEndpoints(raw string) map[string]string {
	endpoints := make(map[string]string, len(defaultChainEndpoints))
	for chain, url := range defaultChainEndpoints {
		endpoints[chain] = url
	}
	for _, pair := range splitAndTrim(raw) {
		chain, url, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(chain) == "" || strings.TrimSpace(url) == "" {
			panic(fmt.Sprintf("❌ FATAL: Invalid chain endpoint entry %q (want chain=url)", pair))
		}
		endpoints[strings.TrimSpace(chain)] = strings.TrimSpace(url)
	}
	return endpoints
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
