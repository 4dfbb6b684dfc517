package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"domainsight/internal/alerts"
	"domainsight/internal/chain"
	"domainsight/internal/config"
	"domainsight/internal/httpserver"
	"domainsight/internal/httpserver/deps"
	"domainsight/internal/insight"
	"domainsight/internal/logger"
	"domainsight/internal/model"
	"domainsight/internal/redis"
	"domainsight/internal/scheduler"
	"domainsight/internal/sources/scoringdata"
	"domainsight/internal/sources/subgraph"
	redisstore "domainsight/internal/store/redis"
	"domainsight/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	// Local development loads .env; missing file is fine in containers.
	_ = godotenv.Load()

	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Scoring tables: compiled-in defaults, optional YAML override.
	data, err := scoringdata.NewLoader(cfg.ScoringDataFile).Load()
	if err != nil {
		loggerClient.Errorf("Failed to load scoring data: %v", err)
		os.Exit(1)
	}

	// Train the valuation ensemble once at startup.
	forest, err := model.Train(data.Samples, model.Config{
		Trees: cfg.ModelTrees,
		Seed:  cfg.ModelSeed,
	})
	if err != nil {
		loggerClient.Errorf("Failed to train valuation model: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("valuation model trained",
		logger.Int("trees", forest.Trees()),
		logger.Int64("seed", forest.Seed()),
		logger.Int("samples", len(data.Samples)))

	alertLog := alerts.NewLog()

	// Redis is optional: without it alerts live in memory only.
	var redisClient *goredis.Client
	var mirror insight.AlertMirror
	if cfg.RedisAddr != "" {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		redisClient, err = redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			PoolSize:       cfg.RedisPoolSize,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, loggerClient)
		if err != nil {
			loggerClient.Warn("redis unavailable, alerts will not be persisted",
				logger.Error(err))
			redisClient = nil
		}
	} else {
		loggerClient.Info("redis not configured, alerts kept in memory only")
	}

	if redisClient != nil {
		store := redisstore.NewStore(redisClient)
		mirror = store

		// Restore alert history so dedup keys survive restarts.
		syncer := scheduler.NewAlertSyncer(store, alertLog, loggerClient)
		if err := syncer.Sync(context.Background()); err != nil {
			loggerClient.Warn("failed to sync alerts from redis on startup",
				logger.Error(err))
		}
	}

	client := subgraph.New(cfg.ChainEndpoints, cfg.PrimaryChain, cfg.UpstreamTimeout)

	svc := insight.New(insight.Options{
		Logger:   loggerClient,
		Data:     data,
		Model:    forest,
		Client:   client,
		AlertLog: alertLog,
		AlertCfg: alerts.Config{
			ExpiryThresholdDays: cfg.AlertExpiryThresholdDays,
			MinScore:            cfg.AlertMinScore,
		},
		Mirror:    mirror,
		BatchSize: cfg.BatchSize,
	})

	actionsEnabled := cfg.PrivateKey != ""
	if !actionsEnabled {
		loggerClient.Info("no private key configured, on-chain actions disabled")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:             loggerClient,
		StartTime:          time.Now(),
		Version:            version.Version,
		Commit:             version.Commit,
		BuildDate:          version.BuildDate,
		GoVersion:          version.GoVersion,
		TimeNow:            time.Now,
		Insight:            svc,
		Actions:            chain.NewSimulator(nil),
		ActionsEnabled:     actionsEnabled,
		RedisClient:        redisClient,
		PrimaryChain:       cfg.PrimaryChain,
		SyncInterval:       cfg.SyncInterval,
		AlertCheckInterval: cfg.AlertCheckInterval,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting DomaInsight v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("DomaInsight %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ DomaInsight stopped cleanly")
	return nil
}
