// Package scheduler holds startup synchronization tasks. There is no
// background ticker: every alert scan is triggered by an inbound
// request, and the sync here runs exactly once at boot.
package scheduler

import (
	"context"

	"domainsight/internal/alerts"
	"domainsight/internal/logger"
	redisstore "domainsight/internal/store/redis"
)

// AlertSyncer loads persisted alerts from redis into the memory log on
// startup so dedup keys survive restarts.
type AlertSyncer struct {
	store  *redisstore.Store
	log    *alerts.Log
	logger logger.Logger
}

// NewAlertSyncer creates a new alert syncer.
func NewAlertSyncer(store *redisstore.Store, log *alerts.Log, logger logger.Logger) *AlertSyncer {
	return &AlertSyncer{
		store:  store,
		log:    log,
		logger: logger,
	}
}

// Sync loads alerts from redis and inserts them into the memory log.
// Duplicates (already-seen keys) are skipped by the log itself.
func (as *AlertSyncer) Sync(ctx context.Context) error {
	as.logger.Info("syncing alert history from redis")

	persisted, err := as.store.LoadAlerts(ctx)
	if err != nil {
		return err
	}

	if len(persisted) == 0 {
		as.logger.Info("no persisted alerts found in redis")
		return nil
	}

	loaded := 0
	for _, alert := range persisted {
		if as.log.Insert(alert) {
			loaded++
		}
	}

	as.logger.Info("synced alerts from redis",
		logger.Int("persisted", len(persisted)),
		logger.Int("loaded", loaded))

	return nil
}
