// Package redis mirrors the in-memory alert log into redis so dedup
// keys survive restarts. The memory log stays the source of truth;
// every operation here is best effort from the caller's point of view.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"domainsight/internal/domain"
)

// Store handles redis operations for the alert history.
type Store struct {
	client *goredis.Client
}

// NewStore creates a new redis alert store.
func NewStore(client *goredis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SaveAlert appends an alert to the persisted history and records its
// dedup key.
func (s *Store) SaveAlert(ctx context.Context, alert domain.Alert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, KeyAlertLog, data)
	pipe.SAdd(ctx, KeyAlertKeys, AlertKeyMember(alert.DomainName, alert.DaysUntilExpiry))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}
	return nil
}

// SaveAlertsMany appends multiple alerts in a single pipeline.
func (s *Store) SaveAlertsMany(ctx context.Context, alerts []domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, alert := range alerts {
		data, err := json.Marshal(alert)
		if err != nil {
			return fmt.Errorf("failed to marshal alert %s: %w", alert.ID, err)
		}
		pipe.RPush(ctx, KeyAlertLog, data)
		pipe.SAdd(ctx, KeyAlertKeys, AlertKeyMember(alert.DomainName, alert.DaysUntilExpiry))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save alerts: %w", err)
	}
	return nil
}

// LoadAlerts returns the full persisted alert history, oldest first.
// Entries that fail to decode are skipped.
func (s *Store) LoadAlerts(ctx context.Context) ([]domain.Alert, error) {
	raw, err := s.client.LRange(ctx, KeyAlertLog, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load alerts: %w", err)
	}

	alerts := make([]domain.Alert, 0, len(raw))
	for _, item := range raw {
		var alert domain.Alert
		if err := json.Unmarshal([]byte(item), &alert); err != nil {
			continue
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

// Count returns the number of persisted alerts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	n, err := s.client.LLen(ctx, KeyAlertLog).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	return n, nil
}
