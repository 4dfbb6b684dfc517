package redis

import (
	"testing"
	"time"

	"domainsight/internal/logger"
)

func TestNewClientOptions(t *testing.T) {
	client := newClient(ConnectOptions{
		Addr:         "localhost:6379",
		User:         "alerts",
		Password:     "secret",
		DB:           3,
		PoolSize:     25,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	defer client.Close()

	got := client.Options()
	if got.Username != "alerts" {
		t.Errorf("Username = %q, want %q", got.Username, "alerts")
	}
	if got.PoolSize != 25 {
		t.Errorf("PoolSize = %v, want 25", got.PoolSize)
	}
	if got.DB != 3 {
		t.Errorf("DB = %v, want 3", got.DB)
	}
}

func TestNewRejectsZeroTimeouts(t *testing.T) {
	if _, err := New(ConnectOptions{Addr: "localhost:6379"}, logger.New("error", false)); err == nil {
		t.Error("New() with zero timeouts expected error, got nil")
	}
}
