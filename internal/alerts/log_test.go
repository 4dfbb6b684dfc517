package alerts

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"domainsight/internal/domain"
)

func testAlert(name string, days int) domain.Alert {
	return domain.Alert{
		ID:              fmt.Sprintf("%s-%d", name, days),
		Type:            domain.AlertTypeExpiringHighScore,
		DomainName:      name,
		DaysUntilExpiry: days,
		Score:           80,
		Timestamp:       time.Now(),
		Priority:        domain.PriorityMedium,
	}
}

func TestLogInsert(t *testing.T) {
	log := NewLog()

	if !log.Insert(testAlert("crypto.eth", 5)) {
		t.Error("first Insert() = false, want true")
	}
	if log.Insert(testAlert("crypto.eth", 5)) {
		t.Error("duplicate Insert() = true, want false")
	}
	if log.Len() != 1 {
		t.Errorf("Len() = %v, want 1", log.Len())
	}
}

func TestLogInsertDistinctDays(t *testing.T) {
	log := NewLog()

	log.Insert(testAlert("crypto.eth", 5))
	if !log.Insert(testAlert("crypto.eth", 4)) {
		t.Error("Insert() with different days = false, want true")
	}
	if log.Len() != 2 {
		t.Errorf("Len() = %v, want 2", log.Len())
	}
}

func TestLogSeen(t *testing.T) {
	log := NewLog()
	log.Insert(testAlert("crypto.eth", 5))

	if !log.Seen(Key{DomainName: "crypto.eth", DaysUntilExpiry: 5}) {
		t.Error("Seen() = false for inserted key, want true")
	}
	if log.Seen(Key{DomainName: "crypto.eth", DaysUntilExpiry: 6}) {
		t.Error("Seen() = true for absent key, want false")
	}
}

func TestLogTailN(t *testing.T) {
	log := NewLog()
	for i := 1; i <= 5; i++ {
		log.Insert(testAlert("domain.eth", i))
	}

	tail := log.TailN(3)
	if len(tail) != 3 {
		t.Fatalf("TailN(3) length = %v, want 3", len(tail))
	}
	// Oldest first within the tail: days 3, 4, 5 were inserted last.
	if tail[0].DaysUntilExpiry != 3 || tail[2].DaysUntilExpiry != 5 {
		t.Errorf("TailN(3) = days %v..%v, want 3..5", tail[0].DaysUntilExpiry, tail[2].DaysUntilExpiry)
	}

	all := log.TailN(100)
	if len(all) != 5 {
		t.Errorf("TailN(100) length = %v, want 5", len(all))
	}
}

func TestLogSince(t *testing.T) {
	log := NewLog()
	cutoff := time.Now()

	old := testAlert("old.eth", 3)
	old.Timestamp = cutoff.Add(-time.Hour)
	log.Insert(old)

	recent := testAlert("recent.eth", 3)
	recent.Timestamp = cutoff.Add(time.Hour)
	log.Insert(recent)

	got := log.Since(cutoff)
	if len(got) != 1 {
		t.Fatalf("Since() length = %v, want 1", len(got))
	}
	if got[0].DomainName != "recent.eth" {
		t.Errorf("Since() returned %v, want recent.eth", got[0].DomainName)
	}
}

func TestLogConcurrentInsert(t *testing.T) {
	log := NewLog()

	var wg sync.WaitGroup
	inserted := make(chan bool, 100)

	// Many goroutines racing the same key: exactly one wins.
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted <- log.Insert(testAlert("contended.eth", 7))
		}()
	}

	// And concurrent inserts of distinct keys all land.
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(days int) {
			defer wg.Done()
			log.Insert(testAlert("spread.eth", days))
		}(i + 100)
	}

	wg.Wait()
	close(inserted)

	wins := 0
	for ok := range inserted {
		if ok {
			wins++
		}
	}
	if wins != 1 {
		t.Errorf("contended key inserted %v times, want 1", wins)
	}
	if log.Len() != 51 {
		t.Errorf("Len() = %v, want 51", log.Len())
	}
}
