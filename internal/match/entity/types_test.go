package entity

import (
	"strings"
	"sync"
	"testing"
)

func TestNowISOFormat(t *testing.T) {
	ts := NowISO()
	if !strings.HasSuffix(ts, "Z") {
		t.Errorf("Expected UTC timestamp ending in Z, got %s", ts)
	}
	// 固定宽度：字典序比较即时间序比较
	if len(ts) != len("2026-01-02T15:04:05.000000Z") {
		t.Errorf("Expected fixed-width timestamp, got %s (%d chars)", ts, len(ts))
	}
}

func TestNowISOMonotonicOrdering(t *testing.T) {
	prev := NowISO()
	for i := 0; i < 100; i++ {
		next := NowISO()
		if next < prev {
			t.Fatalf("Timestamps must sort lexicographically: %s then %s", prev, next)
		}
		prev = next
	}
}

func TestNextSeqStrictlyIncreasing(t *testing.T) {
	prev := NextSeq()
	for i := 0; i < 1000; i++ {
		next := NextSeq()
		if next <= prev {
			t.Fatalf("NextSeq must be strictly increasing: %d then %d", prev, next)
		}
		prev = next
	}
}

func TestNextSeqConcurrentUnique(t *testing.T) {
	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	results := make([][]int64, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			seqs := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				seqs = append(seqs, NextSeq())
			}
			results[w] = seqs
		}(w)
	}
	wg.Wait()

	seen := make(map[int64]bool, workers*perWorker)
	for _, seqs := range results {
		for _, s := range seqs {
			if seen[s] {
				t.Fatalf("Duplicate seq %d under concurrency", s)
			}
			seen[s] = true
		}
	}
}

func TestStringArrayRoundTrip(t *testing.T) {
	a := StringArray{"web", "mobile"}
	v, err := a.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var back StringArray
	if err := back.Scan(v); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(back) != 2 || back[0] != "web" || back[1] != "mobile" {
		t.Errorf("Round trip mismatch: %v", back)
	}

	// sqlite驱动以string回传
	var fromString StringArray
	if err := fromString.Scan(`["a"]`); err != nil {
		t.Fatalf("Scan from string failed: %v", err)
	}
	if len(fromString) != 1 || fromString[0] != "a" {
		t.Errorf("Scan from string mismatch: %v", fromString)
	}
}

func TestStringArrayNilValue(t *testing.T) {
	var a StringArray
	v, err := a.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("Expected nil array to store as [], got %s", v)
	}
}

func TestDemandTouchMonotonic(t *testing.T) {
	d := &Demand{UpdatedAt: "2020-01-01T00:00:00.000000Z"}
	d.Touch()
	if d.UpdatedAt == "2020-01-01T00:00:00.000000Z" {
		t.Error("Expected Touch to advance stale updated_at")
	}

	future := "9999-01-01T00:00:00.000000Z"
	d.UpdatedAt = future
	d.Touch()
	if d.UpdatedAt != future {
		t.Errorf("Touch must never move updated_at backwards, got %s", d.UpdatedAt)
	}
}
