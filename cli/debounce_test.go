package cli

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncerDeliversLastInput(t *testing.T) {
	var mu sync.Mutex
	var got []string
	deb := newSearchDebouncer(20*time.Millisecond, func(text string) {
		mu.Lock()
		got = append(got, text)
		mu.Unlock()
	})

	deb.Type("g")
	deb.Type("go")
	deb.Type("gol")
	deb.Type("gold")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("fired %d times, want exactly 1 per quiet period", len(got))
	}
	if got[0] != "gold" {
		t.Fatalf("delivered %q, want the last input", got[0])
	}
}

func TestDebouncerFiresAgainAfterQuietPeriod(t *testing.T) {
	var mu sync.Mutex
	var got []string
	deb := newSearchDebouncer(10*time.Millisecond, func(text string) {
		mu.Lock()
		got = append(got, text)
		mu.Unlock()
	})

	deb.Type("ring")
	time.Sleep(50 * time.Millisecond)
	deb.Type("shirt")
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 || got[0] != "ring" || got[1] != "shirt" {
		t.Fatalf("got %v, want [ring shirt]", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var mu sync.Mutex
	fired := false
	deb := newSearchDebouncer(20*time.Millisecond, func(string) {
		mu.Lock()
		fired = true
		mu.Unlock()
	})

	deb.Type("gold")
	deb.Stop()
	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fired {
		t.Fatalf("stopped debouncer must not fire")
	}
}
