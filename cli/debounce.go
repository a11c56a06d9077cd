package cli

import (
	"sync"
	"time"
)

// searchDebouncer coalesces rapid search input into one callback per
// quiet period, so the catalog store sees at most one SetSearch call
// after D of inactivity. Quieting input is a presentation concern; the
// store never debounces.
type searchDebouncer struct {
	mu    sync.Mutex
	d     time.Duration
	timer *time.Timer
	fire  func(text string)
}

func newSearchDebouncer(d time.Duration, fire func(string)) *searchDebouncer {
	if d <= 0 {
		d = 500 * time.Millisecond
	}
	return &searchDebouncer{d: d, fire: fire}
}

// Type records one keystroke-level input; only the last text within a
// quiet period is delivered.
func (b *searchDebouncer) Type(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, func() { b.fire(text) })
}

// Stop cancels any pending delivery.
func (b *searchDebouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
