package clock

import (
	"time"

	"github.com/luismarketmedia/dash-fut/state"
)

// Ticker advances every running match clock on a fixed interval. It
// dispatches plain UpdateMatch actions straight to the store: clock
// ticks are local-only, explicit clock operations handle persistence.
type Ticker struct {
	store    *state.Store
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewTicker(store *state.Store, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the tick loop. Call Stop to cancel it.
func (t *Ticker) Start() {
	go t.run()
}

func (t *Ticker) Stop() {
	close(t.stop)
	<-t.done
}

func (t *Ticker) run() {
	defer close(t.done)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case now := <-ticker.C:
			t.tickAll(now)
		}
	}
}

func (t *Ticker) tickAll(now time.Time) {
	snap := t.store.State()
	for _, m := range snap.Matches {
		if !m.Running() {
			continue
		}
		t.store.Dispatch(state.UpdateMatch{Match: Tick(m, now)})
	}
}
