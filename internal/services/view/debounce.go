package view

import (
	"sync"
	"time"
)

// DebounceInterval is how long search input must be quiescent before a
// query is forwarded. This reduces, but does not eliminate, the race where
// a superseded fetch's handler overwrites a later one's effect.
const DebounceInterval = 300 * time.Millisecond

// Debouncer forwards only the last query seen in each quiescent interval.
type Debouncer struct {
	interval time.Duration
	in       chan string
	out      chan string
	done     chan struct{}

	closeOnce sync.Once
}

// NewDebouncer creates a debouncer and starts its loop. Close it with
// Close when finished.
func NewDebouncer(interval time.Duration) *Debouncer {
	d := &Debouncer{
		interval: interval,
		in:       make(chan string, 16),
		out:      make(chan string, 1),
		done:     make(chan struct{}),
	}
	go d.run()
	return d
}

// Send submits a query. Queries arriving faster than the interval replace
// each other; only the last one is emitted.
func (d *Debouncer) Send(query string) {
	select {
	case d.in <- query:
	case <-d.done:
	}
}

// Queries returns the channel debounced queries are emitted on.
func (d *Debouncer) Queries() <-chan string {
	return d.out
}

// Close stops the debouncer and closes the query channel. Any pending
// query is dropped. Safe to call more than once.
func (d *Debouncer) Close() {
	d.closeOnce.Do(func() {
		close(d.done)
	})
}

func (d *Debouncer) run() {
	defer close(d.out)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
		pending string
	)

	for {
		select {
		case query := <-d.in:
			pending = query
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(d.interval)
			timerCh = timer.C

		case <-timerCh:
			timerCh = nil
			select {
			case d.out <- pending:
			case <-d.done:
				return
			}

		case <-d.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}
