package view

import (
	"context"
	"log"
	"strings"
	"time"

	"weather-widget/collector"

	"golang.org/x/time/rate"
)

// Snapshot is a copy of the widget's view state handed to readers
type Snapshot struct {
	State LookupState
	// Expanded is true once any lookup has completed with a result
	Expanded bool
	// Seq is the number of submissions so far
	Seq uint64
}

// Option configures a Widget
type Option func(*Widget)

// WithDiscardStale drops outcomes of lookups that were superseded by a
// later submission. Off by default: the last response to arrive wins
func WithDiscardStale(discard bool) Option {
	return func(w *Widget) {
		w.discardStale = discard
	}
}

// WithLogger replaces the standard logger
func WithLogger(logger *log.Logger) Option {
	return func(w *Widget) {
		w.logger = logger
	}
}

// Widget owns the lookup state. All transitions happen on the goroutine
// running Run; other goroutines talk to it through channels
type Widget struct {
	dispatcher *collector.Dispatcher
	submits    chan string
	queries    chan chan Snapshot
	observers  []func(Snapshot)

	state    LookupState
	expanded bool
	seq      uint64

	discardStale bool
	logger       *log.Logger
	failureLog   rate.Sometimes
}

// NewWidget creates an idle widget fed by the dispatcher
func NewWidget(dispatcher *collector.Dispatcher, opts ...Option) *Widget {
	w := &Widget{
		dispatcher: dispatcher,
		submits:    make(chan string),
		queries:    make(chan chan Snapshot),
		state:      Idle(),
		logger:     log.Default(),
		failureLog: rate.Sometimes{First: 5, Interval: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// OnChange registers fn to be called after every transition. It runs on the
// loop goroutine and must not call back into the widget. Register observers
// before calling Run
func (w *Widget) OnChange(fn func(Snapshot)) {
	w.observers = append(w.observers, fn)
}

// Submit trims raw and starts a lookup for it. It does not wait for the
// lookup; an empty or whitespace-only input is looked up as ""
func (w *Widget) Submit(ctx context.Context, raw string) error {
	select {
	case w.submits <- strings.TrimSpace(raw):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the current snapshot
func (w *Widget) State(ctx context.Context) (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	select {
	case w.queries <- reply:
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// Run processes submissions and lookup outcomes until ctx is done
func (w *Widget) Run(ctx context.Context) error {
	outcomes := w.dispatcher.OutputChannel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case city := <-w.submits:
			w.seq++
			id := w.dispatcher.Dispatch(ctx, w.seq, city)
			w.logger.Printf("lookup %s: submitted %q (#%d)", id, city, w.seq)
			w.transition(Loading(w.state))
		case out := <-outcomes:
			w.handleOutcome(out)
		case reply := <-w.queries:
			reply <- w.snapshot()
		}
	}
}

func (w *Widget) handleOutcome(out collector.Outcome) {
	if w.discardStale && out.Seq != w.seq {
		w.logger.Printf("lookup %s: discarded stale response for %q (#%d, latest #%d)", out.ID, out.City, out.Seq, w.seq)
		return
	}

	if out.Err != nil {
		// Failures are not shown: loading ends and the panel keeps its content
		w.failureLog.Do(func() {
			w.logger.Printf("lookup %s: %v", out.ID, out.Err)
		})
		w.transition(w.state.Settled())
		return
	}

	w.logger.Printf("lookup %s: %q resolved in %s", out.ID, out.City, out.Finished.Sub(out.Started).Round(time.Millisecond))
	w.expanded = true
	w.transition(FromResult(out.Result))
}

func (w *Widget) transition(next LookupState) {
	w.state = next
	snap := w.snapshot()
	for _, fn := range w.observers {
		fn(snap)
	}
}

func (w *Widget) snapshot() Snapshot {
	return Snapshot{State: w.state, Expanded: w.expanded, Seq: w.seq}
}
