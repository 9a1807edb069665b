package collector

import (
	"context"
	"sync"
	"time"

	"weather-widget/datasource"
	"weather-widget/models"

	"github.com/google/uuid"
)

// Outcome is the completion of one dispatched lookup
type Outcome struct {
	ID       string // correlates log lines for one lookup
	Seq      uint64 // submission order, assigned by the caller
	City     string
	Result   models.WeatherResult
	Err      error
	Started  time.Time
	Finished time.Time
}

// Dispatcher runs each lookup on its own goroutine and delivers outcomes in
// completion order. Lookups are never cancelled or reordered: a slow early
// lookup can finish after a fast later one
type Dispatcher struct {
	source     datasource.Lookuper
	outputChan chan Outcome
	wg         sync.WaitGroup
}

// NewDispatcher creates a dispatcher for the given source
func NewDispatcher(source datasource.Lookuper) *Dispatcher {
	return &Dispatcher{
		source:     source,
		outputChan: make(chan Outcome, 16),
	}
}

// OutputChannel returns the channel that emits finished lookups
func (d *Dispatcher) OutputChannel() <-chan Outcome {
	return d.outputChan
}

// Dispatch starts a lookup and returns its id without waiting for it.
// ctx bounds delivery of the outcome, not the request itself
func (d *Dispatcher) Dispatch(ctx context.Context, seq uint64, city string) string {
	id := uuid.NewString()
	d.wg.Add(1)
	go d.lookupOnce(ctx, id, seq, city)
	return id
}

// Wait blocks until every dispatched lookup has delivered or given up
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// lookupOnce performs a single lookup and hands the outcome over
func (d *Dispatcher) lookupOnce(ctx context.Context, id string, seq uint64, city string) {
	defer d.wg.Done()

	out := Outcome{ID: id, Seq: seq, City: city, Started: time.Now()}
	// Detached from ctx so a shutdown does not turn in-flight lookups into errors
	out.Result, out.Err = d.source.Lookup(context.WithoutCancel(ctx), city)
	out.Finished = time.Now()

	select {
	case d.outputChan <- out:
	case <-ctx.Done():
	}
}
