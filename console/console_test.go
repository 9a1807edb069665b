package console

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"weather-widget/collector"
	"weather-widget/models"
	"weather-widget/view"
)

type cities map[string]models.WeatherResult

func (c cities) Lookup(ctx context.Context, city string) (models.WeatherResult, error) {
	if r, ok := c[city]; ok {
		return r, nil
	}
	return models.NotFoundResult(), nil
}

// lockedWriter is read by the test while the widget loop writes to it
type lockedWriter struct {
	mu sync.Mutex
	b  strings.Builder
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.b.Write(p)
}

func (w *lockedWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.b.String()
}

func TestConsoleRendersEachLine(t *testing.T) {
	src := cities{"Berlin": {City: "Berlin", Country: "DE", TempKelvin: 300, Category: models.Rain, Matched: true}}
	widget := view.NewWidget(collector.NewDispatcher(src), view.WithLogger(log.New(io.Discard, "", 0)))
	out := &lockedWriter{}
	c := New(widget, out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go widget.Run(ctx)

	if err := c.Run(ctx, strings.NewReader(" Berlin \nAtlantis\n")); err != nil {
		t.Fatalf("Run: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), "? Not Found") || !strings.Contains(out.String(), "Berlin, DE") {
		if time.Now().After(deadline) {
			t.Fatalf("output never showed both lookups:\n%s", out.String())
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := out.String()
	for _, want := range []string{prompt, "Berlin, DE", "☂ Rain", "26.85°C"} {
		if !strings.Contains(got, want) {
			t.Errorf("output is missing %q:\n%s", want, got)
		}
	}
}

func TestConsoleStopsWithContext(t *testing.T) {
	widget := view.NewWidget(collector.NewDispatcher(cities{}), view.WithLogger(log.New(io.Discard, "", 0)))
	c := New(widget, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	defer pw.Close()

	errc := make(chan error, 1)
	go func() { errc <- c.Run(ctx, pr) }()
	cancel()

	select {
	case err := <-errc:
		if err != context.Canceled {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
}
