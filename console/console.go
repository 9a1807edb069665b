// Package console is the terminal surface of the widget: every line typed
// on the input is a submission, and the panel is redrawn on every change
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"weather-widget/view"
)

const prompt = "Search for a city: "

// Console connects a reader and a writer to a widget
type Console struct {
	widget *view.Widget
	out    io.Writer
	mu     sync.Mutex
}

// New creates a console and subscribes it to the widget's changes. Call it
// before the widget's Run
func New(widget *view.Widget, out io.Writer) *Console {
	c := &Console{widget: widget, out: out}
	widget.OnChange(c.draw)
	return c
}

// Run reads lines until in is exhausted or ctx is done. Submissions are
// accepted while a lookup is still loading
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	c.write(prompt)

	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errs <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		case line := <-lines:
			if err := c.widget.Submit(ctx, line); err != nil {
				return err
			}
		}
	}
}

func (c *Console) draw(s view.Snapshot) {
	c.write("\n" + view.Render(s).Text() + prompt)
}

func (c *Console) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	io.WriteString(c.out, s)
}
