package notifier

import (
	"context"
	"fmt"
	"log"
)

// Sink delivers a rendered report somewhere the user can see it.
type Sink interface {
	Deliver(ctx context.Context, text string) error
	Name() string
}

// ConsoleSink writes reports to standard output. It is the guaranteed
// fallback: it never fails.
type ConsoleSink struct{}

func NewConsoleSink() *ConsoleSink { return &ConsoleSink{} }

func (c *ConsoleSink) Name() string { return "console" }

func (c *ConsoleSink) Deliver(_ context.Context, text string) error {
	fmt.Println(text)
	return nil
}

// Dispatcher tries the primary sink and falls back to console on failure.
// Delivery failure never aborts the pipeline; it is logged as a warning.
type Dispatcher struct {
	Primary  Sink
	Fallback *ConsoleSink
}

// NewDispatcher creates a Dispatcher. A nil primary means console only.
func NewDispatcher(primary Sink) *Dispatcher {
	return &Dispatcher{Primary: primary, Fallback: NewConsoleSink()}
}

// Dispatch delivers the report, guaranteeing console output when the
// primary sink is missing or failing.
func (d *Dispatcher) Dispatch(ctx context.Context, text string) {
	if d.Primary == nil {
		d.Fallback.Deliver(ctx, text)
		return
	}
	if err := d.Primary.Deliver(ctx, text); err != nil {
		log.Printf("[WARN] %s delivery failed, falling back to console: %v", d.Primary.Name(), err)
		d.Fallback.Deliver(ctx, text)
	}
}
