// Package notify is the user-facing notification sink. Every recoverable
// error and every successful mutation ends up here; nothing is returned to
// the caller.
package notify

import (
	"fmt"
	"io"
	"os"
)

// Notifier receives fire-and-forget user notifications.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Console writes notifications to the terminal.
type Console struct {
	Out io.Writer
	Err io.Writer
}

// NewConsole returns a notifier writing to stdout/stderr.
func NewConsole() *Console {
	return &Console{Out: os.Stdout, Err: os.Stderr}
}

func (c *Console) Success(message string) {
	fmt.Fprintf(c.Out, "✓ %s\n", message)
}

func (c *Console) Error(message string) {
	fmt.Fprintf(c.Err, "✗ %s\n", message)
}

// Discard swallows all notifications; used by surfaces that render state
// themselves.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
