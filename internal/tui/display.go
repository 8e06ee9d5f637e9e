// Package tui renders live batch progress, either as a Bubble Tea spinner
// view on a terminal or as plain timestamped lines everywhere else.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Event is an event sent to a Display via the update channel.
// Implemented by LineMsg, BatchDoneMsg, and BatchErrorMsg.
type Event interface {
	isEvent()
}

// Verify at compile time that message types implement Event.
var (
	_ Event = LineMsg{}
	_ Event = BatchDoneMsg{}
	_ Event = BatchErrorMsg{}
)

// LineMsg reports one completed batch line.
type LineMsg struct {
	Line    int
	Input   string
	Carrier string
	Type    string
	Failed  bool
	Reason  string // failure reason, set when Failed
}

func (LineMsg) isEvent() {}

// BatchDoneMsg signals that the batch finished.
type BatchDoneMsg struct{}

func (BatchDoneMsg) isEvent() {}

// BatchErrorMsg signals that the run aborted.
type BatchErrorMsg struct {
	Err error
}

func (BatchErrorMsg) isEvent() {}

// Display renders batch progress events.
type Display interface {
	Run(ctx context.Context, events <-chan Event) error
}

// DisplayOptions configures display creation.
type DisplayOptions struct {
	Writer     io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force plain text even if TTY.
	Total      int       // Expected number of non-blank lines.
}

// NewDisplay returns a TUI display when stdout is a TTY, or a plain text
// display otherwise. ForcePlain overrides TTY detection.
func NewDisplay(opts DisplayOptions) Display {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Writer) {
		return &PlainDisplay{w: opts.Writer}
	}

	return &TUIDisplay{w: opts.Writer, total: opts.Total}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Bridge manages the channel between the batch runner and a Display consumer.
type Bridge struct {
	ch chan Event
}

// NewBridge creates a Bridge with a buffered event channel.
func NewBridge() *Bridge {
	return &Bridge{ch: make(chan Event, 16)}
}

// Events returns the read-only channel for Display.Run() to consume.
func (b *Bridge) Events() <-chan Event {
	return b.ch
}

// Send delivers a LineMsg to the display.
// It blocks if the channel buffer (16) is full.
func (b *Bridge) Send(msg LineMsg) {
	b.ch <- msg
}

// Done signals batch completion and closes the channel.
func (b *Bridge) Done() {
	b.ch <- BatchDoneMsg{}
	close(b.ch)
}

// Error signals an aborted run and closes the channel.
func (b *Bridge) Error(err error) {
	b.ch <- BatchErrorMsg{Err: err}
	close(b.ch)
}

// PlainDisplay renders each completed line as timestamped text.
type PlainDisplay struct {
	w io.Writer
}

// Run loops over events, printing each completed line.
// Returns the run error if the batch aborted, or context error if cancelled.
func (d *PlainDisplay) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch msg := ev.(type) {
			case LineMsg:
				d.renderLine(msg)
			case BatchDoneMsg:
				return nil
			case BatchErrorMsg:
				return msg.Err
			}
		}
	}
}

func (d *PlainDisplay) renderLine(msg LineMsg) {
	ts := time.Now().Format("15:04:05")
	if msg.Failed {
		_, _ = fmt.Fprintf(d.w, "[%s] line %d: %s failed: %s\n", ts, msg.Line, msg.Input, msg.Reason)
		return
	}
	_, _ = fmt.Fprintf(d.w, "[%s] line %d: %s ok: %s (%s)\n", ts, msg.Line, msg.Input, msg.Carrier, msg.Type)
}

// TUIDisplay renders batch progress using a Bubble Tea terminal UI.
// Falls back to PlainDisplay if the TUI program fails to start.
type TUIDisplay struct {
	w     io.Writer
	total int
}

// Run starts the Bubble Tea program and feeds events from the channel.
// If the TUI fails to initialize, it falls back to plain text output.
func (d *TUIDisplay) Run(ctx context.Context, events <-chan Event) error {
	model := NewModel(d.total)
	p := tea.NewProgram(model, tea.WithOutput(d.w))

	// Forward events through an intermediate channel so we can stop
	// the goroutine cleanly on TUI failure before falling back.
	fwd := make(chan Event, 16)
	stop := make(chan struct{})

	go func() {
		defer close(fwd)
		for ev := range events {
			select {
			case fwd <- ev:
			case <-stop:
				return
			}
		}
	}()

	go func() {
		for ev := range fwd {
			p.Send(ev)
		}
	}()

	_, err := p.Run()
	if err != nil {
		close(stop)
		// Fall back to plain text for remaining events from the original channel.
		plain := &PlainDisplay{w: d.w}
		return plain.Run(ctx, events)
	}

	return nil
}
