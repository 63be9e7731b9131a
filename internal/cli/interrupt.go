package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

const interruptNotice = "\n\n%s\n%s\n"

// InterruptHandler cancels a wizard run on Ctrl+C and tells the user their
// answers were discarded.
type InterruptHandler struct {
	out    io.Writer
	cancel context.CancelFunc
	once   sync.Once
	fired  atomic.Bool
}

// NewInterruptHandler writes its notice to out, or stdout when out is nil.
func NewInterruptHandler(out io.Writer) *InterruptHandler {
	if out == nil {
		out = os.Stdout
	}
	return &InterruptHandler{out: out}
}

// HandleInterrupts derives a context that is canceled on SIGINT or SIGTERM.
// The signal watcher exits once that context is done.
func (h *InterruptHandler) HandleInterrupts(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	h.cancel = cancel

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			h.interrupt()
		case <-ctx.Done():
		}
	}()
	return ctx
}

func (h *InterruptHandler) interrupt() {
	h.once.Do(func() {
		h.fired.Store(true)
		_, err := fmt.Fprintf(h.out, interruptNotice,
			FormatWarning("Wizard interrupted!"),
			FormatInfo("Your answers were not saved. Run windowwise wizard to start again."))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write interrupt message: %v\n", err)
		}
		if h.cancel != nil {
			h.cancel()
		}
	})
}

// WasInterrupted reports whether a signal ended the run.
func (h *InterruptHandler) WasInterrupted() bool {
	return h.fired.Load()
}
