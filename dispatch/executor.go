package dispatch

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/dshills/discordkit/event"
)

// FallbackReply is the best-effort apology sent to the user when handler
// code fails.
const FallbackReply = "Sorry, I was unable to finish executing that command. Please try again later."

// Executor runs resolved handler invocations off the event-delivery path
// and contains their failures. The pool is unbounded: each submission runs
// on its own goroutine, growing and shrinking with load, with no admission
// control or backpressure.
type Executor struct {
	log     *slog.Logger
	metrics *Metrics
	wg      sync.WaitGroup
}

// NewExecutor creates an executor. metrics may be nil.
func NewExecutor(log *slog.Logger, metrics *Metrics) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{log: log, metrics: metrics}
}

// Submit runs fn on a worker goroutine. An error return or a panic from fn
// is caught, logged under name, and answered with fallback; it never
// propagates to the caller or disturbs other invocations. fallback may be
// nil for invocations with no room for user-visible error text
// (autocomplete); failures are then logged only.
func (e *Executor) Submit(name string, fn func() error, fallback func() error) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		start := time.Now()
		err, panicked := e.run(name, fn)
		e.metrics.record(name, time.Since(start), err != nil, panicked)
		if err == nil {
			return
		}

		e.log.Error("command execution failed",
			"command", name, "error", err)

		if fallback == nil {
			return
		}
		if fbErr := fallback(); fbErr != nil {
			e.log.Error("fallback reply failed",
				"command", name, "error", fbErr)
		}
	}()
}

// run invokes fn, converting a panic into an error.
func (e *Executor) run(name string, fn func() error) (err error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			err = fmt.Errorf("panic: %v", r)
			e.log.Error("command handler panicked",
				"command", name, "panic", r, "stack", string(debug.Stack()))
		}
	}()
	return fn(), false
}

// Wait blocks until all submitted invocations have finished. Intended for
// shutdown and tests.
func (e *Executor) Wait() {
	e.wg.Wait()
}

// interactionFallback chooses the failure reply for an interaction: edit
// the deferred response when the interaction was already acknowledged,
// otherwise send a fresh ephemeral reply.
func interactionFallback(r event.InteractionResponder) func() error {
	return func() error {
		if r.Acknowledged() {
			return r.EditOriginal(FallbackReply)
		}
		return r.Reply(FallbackReply, true)
	}
}

// messageFallback replies in the channel the message came from.
func messageFallback(r event.MessageResponder) func() error {
	return func() error {
		return r.Reply(FallbackReply)
	}
}
