package runner

import (
	"context"
	"sync"
)

// Recorder is a Runner that records every command instead of executing it.
// Handler, when set, is called after recording and its result is returned;
// tests use it to simulate side effects or failures.
type Recorder struct {
	Handler func(ctx context.Context, cmd Command) error

	mu    sync.Mutex
	calls []Command
}

// Compile-time interface compliance check.
var _ Runner = (*Recorder)(nil)

// Run records cmd and delegates to Handler.
func (r *Recorder) Run(ctx context.Context, cmd Command) error {
	r.mu.Lock()
	cp := cmd
	cp.Args = append([]string(nil), cmd.Args...)
	r.calls = append(r.calls, cp)
	r.mu.Unlock()

	if r.Handler != nil {
		return r.Handler(ctx, cmd)
	}
	return nil
}

// Calls returns the recorded commands in invocation order.
func (r *Recorder) Calls() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.calls))
	copy(out, r.calls)
	return out
}

// Lines returns the recorded commands rendered with Command.String.
func (r *Recorder) Lines() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}
