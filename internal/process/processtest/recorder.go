// Package processtest provides a recording process.Invoker for tests.
package processtest

import (
	"context"
	"slices"
	"sync"

	"github.com/mrz1836/git-util/internal/process"
)

// Response is the scripted result of a matched command.
type Response struct {
	Stdout   []byte
	ExitCode int
	Err      error
}

type rule struct {
	prefix []string
	resp   Response
}

// Recorder records every command it is asked to run and answers with
// scripted responses. Unmatched commands succeed with empty output.
type Recorder struct {
	mu    sync.Mutex
	rules []rule
	calls []process.Command
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// On scripts resp for every command whose Args start with argsPrefix.
// The first registered matching rule wins.
func (r *Recorder) On(resp Response, argsPrefix ...string) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{prefix: argsPrefix, resp: resp})
	return r
}

// Run implements process.Invoker.
func (r *Recorder) Run(_ context.Context, cmd process.Command) (int, error) {
	resp := r.record(cmd)
	return resp.ExitCode, resp.Err
}

// Output implements process.Invoker.
func (r *Recorder) Output(_ context.Context, cmd process.Command) ([]byte, int, error) {
	resp := r.record(cmd)
	if resp.Err != nil {
		return nil, resp.ExitCode, resp.Err
	}
	return resp.Stdout, resp.ExitCode, nil
}

// Calls returns the recorded commands in order.
func (r *Recorder) Calls() []process.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Args returns only the argument vectors of the recorded commands.
func (r *Recorder) Args() [][]string {
	calls := r.Calls()
	out := make([][]string, len(calls))
	for i, c := range calls {
		out[i] = c.Args
	}
	return out
}

// Called reports whether any recorded command's Args start with argsPrefix.
func (r *Recorder) Called(argsPrefix ...string) bool {
	for _, c := range r.Calls() {
		if hasPrefix(c.Args, argsPrefix) {
			return true
		}
	}
	return false
}

func (r *Recorder) record(cmd process.Command) Response {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd.Args = slices.Clone(cmd.Args)
	r.calls = append(r.calls, cmd)

	for _, rl := range r.rules {
		if hasPrefix(cmd.Args, rl.prefix) {
			return rl.resp
		}
	}
	return Response{}
}

func hasPrefix(args, prefix []string) bool {
	return len(args) >= len(prefix) && slices.Equal(args[:len(prefix)], prefix)
}
