package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Printer writes styled diagnostics to a single writer, normally stderr.
// A nil *Printer discards everything, which keeps tests and library callers simple.
type Printer struct {
	mu     sync.Mutex
	w      io.Writer
	styles *Styles
}

// NewPrinter creates a Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: NewStyles(w)}
}

// DryRun reports a command that was not run because of --dry-run.
func (p *Printer) DryRun(commandLine string) {
	p.println(p.style().DryRun.Render("command that would be run: `" + commandLine + "`"))
}

// Command echoes a command before it is run (--print-commands).
func (p *Printer) Command(commandLine string) {
	p.println(p.style().Command.Render("command: `" + commandLine + "`"))
}

// Error reports a failure, optionally followed by a suggested action.
func (p *Printer) Error(msg, action string) {
	p.println(p.style().Error.Render("Error: " + msg))
	if action != "" {
		p.println(p.style().Hint.Render("  " + action))
	}
}

// Line writes text verbatim in the error color, e.g. an offending diff line.
func (p *Printer) Line(text string) {
	p.println(p.style().Error.Render(strings.TrimRight(text, "\n")))
}

func (p *Printer) style() *Styles {
	if p == nil {
		return &Styles{}
	}
	return p.styles
}

func (p *Printer) println(s string) {
	if p == nil || p.w == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.w, s)
}
