package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"vehicleinfo/internal/lookup/orchestrator"
	"vehicleinfo/internal/lookup/providers"
)

// ANSI colours used for status lines.
const (
	cyan   = "\033[36m"
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

// Printer writes "[+]" and "[!]" status lines, coloured when the output is a
// terminal.
type Printer struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

func (p *Printer) paint(c, s string) string {
	if !p.color {
		return s
	}
	return c + s + reset
}

func (p *Printer) line(c, s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, p.paint(c, s))
}

func (p *Printer) Info(format string, args ...any) {
	p.line(yellow, "[+] "+fmt.Sprintf(format, args...))
}

func (p *Printer) Success(format string, args ...any) {
	p.line(green, "[+] "+fmt.Sprintf(format, args...))
}

func (p *Printer) Fail(format string, args ...any) {
	p.line(red, "[!] "+fmt.Sprintf(format, args...))
}

func (p *Printer) Heading(s string) {
	p.line(cyan, s)
}

// Prompt writes a prompt without a trailing newline.
func (p *Printer) Prompt(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.out, p.paint(yellow, "[+] "+s))
}

// Progress turns chain events into status lines.
type Progress struct {
	*Printer
}

var _ orchestrator.Notifier = Progress{}

func (p Progress) Notify(_ context.Context, e orchestrator.Event) {
	noun := "vehicle information"
	if e.Domain == providers.DomainChallan {
		noun = "challan information"
	}
	switch e.Stage {
	case orchestrator.StageAttempt:
		p.Info("Trying %s (%s)...", e.Source, e.Tier)
	case orchestrator.StageHit:
		p.Success("Retrieved %s from %s!", noun, e.Source)
	case orchestrator.StageMiss:
		p.Fail("%s failed: %s", e.Source, providers.GetCategory(e.Err))
	case orchestrator.StageGenerated:
		p.Info("All sources failed, generated %s based on the plate number.", noun)
	}
}
