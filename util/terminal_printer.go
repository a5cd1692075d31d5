package util

import (
	"io"
	"os"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
)

// TerminalPrinter shows progress lines in place when attached to a
// terminal and appends them otherwise
type TerminalPrinter struct {
	writer *uilive.Writer
	out    io.Writer
	live   bool
}

var _ io.Writer = &TerminalPrinter{}

func NewTerminalPrinter(out *os.File) *TerminalPrinter {
	writer := uilive.New()
	writer.Out = out
	return &TerminalPrinter{
		writer: writer,
		out:    out,
		live:   isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()),
	}
}

// Write replaces the current progress line on a terminal
func (p *TerminalPrinter) Write(b []byte) (int, error) {
	if !p.live {
		return p.out.Write(b)
	}
	n, err := p.writer.Write(b)
	if err != nil {
		return n, err
	}
	return n, p.writer.Flush()
}

// Bypass returns a writer whose output is kept above the progress line
func (p *TerminalPrinter) Bypass() io.Writer {
	if !p.live {
		return p.out
	}
	return p.writer.Bypass()
}
