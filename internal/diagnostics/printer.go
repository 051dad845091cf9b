package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\x1b[31m"
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// Printer renders diagnostics to a sink, colorized when the sink is a
// terminal.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter builds a printer for out. Color is enabled only when out is a
// terminal.
func NewPrinter(out io.Writer) *Printer {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Printer{out: out, color: color}
}

// Print writes every diagnostic on its own line and a trailing summary.
func (p *Printer) Print(errs []error) {
	for _, err := range errs {
		var de *DiagnosticError
		if errors.As(err, &de) {
			p.printDiagnostic(de)
			continue
		}
		fmt.Fprintf(p.out, "error: %s\n", err)
	}
	if n := len(errs); n > 0 {
		fmt.Fprintf(p.out, "%d error(s)\n", n)
	}
}

func (p *Printer) printDiagnostic(de *DiagnosticError) {
	if p.color {
		fmt.Fprintf(p.out, "%s: %serror[%s]%s: %s%s%s\n",
			de.Token.Position(), ansiRed, de.Code, ansiReset, ansiBold, de.Message, ansiReset)
		return
	}
	fmt.Fprintf(p.out, "%s\n", de.Error())
}
