package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/modgen/internal/ports/secondary"
)

// Reporter implements secondary.Reporter by printing one line per message.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintln(r.out, color.New(color.FgYellow).Sprintf("⚠ "+format, args...))
}

func (r *Reporter) Error(format string, args ...any) {
	fmt.Fprintln(r.out, color.New(color.FgRed).Sprintf("✗ "+format, args...))
}

func (r *Reporter) Success(format string, args ...any) {
	fmt.Fprintln(r.out, color.New(color.FgHiGreen).Sprintf("✅ "+format, args...))
}

// Ensure Reporter implements the interface
var _ secondary.Reporter = (*Reporter)(nil)
