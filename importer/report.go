package importer

import (
	"fmt"
	"io"
)

// Summary is the batch-level rollup. Per-item retry detail (index, code,
// error kind) stays in the outcome slice.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Failed() {
			s.Failed++
		} else {
			s.Succeeded++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("imported %d of %d items (%d failed)", s.Succeeded, s.Total, s.Failed)
}

// Reporter receives one call per successfully inserted item and one call
// when the batch completes. It is a pass-through side effect; a headless
// embedding uses NopReporter.
type Reporter interface {
	ItemImported(o Outcome)
	BatchCompleted(s Summary)
}

type NopReporter struct{}

func (NopReporter) ItemImported(Outcome)   {}
func (NopReporter) BatchCompleted(Summary) {}

type ConsoleReporter struct {
	Out io.Writer
}

func (r ConsoleReporter) ItemImported(o Outcome) {
	line := fmt.Sprintf("Imported %q (code=%s)", o.Descriptor.Name, o.Descriptor.Code)
	if o.ProductId > 0 {
		line += fmt.Sprintf(" product_id=%d", o.ProductId)
	}
	if o.HistoryId > 0 {
		line += fmt.Sprintf(" history_id=%d", o.HistoryId)
	}
	fmt.Fprintln(r.Out, line)
}

func (r ConsoleReporter) BatchCompleted(s Summary) {
	fmt.Fprintln(r.Out, s.String())
}
