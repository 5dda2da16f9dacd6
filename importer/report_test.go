package importer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSummarize_CountsFailures(t *testing.T) {
	outcomes := []Outcome{
		{Index: 0, ProductId: 1},
		{Index: 1, ErrorKind: ErrorKindInvalidDescriptor, Err: errors.New("quantity cannot be negative")},
		{Index: 2, HistoryId: 7},
	}
	s := Summarize(outcomes)
	if s.Total != 3 || s.Succeeded != 2 || s.Failed != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if got := s.String(); got != "imported 2 of 3 items (1 failed)" {
		t.Fatalf("unexpected summary string: %q", got)
	}
}

func TestSummarize_EmptyBatch(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.Succeeded != 0 || s.Failed != 0 {
		t.Fatalf("unexpected summary for empty batch: %+v", s)
	}
}

func TestConsoleReporter_Lines(t *testing.T) {
	var buf bytes.Buffer
	r := ConsoleReporter{Out: &buf}

	r.ItemImported(Outcome{
		Descriptor: ProductDescriptor{Name: "Wireless Optical Mouse", Code: "PRD-001"},
		ProductId:  3,
		HistoryId:  9,
	})
	r.BatchCompleted(Summary{Total: 1, Succeeded: 1})

	out := buf.String()
	if !strings.Contains(out, `Imported "Wireless Optical Mouse" (code=PRD-001) product_id=3 history_id=9`) {
		t.Fatalf("missing item line, got: %q", out)
	}
	if !strings.Contains(out, "imported 1 of 1 items (0 failed)") {
		t.Fatalf("missing summary line, got: %q", out)
	}
}
