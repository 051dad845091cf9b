package diagnostics_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/token"
)

func TestDiagnosticErrorFormat(t *testing.T) {
	err := diagnostics.NewError(diagnostics.ErrUnknownMethod,
		token.At("area", "shapes.quill", 12, 5), "type Shape has no method area")
	want := "shapes.quill:12:5: error[A201]: type Shape has no method area"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestDiagnosticErrorWithoutPosition(t *testing.T) {
	err := diagnostics.NewError(diagnostics.ErrUnresolvedExport, token.Token{}, "boom")
	if !strings.HasPrefix(err.Error(), "<unknown>: ") {
		t.Fatalf("zero tokens must render as <unknown>, got %q", err.Error())
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := diagnostics.NewPrinter(&buf)

	p.Print([]error{
		diagnostics.NewError(diagnostics.ErrArgumentCount,
			token.At("move", "app.quill", 3, 1), "method move expects 2 argument(s), got 1"),
		errors.New("reading manifest: file not found"),
	})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 2 diagnostics and a summary, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "app.quill:3:1: error[A202]: method move expects 2 argument(s), got 1" {
		t.Fatalf("unexpected diagnostic line %q", lines[0])
	}
	if lines[1] != "error: reading manifest: file not found" {
		t.Fatalf("unexpected plain error line %q", lines[1])
	}
	if lines[2] != "2 error(s)" {
		t.Fatalf("unexpected summary %q", lines[2])
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("a non-terminal sink must not be colorized")
	}
}

func TestPrinterNothingToPrint(t *testing.T) {
	var buf bytes.Buffer
	diagnostics.NewPrinter(&buf).Print(nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
