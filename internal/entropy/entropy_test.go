package entropy

import (
	"bytes"
	"strings"
	"testing"
)

func TestFixedReturnsInjectedReading(t *testing.T) {
	want := Reading{Seed: 0xDEADBEEF, SystemLoad: 0.42}
	p := Fixed{Reading: want}

	for i := 0; i < 3; i++ {
		got, err := p.Gather()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	}
}

func TestClockGather(t *testing.T) {
	r, err := Clock{}.Gather()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Seed == 0 {
		t.Error("expected non-zero seed")
	}
	if r.SystemLoad < 0 || r.SystemLoad > 1 {
		t.Errorf("system load out of range: %f", r.SystemLoad)
	}
}

func TestTerminalGather(t *testing.T) {
	var out bytes.Buffer
	p := Terminal{In: strings.NewReader("\n"), Out: &out}

	r, err := p.Gather()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Seed == 0 {
		t.Error("expected non-zero seed")
	}
	if !strings.Contains(out.String(), "press ENTER") {
		t.Errorf("prompt missing from output: %q", out.String())
	}
}

func TestTerminalGatherEOF(t *testing.T) {
	var out bytes.Buffer
	p := Terminal{In: strings.NewReader(""), Out: &out}

	if _, err := p.Gather(); err != nil {
		t.Fatalf("EOF should not be an error: %v", err)
	}
}
