package ticket

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/takarabako/loto/internal/entropy"
	"github.com/takarabako/loto/internal/game"
	"github.com/takarabako/loto/internal/oracle"
)

func testGenerator() *Generator {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGeneratorWithSource(logger, rand.NewSource(42))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"pure", ModePure, false},
		{"", ModePure, false},
		{"oracle", ModeOracle, false},
		{"destiny", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseMode(%q)", tt.in)
		} else {
			assert.NoError(t, err, "ParseMode(%q)", tt.in)
		}
		assert.Equal(t, tt.want, got, "ParseMode(%q)", tt.in)
	}
}

// loto6 with all optional facts absent: 6 distinct ascending integers in
// [1, 43], with only the always-active rules in the trace.
func TestGenerateOracleNoOptionalFacts(t *testing.T) {
	g := testGenerator()
	facts := oracle.NewFacts(game.Loto6, time.Now(), nil, nil, nil, entropy.Reading{Seed: 5})

	batch, err := g.Generate(Request{Variant: game.Loto6, Mode: ModeOracle, N: 1, Facts: facts})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Tickets) != 1 {
		t.Fatalf("expected 1 ticket, got %d", len(batch.Tickets))
	}

	nums := batch.Tickets[0]
	assert.Len(t, nums, 6)
	prev := 0
	for _, n := range nums {
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 43)
		assert.Greater(t, n, prev, "not ascending: %v", nums)
		prev = n
	}
	assert.Len(t, batch.Trace, 9)
}

func TestGeneratePureBatch(t *testing.T) {
	g := testGenerator()

	batch, err := g.Generate(Request{Variant: game.Loto7, Mode: ModePure, N: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Len(t, batch.Tickets, 10)
	assert.Empty(t, batch.Trace, "pure mode should carry no trace")
	for _, nums := range batch.Tickets {
		assert.Len(t, nums, 7)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	g := testGenerator()

	_, err := g.Generate(Request{Variant: game.Loto6, Mode: ModePure, N: 0})
	assert.Error(t, err, "n=0 should be rejected")

	bad := game.Variant{Name: "bad", Max: 3, Picks: 9}
	_, err = g.Generate(Request{Variant: bad, Mode: ModePure, N: 1})
	assert.Error(t, err, "picks > max should be rejected")
}
