package oracle

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/takarabako/loto/internal/entropy"
	"github.com/takarabako/loto/internal/game"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWeighAppliesRosterInOrder(t *testing.T) {
	e := NewEngine(discardLogger())
	f := NewFacts(game.Loto6, time.Now(), nil, nil, nil, entropy.Reading{Seed: 1})

	w, trace := e.Weigh(f)

	wantOrder := []string{
		"zodiac_sign", "zodiac_animal", "element", "lunar_phase",
		"day_category", "aura_color", "blood_type", "entropy", "day_month_echo",
	}
	if len(trace) != len(wantOrder) {
		t.Fatalf("expected %d trace entries, got %d", len(wantOrder), len(trace))
	}
	for i, want := range wantOrder {
		assert.Equal(t, want, trace[i].Rule, "trace[%d]", i)
	}
	assert.Equal(t, 43, w.Max())
}

func TestWeighAllEntriesPositive(t *testing.T) {
	e := NewEngine(discardLogger())
	birth := time.Date(1975, time.November, 30, 0, 0, 0, 0, time.UTC)
	blood := BloodAB
	aura := AuraBlack

	f := NewFacts(game.Loto7, time.Now(), &birth, &blood, &aura, entropy.Reading{Seed: 999})
	w, _ := e.Weigh(f)

	for i := 1; i <= w.Max(); i++ {
		assert.Greater(t, w[i], 0.0, "index %d", i)
	}
}

// With no optional facts, only the always-active rules mutate the vector.
func TestWeighWithoutOptionalFacts(t *testing.T) {
	e := NewEngine(discardLogger())
	f := NewFacts(game.Loto6, time.Now(), nil, nil, nil, entropy.Reading{Seed: 7})

	_, trace := e.Weigh(f)

	fired := map[string]bool{}
	for _, r := range trace {
		fired[r.Rule] = r.Fired
	}
	for _, name := range []string{"zodiac_sign", "zodiac_animal", "element", "aura_color", "blood_type"} {
		assert.False(t, fired[name], "%s fired without its fact", name)
	}
	for _, name := range []string{"lunar_phase", "day_category", "entropy", "day_month_echo"} {
		assert.True(t, fired[name], "%s should always fire", name)
	}
}

// Same facts in, same weights out: the pipeline is pure given a fixed seed.
func TestWeighDeterministicForFixedFacts(t *testing.T) {
	e := NewEngine(discardLogger())
	now := time.Date(2026, time.August, 26, 9, 30, 0, 0, time.UTC)
	birth := time.Date(1991, time.February, 11, 0, 0, 0, 0, time.UTC)
	blood := BloodA

	f := NewFacts(game.Loto6, now, &birth, &blood, nil, entropy.Reading{Seed: 31337})

	a, _ := e.Weigh(f)
	b, _ := e.Weigh(f)
	for i := 1; i <= a.Max(); i++ {
		assert.Equal(t, a[i], b[i], "index %d", i)
	}
}
