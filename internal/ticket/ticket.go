// Package ticket orchestrates the generation pipeline: facts in, weight
// accumulation, sampling, sorted tickets out.
package ticket

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/takarabako/loto/internal/draw"
	"github.com/takarabako/loto/internal/game"
	"github.com/takarabako/loto/internal/oracle"
)

type Mode string

const (
	// ModePure draws unweighted uniform tickets.
	ModePure Mode = "pure"
	// ModeOracle biases the draw through the divination rule pipeline.
	ModeOracle Mode = "oracle"
)

func ParseMode(s string) (Mode, error) {
	switch s {
	case "pure", "":
		return ModePure, nil
	case "oracle":
		return ModeOracle, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Request asks for a batch of n tickets for one game variant. Facts is only
// consulted in oracle mode and must be built for the same variant.
type Request struct {
	Variant game.Variant
	Mode    Mode
	N       int
	Facts   oracle.Facts
}

// Batch is one generation result. Trace is empty in pure mode. FellBack
// reports that at least one weighted draw degraded to the uniform path.
type Batch struct {
	Tickets  [][]int
	Trace    []oracle.RuleResult
	FellBack bool
}

// Generator produces ticket batches. It owns the process-wide pseudorandom
// handle; successive draws share it sequentially.
type Generator struct {
	engine *oracle.Engine
	rng    *rand.Rand
	logger *slog.Logger
}

func NewGenerator(logger *slog.Logger) *Generator {
	return &Generator{
		engine: oracle.NewEngine(logger),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
}

// NewGeneratorWithSource builds a Generator over a caller-supplied random
// source, for deterministic tests.
func NewGeneratorWithSource(logger *slog.Logger, src rand.Source) *Generator {
	return &Generator{
		engine: oracle.NewEngine(logger),
		rng:    rand.New(src),
		logger: logger,
	}
}

// Generate runs the pipeline to completion: in oracle mode the weight vector
// is accumulated once per batch, then sampled per ticket. Every path yields
// valid tickets; degenerate weights silently use the uniform draw.
func (g *Generator) Generate(req Request) (Batch, error) {
	if err := req.Variant.Validate(); err != nil {
		return Batch{}, fmt.Errorf("invalid game: %w", err)
	}
	if req.N < 1 {
		return Batch{}, fmt.Errorf("batch size must be >= 1, got %d", req.N)
	}

	batch := Batch{Tickets: make([][]int, 0, req.N)}

	if req.Mode == ModeOracle {
		weights, trace := g.engine.Weigh(req.Facts)
		batch.Trace = trace
		for i := 0; i < req.N; i++ {
			nums, fellBack := draw.Weighted(weights, req.Variant.Picks, g.rng)
			batch.Tickets = append(batch.Tickets, nums)
			if fellBack {
				batch.FellBack = true
			}
		}
		return batch, nil
	}

	for i := 0; i < req.N; i++ {
		batch.Tickets = append(batch.Tickets, draw.Uniform(req.Variant.Max, req.Variant.Picks, g.rng))
	}
	return batch, nil
}
