// Package entropy gathers the unstable, process-local facts the oracle mixes
// into its noise rule. The Provider interface keeps the blocking console
// interaction out of the core so servers and tests can inject fixed readings.
package entropy

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"time"
)

// Reading is one entropy observation, taken at most once per divination run.
type Reading struct {
	// Seed feeds the per-index noise perturbation.
	Seed uint64
	// SystemLoad is the fraction of runtime-reported memory currently in
	// use, 0.0..1.0. Advisory only.
	SystemLoad float64
}

type Provider interface {
	Gather() (Reading, error)
}

// Fixed always returns the same reading. Used by the HTTP service (which
// must never block on a console) and by tests.
type Fixed struct {
	Reading Reading
}

func (f Fixed) Gather() (Reading, error) {
	return f.Reading, nil
}

// Clock derives a reading from the wall clock and the runtime's memory
// accounting without any operator interaction.
type Clock struct{}

func (Clock) Gather() (Reading, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return Reading{
		Seed:       uint64(time.Now().UnixNano()) ^ ms.HeapAlloc,
		SystemLoad: memLoad(&ms),
	}, nil
}

// Terminal prompts the operator once and folds how long they hesitated into
// the seed. The prompt happens at most once per run, before any tickets are
// drawn.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func (t Terminal) Gather() (Reading, error) {
	fmt.Fprintln(t.Out, "awaiting observer intervention...")
	fmt.Fprint(t.Out, "press ENTER when the moment feels right: ")

	start := time.Now()
	if _, err := bufio.NewReader(t.In).ReadString('\n'); err != nil && err != io.EOF {
		return Reading{}, fmt.Errorf("read observer input: %w", err)
	}
	elapsed := uint64(time.Since(start).Nanoseconds())
	stamp := uint64(time.Now().UnixNano())

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	seed := elapsed ^ stamp ^ ms.HeapAlloc
	fmt.Fprintf(t.Out, "resonance captured after %dns (0x%x)\n", elapsed, seed)

	return Reading{Seed: seed, SystemLoad: memLoad(&ms)}, nil
}

func memLoad(ms *runtime.MemStats) float64 {
	if ms.Sys == 0 {
		return 0
	}
	return float64(ms.HeapAlloc) / float64(ms.Sys)
}
