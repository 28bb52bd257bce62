// Package draw turns a weight vector into concrete tickets. The weighted
// path samples with rejection from a discrete distribution; every degenerate
// condition degrades to the uniform path, so callers always get a valid
// ticket and never an error.
package draw

import (
	"math/rand"
	"sort"

	wr "github.com/mroth/weightedrand"

	"github.com/takarabako/loto/internal/oracle"
)

// weightScale converts normalized float weights into the integer weights the
// chooser expects while keeping enough resolution for small biases.
const weightScale = 1_000_000

// Weighted draws count distinct numbers from 1..w.Max() according to the
// vector and returns them ascending. The second return reports whether the
// draw fell back to the uniform path because the distribution could not be
// built.
func Weighted(w oracle.Vector, count int, rng *rand.Rand) ([]int, bool) {
	max := w.Max()
	if count > max {
		count = max
	}

	w.Normalize()

	var total uint64
	choices := make([]wr.Choice, max)
	for i := 1; i <= max; i++ {
		scaled := uint(w[i] * weightScale)
		if w[i] > 0 && scaled == 0 {
			// Keep clamped-but-positive slots reachable so a
			// count == max draw still terminates.
			scaled = 1
		}
		total += uint64(scaled)
		choices[i-1] = wr.Choice{Item: i, Weight: scaled}
	}
	if total == 0 {
		return Uniform(max, count, rng), true
	}

	chooser, err := wr.NewChooser(choices...)
	if err != nil {
		return Uniform(max, count, rng), true
	}

	picked := make(map[int]bool, count)
	nums := make([]int, 0, count)
	for len(nums) < count {
		n := chooser.PickSource(rng).(int)
		if picked[n] {
			continue
		}
		picked[n] = true
		nums = append(nums, n)
	}

	sort.Ints(nums)
	return nums, false
}

// Uniform draws count distinct numbers from 1..max with equal probability
// via a partial Fisher-Yates shuffle and returns them ascending. This is
// both the plain ticket mode and the fallback for degenerate weights.
func Uniform(max, count int, rng *rand.Rand) []int {
	if count > max {
		count = max
	}
	nums := make([]int, max)
	for i := range nums {
		nums[i] = i + 1
	}
	for i := max - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		nums[i], nums[j] = nums[j], nums[i]
	}
	nums = nums[:count]
	sort.Ints(nums)
	return nums
}
