package oracle

// minWeight is the floor applied before sampling so that mean normalization
// and chooser construction stay defined even if a rule drives a slot to zero.
const minWeight = 1e-9

// Vector holds one relative weight per candidate number, addressed 1..Max().
// Index 0 is unused padding so rules and samplers can use the number itself
// as the index.
type Vector []float64

// NewVector returns a uniform vector of 1.0 over 1..max.
func NewVector(max int) Vector {
	v := make(Vector, max+1)
	for i := 1; i <= max; i++ {
		v[i] = 1.0
	}
	return v
}

// Max returns the top of the candidate domain.
func (v Vector) Max() int {
	return len(v) - 1
}

// Clamp raises every non-positive entry to minWeight.
func (v Vector) Clamp() {
	for i := 1; i < len(v); i++ {
		if v[i] < minWeight {
			v[i] = minWeight
		}
	}
}

// Normalize rescales the vector so the mean weight is 1.0. A non-positive
// mean leaves the vector untouched; the raw weights are used as-is.
func (v Vector) Normalize() {
	var sum float64
	for i := 1; i < len(v); i++ {
		sum += v[i]
	}
	mean := sum / float64(len(v)-1)
	if mean <= 0 {
		return
	}
	for i := 1; i < len(v); i++ {
		v[i] /= mean
	}
}

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}
