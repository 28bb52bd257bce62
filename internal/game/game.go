package game

import "fmt"

// Variant describes one lottery game: Picks distinct numbers drawn from 1..Max.
type Variant struct {
	Name  string `json:"name"`
	Max   int    `json:"max"`
	Picks int    `json:"picks"`
}

var (
	Loto6 = Variant{Name: "loto6", Max: 43, Picks: 6}
	Loto7 = Variant{Name: "loto7", Max: 37, Picks: 7}
)

// FromName resolves a game name. An empty name selects loto6.
func FromName(name string) (Variant, error) {
	switch name {
	case "loto6", "":
		return Loto6, nil
	case "loto7":
		return Loto7, nil
	default:
		return Variant{}, fmt.Errorf("unknown game %q", name)
	}
}

func (v Variant) Validate() error {
	if v.Max < 1 {
		return fmt.Errorf("max must be >= 1, got %d", v.Max)
	}
	if v.Picks < 1 || v.Picks > v.Max {
		return fmt.Errorf("picks must be in 1..%d, got %d", v.Max, v.Picks)
	}
	return nil
}
