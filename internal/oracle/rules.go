package oracle

import (
	"fmt"

	"github.com/takarabako/loto/internal/almanac"
)

// Rule biases per-number weights based on one context fact. Apply reports
// whether the rule fired and a short reason for the advisory trace. Rules
// are stateless, never error, and skip silently when their fact is absent.
type Rule struct {
	Name  string
	Apply func(f Facts, w Vector) (fired bool, reason string)
}

// Roster returns the rules in registration order. The order is a contract:
// multiplicative effects compose, so reordering changes the final
// distribution and the narrative shown to the user.
func Roster() []Rule {
	return []Rule{
		{Name: "zodiac_sign", Apply: applySign},
		{Name: "zodiac_animal", Apply: applyAnimal},
		{Name: "element", Apply: applyElement},
		{Name: "lunar_phase", Apply: applyMoon},
		{Name: "day_category", Apply: applyRokuyo},
		{Name: "aura_color", Apply: applyAura},
		{Name: "blood_type", Apply: applyBlood},
		{Name: "entropy", Apply: applyEntropy},
		{Name: "day_month_echo", Apply: applyEcho},
	}
}

func applySign(f Facts, w Vector) (bool, string) {
	if f.Sign == nil {
		return false, "no birth date"
	}
	max := w.Max()
	switch *f.Sign {
	case almanac.SignAries:
		for i := 1; i <= max; i++ {
			if i > max*7/10 {
				w[i] *= 1.2
			}
			if isPrime(i) {
				w[i] *= 1.3
			}
		}
		return true, "aries: bold primes and the high range"
	case almanac.SignTaurus:
		for i := 1; i <= max; i++ {
			if i <= max/2 {
				w[i] *= 1.2
			}
			if i%5 == 0 {
				w[i] *= 1.3
			}
		}
		return true, "taurus: steady low range and multiples of five"
	case almanac.SignGemini:
		for i := 1; i <= max; i++ {
			if i > 10 && i%11 == 0 {
				w[i] *= 1.5
			}
		}
		return true, "gemini: twin-digit numbers"
	case almanac.SignCancer:
		for i := 1; i <= max/3; i++ {
			w[i] *= 1.3
		}
		return true, "cancer: numbers close to home"
	default:
		return true, fmt.Sprintf("%s: general blessing, weights untouched", *f.Sign)
	}
}

func applyAnimal(f Facts, w Vector) (bool, string) {
	if f.Animal == nil {
		return false, "no birth date"
	}
	max := w.Max()
	switch *f.Animal {
	case almanac.AnimalDragon:
		for i := max - 9; i <= max; i++ {
			if i >= 1 {
				w[i] *= 1.5
			}
		}
		return true, "dragon: the ten largest numbers"
	case almanac.AnimalRat:
		for i := 1; i <= 10 && i <= max; i++ {
			w[i] *= 1.4
		}
		return true, "rat: clever starts, the ten smallest numbers"
	case almanac.AnimalTiger:
		for i := 1; i <= max; i += 2 {
			w[i] *= 1.2
		}
		return true, "tiger: odd numbers"
	default:
		return true, fmt.Sprintf("%s: standard fortune, weights untouched", *f.Animal)
	}
}

func applyElement(f Facts, w Vector) (bool, string) {
	if f.Element == nil {
		return false, "no birth date"
	}
	max := w.Max()
	switch *f.Element {
	case almanac.ElementWood:
		for i := 3; i <= max; i += 3 {
			w[i] *= 1.2
		}
		return true, "wood: multiples of three"
	case almanac.ElementFire:
		for i := 1; i <= max; i++ {
			if i/10+i%10 > 5 {
				w[i] *= 1.2
			}
		}
		return true, "fire: digit sums above five"
	case almanac.ElementEarth:
		for i := 1; i <= max; i++ {
			w[i] *= 1.05
		}
		return true, "earth: a flat, grounding boost"
	case almanac.ElementMetal:
		for i := 2; i <= max; i += 2 {
			w[i] *= 1.2
		}
		return true, "metal: even numbers"
	default: // water
		for i := 1; i <= max; i++ {
			switch i % 10 {
			case 2, 3, 8:
				w[i] *= 1.2
			}
		}
		return true, "water: numbers ending in 2, 3 or 8"
	}
}

func applyMoon(f Facts, w Vector) (bool, string) {
	max := w.Max()
	switch f.Moon {
	case almanac.MoonNew:
		for i := 1; i <= max/2; i++ {
			w[i] *= 1.2
		}
		return true, "new moon: beginnings, the lower half"
	case almanac.MoonWaxing:
		for i := 1; i <= max; i++ {
			w[i] *= 1.0 + 0.3*float64(i)/float64(max)
		}
		return true, "waxing moon: an ascending ramp"
	case almanac.MoonFull:
		for i := max/2 + 1; i <= max; i++ {
			w[i] *= 1.25
		}
		return true, "full moon: abundance, the upper half"
	default: // waning
		for i := 1; i <= max; i++ {
			w[i] *= 1.3 - 0.3*float64(i)/float64(max)
		}
		return true, "waning moon: a descending ramp"
	}
}

func applyRokuyo(f Facts, w Vector) (bool, string) {
	max := w.Max()
	switch f.Rokuyo {
	case almanac.RokuyoTaian:
		for i := 2; i <= max; i += 2 {
			w[i] *= 1.15
		}
		return true, "taian: even numbers gain a gentle blessing"
	case almanac.RokuyoButsumetsu:
		if max >= 10 {
			w[1] *= 0.8
			w[max] *= 0.8
		}
		return true, "butsumetsu: the extremes are dampened"
	case almanac.RokuyoSenkatsu:
		for i := 1; i <= max/2; i++ {
			w[i] *= 1.2
		}
		return true, "senkatsu: win early, the first half"
	case almanac.RokuyoSenbu:
		for i := max/2 + 1; i <= max; i++ {
			w[i] *= 1.2
		}
		return true, "senbu: win late, the second half"
	default: // tomobiki, shakku
		return true, fmt.Sprintf("%s: general luck, weights untouched", f.Rokuyo)
	}
}

func applyAura(f Facts, w Vector) (bool, string) {
	if f.AuraColor == nil {
		return false, "no aura color"
	}
	max := w.Max()
	q := max / 4
	boost := func(lo, hi int) {
		for i := lo; i <= hi && i <= max; i++ {
			if i >= 1 {
				w[i] *= 1.3
			}
		}
	}
	switch *f.AuraColor {
	case AuraGreen:
		boost(1, q)
		return true, "green aura (east/wood): growth in the first quadrant"
	case AuraBlue:
		boost(q+1, 2*q)
		return true, "blue aura (north/water): flow in the second quadrant"
	case AuraRed:
		boost(2*q+1, 3*q)
		return true, "red aura (south/fire): vitality in the third quadrant"
	case AuraGold:
		boost(3*q+1, max)
		return true, "gold aura (west/metal): wealth in the fourth quadrant"
	default:
		return true, fmt.Sprintf("%s aura: harmonizing, weights untouched", *f.AuraColor)
	}
}

func applyBlood(f Facts, w Vector) (bool, string) {
	if f.BloodType == nil {
		return false, "no blood type"
	}
	max := w.Max()
	switch *f.BloodType {
	case BloodA:
		for i := max / 3; i <= max*2/3; i++ {
			if i >= 1 {
				w[i] *= 1.25
			}
		}
		return true, "type A: the balanced middle third"
	case BloodB:
		for i := 1; i <= max; i++ {
			if i < 5 || i > max-5 {
				w[i] *= 1.3
			}
		}
		return true, "type B: individuality at both extremes"
	case BloodO:
		for i := max/2 + 1; i <= max; i++ {
			w[i] *= 1.2
		}
		return true, "type O: broad strokes, the upper half"
	default: // AB
		for i := 11; i <= max; i += 11 {
			w[i] *= 1.5
		}
		return true, "type AB: symmetrical repeated digits"
	}
}

// applyEntropy is the only additive rule: a small pseudorandom perturbation
// in [0, 0.1) per index, derived from a splitmix-style integer hash of the
// run seed and the index. Always active.
func applyEntropy(f Facts, w Vector) (bool, string) {
	for i := 1; i <= w.Max(); i++ {
		x := (f.Entropy ^ uint64(i)) * 0x517cc1b727220a95
		x ^= x >> 12
		w[i] += float64(x%100) / 1000.0
	}
	return true, fmt.Sprintf("additive noise from seed 0x%x", f.Entropy)
}

// applyEcho boosts numbers that echo today's calendar: the day of month,
// the month number, and their sum. Always active.
func applyEcho(f Facts, w Vector) (bool, string) {
	day := f.Now.Day()
	month := int(f.Now.Month())
	for i := 1; i <= w.Max(); i++ {
		if i == day || i == month || i == day+month {
			w[i] *= 1.5
		}
	}
	return true, fmt.Sprintf("echoing day %d and month %d", day, month)
}

func isPrime(n int) bool {
	if n <= 1 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
