package oracle

import (
	"fmt"
	"strings"
	"time"

	"github.com/takarabako/loto/internal/almanac"
	"github.com/takarabako/loto/internal/entropy"
	"github.com/takarabako/loto/internal/game"
)

type BloodType string

const (
	BloodA  BloodType = "A"
	BloodB  BloodType = "B"
	BloodO  BloodType = "O"
	BloodAB BloodType = "AB"
)

func ParseBloodType(s string) (BloodType, error) {
	switch strings.ToUpper(s) {
	case "A":
		return BloodA, nil
	case "B":
		return BloodB, nil
	case "O":
		return BloodO, nil
	case "AB":
		return BloodAB, nil
	default:
		return "", fmt.Errorf("unknown blood type %q", s)
	}
}

type AuraColor string

const (
	AuraRed    AuraColor = "red"
	AuraBlue   AuraColor = "blue"
	AuraGreen  AuraColor = "green"
	AuraGold   AuraColor = "gold"
	AuraPurple AuraColor = "purple"
	AuraWhite  AuraColor = "white"
	AuraBlack  AuraColor = "black"
)

func ParseAuraColor(s string) (AuraColor, error) {
	switch strings.ToLower(s) {
	case "red":
		return AuraRed, nil
	case "blue":
		return AuraBlue, nil
	case "green":
		return AuraGreen, nil
	case "gold":
		return AuraGold, nil
	case "purple":
		return AuraPurple, nil
	case "white":
		return AuraWhite, nil
	case "black":
		return AuraBlack, nil
	default:
		return "", fmt.Errorf("unknown aura color %q", s)
	}
}

// Facts is the read-only input bundle every rule sees during one divination
// run. Optional user facts are nil when absent; derived facts are computed
// once here, before any rule runs.
type Facts struct {
	Max   int
	Count int
	Now   time.Time

	// User inputs
	BirthDate *time.Time
	BloodType *BloodType
	AuraColor *AuraColor

	// Derived from the birth date, when present
	Sign    *almanac.Sign
	Animal  *almanac.Animal
	Element *almanac.Element

	// Derived from the current instant
	Rokuyo  almanac.Rokuyo
	Moon    almanac.MoonPhase
	Weekday time.Weekday

	// Process trivia
	Entropy    uint64
	SystemLoad float64
}

// NewFacts builds the immutable fact bundle for one run.
func NewFacts(v game.Variant, now time.Time, birth *time.Time, blood *BloodType, aura *AuraColor, reading entropy.Reading) Facts {
	now = now.UTC()
	f := Facts{
		Max:        v.Max,
		Count:      v.Picks,
		Now:        now,
		BirthDate:  birth,
		BloodType:  blood,
		AuraColor:  aura,
		Rokuyo:     almanac.RokuyoOf(now),
		Moon:       almanac.MoonPhaseOf(now),
		Weekday:    now.Weekday(),
		Entropy:    reading.Seed,
		SystemLoad: reading.SystemLoad,
	}
	if birth != nil {
		sign := almanac.SignOf(*birth)
		animal := almanac.AnimalOf(birth.Year())
		element := almanac.ElementOf(birth.Year())
		f.Sign = &sign
		f.Animal = &animal
		f.Element = &element
	}
	return f
}
