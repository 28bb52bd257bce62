// Package almanac derives the calendar trivia the oracle rules key off:
// western zodiac sign, zodiac animal year, elemental stem, rokuyō day
// category and lunar phase. Everything here is a pure function of its
// input date, so derivations are idempotent and safe to compute once per
// divination run.
package almanac

import "time"

type Sign string

const (
	SignAries       Sign = "aries"
	SignTaurus      Sign = "taurus"
	SignGemini      Sign = "gemini"
	SignCancer      Sign = "cancer"
	SignLeo         Sign = "leo"
	SignVirgo       Sign = "virgo"
	SignLibra       Sign = "libra"
	SignScorpio     Sign = "scorpio"
	SignSagittarius Sign = "sagittarius"
	SignCapricorn   Sign = "capricorn"
	SignAquarius    Sign = "aquarius"
	SignPisces      Sign = "pisces"
)

type Animal string

const (
	AnimalRat     Animal = "rat"
	AnimalOx      Animal = "ox"
	AnimalTiger   Animal = "tiger"
	AnimalRabbit  Animal = "rabbit"
	AnimalDragon  Animal = "dragon"
	AnimalSnake   Animal = "snake"
	AnimalHorse   Animal = "horse"
	AnimalGoat    Animal = "goat"
	AnimalMonkey  Animal = "monkey"
	AnimalRooster Animal = "rooster"
	AnimalDog     Animal = "dog"
	AnimalPig     Animal = "pig"
)

type Element string

const (
	ElementWood  Element = "wood"
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementMetal Element = "metal"
	ElementWater Element = "water"
)

type Rokuyo string

const (
	RokuyoTaian      Rokuyo = "taian"
	RokuyoButsumetsu Rokuyo = "butsumetsu"
	RokuyoTomobiki   Rokuyo = "tomobiki"
	RokuyoSenkatsu   Rokuyo = "senkatsu"
	RokuyoSenbu      Rokuyo = "senbu"
	RokuyoShakku     Rokuyo = "shakku"
)

type MoonPhase string

const (
	MoonNew    MoonPhase = "new"
	MoonWaxing MoonPhase = "waxing"
	MoonFull   MoonPhase = "full"
	MoonWaning MoonPhase = "waning"
)

// SignOf maps a birth date to its western zodiac sign.
func SignOf(d time.Time) Sign {
	day := d.Day()
	switch d.Month() {
	case time.January:
		if day >= 20 {
			return SignAquarius
		}
		return SignCapricorn
	case time.February:
		if day >= 19 {
			return SignPisces
		}
		return SignAquarius
	case time.March:
		if day >= 21 {
			return SignAries
		}
		return SignPisces
	case time.April:
		if day >= 20 {
			return SignTaurus
		}
		return SignAries
	case time.May:
		if day >= 21 {
			return SignGemini
		}
		return SignTaurus
	case time.June:
		if day >= 22 {
			return SignCancer
		}
		return SignGemini
	case time.July:
		if day >= 23 {
			return SignLeo
		}
		return SignCancer
	case time.August:
		if day >= 23 {
			return SignVirgo
		}
		return SignLeo
	case time.September:
		if day >= 23 {
			return SignLibra
		}
		return SignVirgo
	case time.October:
		if day >= 24 {
			return SignScorpio
		}
		return SignLibra
	case time.November:
		if day >= 23 {
			return SignSagittarius
		}
		return SignScorpio
	default: // December
		if day >= 22 {
			return SignCapricorn
		}
		return SignSagittarius
	}
}

var animalCycle = [12]Animal{
	AnimalRat, AnimalOx, AnimalTiger, AnimalRabbit, AnimalDragon, AnimalSnake,
	AnimalHorse, AnimalGoat, AnimalMonkey, AnimalRooster, AnimalDog, AnimalPig,
}

// AnimalOf maps a birth year to its zodiac animal. Year 4 CE anchors the rat.
func AnimalOf(year int) Animal {
	return animalCycle[((year-4)%12+12)%12]
}

// ElementOf maps a birth year's heavenly stem (last digit) to its element.
func ElementOf(year int) Element {
	switch ((year % 10) + 10) % 10 {
	case 4, 5:
		return ElementWood
	case 6, 7:
		return ElementFire
	case 8, 9:
		return ElementEarth
	case 0, 1:
		return ElementMetal
	default: // 2, 3
		return ElementWater
	}
}

// RokuyoOf maps a calendar date to its rokuyō day category. This is a
// day-of-month approximation, not the traditional lunisolar calculation.
func RokuyoOf(d time.Time) Rokuyo {
	switch d.Day() % 6 {
	case 0:
		return RokuyoTaian
	case 1:
		return RokuyoButsumetsu
	case 2:
		return RokuyoTomobiki
	case 3:
		return RokuyoSenkatsu
	case 4:
		return RokuyoSenbu
	default:
		return RokuyoShakku
	}
}

// MoonPhaseOf buckets the day of month into a rough 30-day lunar cycle.
func MoonPhaseOf(d time.Time) MoonPhase {
	day := d.Day() % 30
	switch {
	case day < 7:
		return MoonNew
	case day < 15:
		return MoonWaxing
	case day < 22:
		return MoonFull
	default:
		return MoonWaning
	}
}
