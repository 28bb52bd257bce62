package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/takarabako/loto/internal/csvout"
	"github.com/takarabako/loto/internal/entropy"
	"github.com/takarabako/loto/internal/game"
	"github.com/takarabako/loto/internal/oracle"
	"github.com/takarabako/loto/internal/ticket"
)

func main() {
	gameName := flag.String("type", "loto6", "game variant: loto6 or loto7")
	algo := flag.String("algo", "pure", "generation mode: pure or oracle")
	n := flag.Int("n", 1, "number of tickets to draw")
	outPath := flag.String("out", "", "optional CSV output path")
	birthDate := flag.String("birth-date", "", "birth date, YYYY-MM-DD (oracle mode)")
	bloodType := flag.String("blood-type", "", "blood type: A, B, O or AB (oracle mode)")
	auraColor := flag.String("aura-color", "", "aura color (oracle mode)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*gameName, *algo, *n, *outPath, *birthDate, *bloodType, *auraColor, logger); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(gameName, algo string, n int, outPath, birthDate, bloodType, auraColor string, logger *slog.Logger) error {
	variant, err := game.FromName(gameName)
	if err != nil {
		return err
	}
	mode, err := ticket.ParseMode(algo)
	if err != nil {
		return err
	}

	req := ticket.Request{Variant: variant, Mode: mode, N: n}

	if mode == ticket.ModeOracle {
		fmt.Fprintln(os.Stderr, "the oracle mode has been invoked. probability bends, but math remains unchanged.")
		facts, err := buildFacts(variant, birthDate, bloodType, auraColor)
		if err != nil {
			return err
		}
		req.Facts = facts
	}

	gen := ticket.NewGenerator(logger)
	batch, err := gen.Generate(req)
	if err != nil {
		return err
	}

	if mode == ticket.ModeOracle {
		narrate(os.Stderr, batch)
	}

	for _, nums := range batch.Tickets {
		parts := make([]string, len(nums))
		for i, v := range nums {
			parts[i] = fmt.Sprintf("%02d", v)
		}
		fmt.Println(strings.Join(parts, " , "))
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		if err := csvout.Write(f, batch.Tickets, variant.Picks); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	return nil
}

// buildFacts parses the oracle flags and gathers one entropy reading, blocking
// on the terminal prompt once per run.
func buildFacts(variant game.Variant, birthDate, bloodType, auraColor string) (oracle.Facts, error) {
	var birth *time.Time
	if birthDate != "" {
		t, err := time.Parse("2006-01-02", birthDate)
		if err != nil {
			return oracle.Facts{}, fmt.Errorf("invalid birth date %q: %w", birthDate, err)
		}
		birth = &t
	}

	var blood *oracle.BloodType
	if bloodType != "" {
		b, err := oracle.ParseBloodType(bloodType)
		if err != nil {
			return oracle.Facts{}, err
		}
		blood = &b
	}

	var aura *oracle.AuraColor
	if auraColor != "" {
		a, err := oracle.ParseAuraColor(auraColor)
		if err != nil {
			return oracle.Facts{}, err
		}
		aura = &a
	}

	reading, err := entropy.Terminal{In: os.Stdin, Out: os.Stderr}.Gather()
	if err != nil {
		return oracle.Facts{}, err
	}

	return oracle.NewFacts(variant, time.Now(), birth, blood, aura, reading), nil
}

func narrate(w *os.File, batch ticket.Batch) {
	for _, r := range batch.Trace {
		if !r.Fired {
			continue
		}
		fmt.Fprintf(w, "[%s] %s\n", r.Rule, r.Reason)
	}
	if batch.FellBack {
		fmt.Fprintln(w, "the weights collapsed; fate defers to plain chance.")
	}
}
