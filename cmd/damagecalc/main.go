// Package main provides a CLI damage calculator: it loads an
// attacker/defender matchup from a YAML fixture and prints the damage
// range, knockout probability, and speed comparison for every known move.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/config"
	"github.com/asandoval/battlecore/internal/damage"
	"github.com/asandoval/battlecore/internal/dex"
	"github.com/asandoval/battlecore/internal/modifier"
	"github.com/asandoval/battlecore/internal/observability"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	matchupPath := flag.String("matchup", "", "path to matchup YAML fixture (required)")
	reverse := flag.Bool("reverse", false, "also print the defender's best answer")
	flag.Parse()

	if *matchupPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer logger.Sync()

	m, err := battle.LoadMatchup(*matchupPath)
	if err != nil {
		logger.Fatal("loading matchup", zap.String("path", *matchupPath), zap.Error(err))
	}

	logger.Info("matchup loaded", observability.MatchupFields(m.Attacker, m.Defender)...)

	printMatchup(m.Attacker, m.Defender, &m.Field, true)
	if *reverse {
		fmt.Println()
		printMatchup(m.Defender, m.Attacker, &m.Field, false)
	}
}

func printMatchup(attacker, defender *battle.Pokemon, field *battle.Field, ownAttack bool) {
	fmt.Printf("%s vs %s\n", attacker.Species, defender.Species)

	atkSpeed := modifier.Speed(attacker, field)
	defSpeed := modifier.Speed(defender, field)
	order := "slower than"
	if atkSpeed > defSpeed {
		order = "faster than"
	} else if atkSpeed == defSpeed {
		order = "speed-tied with"
	}
	fmt.Printf("  speed: %.0f, %s %s (%.0f)\n", atkSpeed, order, defender.Species, defSpeed)

	for i := range attacker.Moves {
		mv := &attacker.Moves[i]
		if !mv.Damaging() {
			fmt.Printf("  %-16s status move\n", mv.ID)
			continue
		}
		lo := damage.Estimate(mv, attacker, defender, field, ownAttack, damage.MinRoll)
		avg := damage.Estimate(mv, attacker, defender, field, ownAttack, damage.DefaultRoll)
		hi := damage.Estimate(mv, attacker, defender, field, ownAttack, damage.MaxRoll)
		eff := dex.Effectiveness(mv.Type, defender.Types...)
		fmt.Printf("  %-16s %5.1f%% - %5.1f%% (avg %5.1f%%)  x%.2g\n",
			mv.ID, lo*100, hi*100, avg*100, eff)
	}
	if len(attacker.Moves) == 0 {
		best := damage.BestDamage(attacker, defender, field, ownAttack, damage.DefaultRoll)
		fmt.Printf("  no revealed moves, assumed same-type attack: %5.1f%%\n", best*100)
	}

	ko := damage.KOProbability(attacker, defender, field, ownAttack)
	fmt.Printf("  knockout probability: %.1f%%\n", ko*100)
}
