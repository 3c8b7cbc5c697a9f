// Package reward computes the per-turn shaping signal consumed by the
// training loop: terminal win/lose rewards, per-knockout bonuses and
// penalties, and an end-of-battle HP differential. Coefficients come from
// the reward section of the configuration.
package reward

import (
	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/config"
)

// Compute returns the reward earned between two consecutive snapshots of
// the same battle. Games can run for dozens of turns, so knockouts emit
// intermediate signals rather than waiting for the terminal result.
//
// Precondition: prev and curr must describe the same battle, prev taken
// one decision earlier.
func Compute(prev, curr *battle.Snapshot, cfg config.RewardConfig) float64 {
	r := 0.0

	if curr.Won {
		r += cfg.Win
	} else if curr.Lost {
		r += cfg.Lose
	}

	r += float64(countFainted(curr.OppActive, curr.OppReserves)-countFainted(prev.OppActive, prev.OppReserves)) * cfg.FaintEnemy
	r += float64(countFainted(curr.OwnActive, curr.OwnReserves)-countFainted(prev.OwnActive, prev.OwnReserves)) * cfg.OwnFaint

	// The HP differential only lands once the battle is over, so it never
	// drowns out the per-turn knockout signal.
	if curr.Finished {
		r += cfg.HPFractionCoef * (teamHP(curr.OwnActive, curr.OwnReserves) - teamHP(curr.OppActive, curr.OppReserves))
	}

	return r
}

func countFainted(active *battle.Pokemon, reserves []*battle.Pokemon) int {
	n := 0
	if active != nil && active.Fainted {
		n++
	}
	for _, p := range reserves {
		if p != nil && p.Fainted {
			n++
		}
	}
	return n
}

func teamHP(active *battle.Pokemon, reserves []*battle.Pokemon) float64 {
	total := 0.0
	if active != nil {
		total += active.HPFraction
	}
	for _, p := range reserves {
		if p != nil {
			total += p.HPFraction
		}
	}
	return total
}
