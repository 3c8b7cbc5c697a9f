// Package damage estimates move damage as a fraction of the defender's
// approximated maximum HP, and derives one-hit knockout probabilities from
// the damage roll range. All estimates are deterministic expected values;
// critical hits and per-target spread are intentionally averaged out.
package damage

import (
	"math"

	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/dex"
	"github.com/asandoval/battlecore/internal/modifier"
)

const (
	// DefaultRoll is the expected value of the uniform damage roll.
	DefaultRoll = 0.925
	// MinRoll and MaxRoll bound the damage roll range.
	MinRoll = 0.85
	MaxRoll = 1.00

	// koEpsilon guards the interpolation against a degenerate roll range.
	koEpsilon = 1e-8

	// fallbackPower is the assumed base power of an unrevealed attack.
	fallbackPower = 80
)

// BaseDamage is the integer core of the level-100 damage formula:
//
//	floor( floor( floor(2*100/5 + 2) * power * atk / def / 50 ) + 2 )
//
// The nested floors are load-bearing near multiples of 50 and must not be
// simplified away.
func BaseDamage(power int, atkStat, defStat float64) float64 {
	lvl := math.Floor(2*100/5 + 2)
	return math.Floor(math.Floor(lvl*float64(power)*atkStat/defStat/50) + 2)
}

// Estimate returns the fraction of the defender's approximated maximum HP
// that one use of mv removes, clamped to [0, 1]. Status moves, immunity
// abilities and items, and type-immune matchups all yield exactly 0.
// ownAttack selects which side's screens protect the defender.
//
// Precondition: attacker and defender must not be nil.
// Postcondition: result is in [0, 1].
func Estimate(mv *battle.Move, attacker, defender *battle.Pokemon, field *battle.Field, ownAttack bool, roll float64) float64 {
	if mv == nil || !mv.Damaging() {
		return 0.0
	}

	res := modifier.Resolve(attacker, defender, mv, field)
	if res.Immune {
		return 0.0
	}

	eff := dex.Effectiveness(mv.Type, defender.Types...)
	if eff == 0.0 {
		return 0.0
	}

	stab := 1.0
	if res.STAB != nil {
		stab = res.STAB.Bonus(mv.Type, attacker)
	} else if attacker.HasType(mv.Type) {
		stab = 1.5
	}

	burn := 1.0
	if mv.Category == battle.CategoryPhysical &&
		attacker.Status == battle.StatusBurn &&
		dex.Normalize(attacker.Ability) != "guts" {
		burn = 0.5
	}

	base := BaseDamage(mv.BasePower, attacker.AttackStat(mv.Category), defender.DefenseStat(mv.Category))

	dmg := base *
		WeatherMult(mv.Type, field) *
		roll *
		stab *
		eff *
		burn *
		res.AttackMult *
		TerrainMult(mv.Type, field) /
		res.DefenseDiv /
		ScreenDiv(mv.Category, field, ownAttack)

	frac := dmg / defender.ApproxMaxHP()
	return math.Min(math.Max(frac, 0.0), 1.0)
}

// BestDamage returns the highest damage fraction the attacker can inflict
// on the defender across its known damaging moves at the given roll.
//
// An attacker with no known damaging moves falls back to a generic
// same-type attack of power 80 aimed at the defender's weaker defensive
// stat, iterated over the attacker's types. This keeps switch-in risk
// non-zero against unscouted opponents.
func BestDamage(attacker, defender *battle.Pokemon, field *battle.Field, ownAttack bool, roll float64) float64 {
	if attacker == nil || defender == nil {
		return 0.0
	}

	best := 0.0
	known := false
	for i := range attacker.Moves {
		mv := &attacker.Moves[i]
		if !mv.Damaging() {
			continue
		}
		known = true
		if d := Estimate(mv, attacker, defender, field, ownAttack, roll); d > best {
			best = d
		}
	}
	if known {
		return best
	}

	atkStat := math.Max(battle.EffectiveStat(attacker.Base.Atk, false), battle.EffectiveStat(attacker.Base.SpA, false))
	defStat := math.Min(battle.EffectiveStat(defender.Base.Def, false), battle.EffectiveStat(defender.Base.SpD, false))
	maxHP := defender.ApproxMaxHP()

	for _, t := range attacker.Types {
		if !t.Valid() {
			continue
		}
		eff := dex.Effectiveness(t, defender.Types...)
		if eff == 0.0 {
			continue
		}
		dmg := BaseDamage(fallbackPower, atkStat, defStat) * roll * 1.5 * eff
		if frac := math.Min(dmg/maxHP, 1.0); frac > best {
			best = frac
		}
	}
	return best
}

// KOProbability estimates the chance that the attacker's best move knocks
// out the defender this turn, interpolating linearly between the minimum
// and maximum damage rolls against the defender's current HP fraction.
//
// Postcondition: result is in [0, 1]; a degenerate roll range yields 0.
func KOProbability(attacker, defender *battle.Pokemon, field *battle.Field, ownAttack bool) float64 {
	if attacker == nil || defender == nil {
		return 0.0
	}

	dMin := BestDamage(attacker, defender, field, ownAttack, MinRoll)
	dMax := BestDamage(attacker, defender, field, ownAttack, MaxRoll)
	hp := defender.HPFraction

	if dMin >= hp {
		return 1.0
	}
	if dMax < hp {
		return 0.0
	}
	if dMax-dMin < koEpsilon {
		return 0.0
	}
	p := (dMax - hp) / (dMax - dMin)
	return math.Min(math.Max(p, 0.0), 1.0)
}
