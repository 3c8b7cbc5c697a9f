// Package modifier resolves item and ability damage modifiers. Effects are
// kept in closed, table-driven registries built once at package init: each
// entry pairs an applicability predicate list with a numeric effect and a
// target (attack multiplier, defense divisor, STAB override, or immunity).
// Unregistered identifiers are no-ops, never errors, so the core degrades
// gracefully as the game's content set grows.
package modifier

import (
	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/dex"
)

// predKind enumerates the closed set of applicability predicates an effect
// may be conditioned on. No effect dispatches on anything outside this set.
type predKind int

const (
	predAlways predKind = iota
	// predMoveType: the move's type is one of cond.types.
	predMoveType
	// predCategory: the move's category equals cond.cat.
	predCategory
	// predBasePowerAtMost: 0 < base power <= cond.powerLimit.
	predBasePowerAtMost
	// predHPBelowThird: the attacker is below one third of max HP.
	predHPBelowThird
	// predAttackerStatused: the attacker has any major status.
	predAttackerStatused
	// predAttackerBurned / predAttackerPoisoned: specific attacker statuses.
	predAttackerBurned
	predAttackerPoisoned
	// predDefenderStatused: the defender has any major status.
	predDefenderStatused
	// predDefenderFullHP: the defender is at (essentially) full HP.
	predDefenderFullHP
	// predWeather: the active weather is one of cond.weathers.
	predWeather
	// predTerrain: the active terrain equals cond.terrain.
	predTerrain
	// predMoveClass: the move id belongs to cond.class.
	predMoveClass
	// predSlower: the attacker's unboosted speed estimate is below the
	// defender's (the analytic approximation).
	predSlower
	// predSuperEffective / predNotSuperEffective / predNotVeryEffective:
	// thresholds on the combined type effectiveness.
	predSuperEffective
	predNotSuperEffective
	predNotVeryEffective
	// predHolderSpecies: the effect holder's species is one of cond.species.
	predHolderSpecies
)

// cond is one predicate with its operands. Zero-valued operand fields are
// unused by the given kind.
type cond struct {
	kind       predKind
	types      []dex.TypeID
	cat        battle.Category
	powerLimit int
	weathers   []battle.Weather
	terrain    battle.Terrain
	class      dex.MoveSet
	species    []string
}

// Predicate constructors keep the registry literals compact.

func whenType(types ...dex.TypeID) cond { return cond{kind: predMoveType, types: types} }
func whenCategory(c battle.Category) cond {
	return cond{kind: predCategory, cat: c}
}
func whenPowerAtMost(limit int) cond { return cond{kind: predBasePowerAtMost, powerLimit: limit} }
func whenWeather(ws ...battle.Weather) cond {
	return cond{kind: predWeather, weathers: ws}
}
func whenTerrain(t battle.Terrain) cond { return cond{kind: predTerrain, terrain: t} }
func whenClass(s dex.MoveSet) cond      { return cond{kind: predMoveClass, class: s} }
func whenSpecies(names ...string) cond  { return cond{kind: predHolderSpecies, species: names} }
func when(kind predKind) cond           { return cond{kind: kind} }

// effectTarget is the quantity an effect contributes to.
type effectTarget int

const (
	targetAttackMult effectTarget = iota
	targetDefenseDiv
	targetSTABOverride
	targetImmunity
)

// dynKind marks effects whose value is computed from the matchup rather
// than fixed in the table.
type dynKind int

const (
	dynNone dynKind = iota
	// dynTintedLens scales a resisted hit back up to neutral.
	dynTintedLens
)

// effect is one registered modifier: all predicates in when must hold for
// the value to apply. Effects on the same identifier stack multiplicatively.
type effect struct {
	target  effectTarget
	when    []cond
	value   float64
	anySTAB bool
	dynamic dynKind
}

// evalContext carries the matchup an effect is evaluated against. The
// holder is the Pokemon carrying the item or ability under evaluation.
type evalContext struct {
	attacker      *battle.Pokemon
	defender      *battle.Pokemon
	move          *battle.Move
	field         *battle.Field
	effectiveness float64
	holder        *battle.Pokemon
}

func (c cond) holds(ctx *evalContext) bool {
	switch c.kind {
	case predAlways:
		return true
	case predMoveType:
		for _, t := range c.types {
			if ctx.move.Type == t {
				return true
			}
		}
		return false
	case predCategory:
		return ctx.move.Category == c.cat
	case predBasePowerAtMost:
		return ctx.move.BasePower > 0 && ctx.move.BasePower <= c.powerLimit
	case predHPBelowThird:
		return ctx.attacker.HPFraction < 1.0/3.0
	case predAttackerStatused:
		return ctx.attacker.Status != battle.StatusNone
	case predAttackerBurned:
		return ctx.attacker.Status == battle.StatusBurn
	case predAttackerPoisoned:
		return ctx.attacker.Status == battle.StatusPoison || ctx.attacker.Status == battle.StatusToxic
	case predDefenderStatused:
		return ctx.defender.Status != battle.StatusNone
	case predDefenderFullHP:
		return ctx.defender.HPFraction >= 0.99
	case predWeather:
		if ctx.field == nil {
			return false
		}
		for _, w := range c.weathers {
			if ctx.field.Weather == w {
				return true
			}
		}
		return false
	case predTerrain:
		return ctx.field != nil && ctx.field.Terrain == c.terrain
	case predMoveClass:
		return c.class.Contains(ctx.move.ID)
	case predSlower:
		atkSpe := battle.EffectiveStat(ctx.attacker.Base.Spe, false)
		defSpe := battle.EffectiveStat(ctx.defender.Base.Spe, false)
		return atkSpe < defSpe
	case predSuperEffective:
		return ctx.effectiveness >= 2.0
	case predNotSuperEffective:
		return ctx.effectiveness < 2.0
	case predNotVeryEffective:
		return ctx.effectiveness > 0 && ctx.effectiveness < 1.0
	case predHolderSpecies:
		if ctx.holder == nil {
			return false
		}
		holder := dex.Normalize(ctx.holder.Species)
		for _, s := range c.species {
			if holder == s {
				return true
			}
		}
		return false
	}
	return false
}

func condsHold(conds []cond, ctx *evalContext) bool {
	for _, c := range conds {
		if !c.holds(ctx) {
			return false
		}
	}
	return true
}

// dynamicValue resolves a dynamic effect's value for the matchup.
func (e effect) dynamicValue(ctx *evalContext) float64 {
	switch e.dynamic {
	case dynTintedLens:
		if ctx.effectiveness > 0 && ctx.effectiveness < 1.0 {
			return 1.0 / ctx.effectiveness
		}
		return 1.0
	default:
		return e.value
	}
}
