package modifier

import (
	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/dex"
)

// STABOverride replaces the default same-type bonus rule. AnyMove means the
// bonus applies regardless of the move's type (type-changing abilities);
// otherwise Mult applies only when the move matches one of the attacker's
// types.
type STABOverride struct {
	Mult    float64
	AnyMove bool
}

// Result is the combined modifier outcome for one attacker/defender/move
// matchup. When Immune is set the other fields are meaningless and damage
// is exactly zero.
type Result struct {
	// AttackMult is the product of all attacker item and ability
	// multipliers, >= 0.
	AttackMult float64
	// DefenseDiv divides the final damage; values below 1 amplify it.
	DefenseDiv float64
	// STAB is non-nil when the attacker's ability changes STAB semantics.
	STAB   *STABOverride
	Immune bool
}

// Bonus returns the STAB multiplier the override yields for a move of the
// given type against the attacker's own types.
func (o *STABOverride) Bonus(moveType dex.TypeID, attacker *battle.Pokemon) float64 {
	if o.AnyMove || attacker.HasType(moveType) {
		return o.Mult
	}
	return 1.0
}

// Resolve evaluates every registered item and ability modifier for the
// matchup, in the fixed order: defender immunities first (short-circuiting),
// then attacker STAB override, attacker ability, attacker item, defender
// ability, defender item. Item and ability multipliers stack; nothing later
// undoes an earlier step.
//
// Precondition: none; nil inputs yield the neutral Result.
// Postcondition: Result.AttackMult >= 0 and Result.DefenseDiv > 0.
func Resolve(attacker, defender *battle.Pokemon, move *battle.Move, field *battle.Field) Result {
	res := Result{AttackMult: 1.0, DefenseDiv: 1.0}
	if attacker == nil || defender == nil || move == nil {
		return res
	}

	ctx := &evalContext{
		attacker:      attacker,
		defender:      defender,
		move:          move,
		field:         field,
		effectiveness: dex.Effectiveness(move.Type, defender.Types...),
	}

	defAbility := defenseAbilities[dex.Normalize(defender.Ability)]
	defItem := defenseItems[dex.Normalize(defender.Item)]

	// Step 1: immunity short-circuit. No further multipliers apply.
	ctx.holder = defender
	for _, e := range defAbility {
		if e.target == targetImmunity && condsHold(e.when, ctx) {
			res.Immune = true
			return res
		}
	}
	for _, e := range defItem {
		if e.target == targetImmunity && condsHold(e.when, ctx) {
			res.Immune = true
			return res
		}
	}

	atkAbility := attackAbilities[dex.Normalize(attacker.Ability)]
	atkItem := attackItems[dex.Normalize(attacker.Item)]

	// Steps 2-4: attacker side.
	ctx.holder = attacker
	for _, e := range atkAbility {
		switch e.target {
		case targetSTABOverride:
			if condsHold(e.when, ctx) {
				res.STAB = &STABOverride{Mult: e.value, AnyMove: e.anySTAB}
			}
		case targetAttackMult:
			if condsHold(e.when, ctx) {
				res.AttackMult *= e.dynamicValue(ctx)
			}
		}
	}
	for _, e := range atkItem {
		if e.target == targetAttackMult && condsHold(e.when, ctx) {
			res.AttackMult *= e.dynamicValue(ctx)
		}
	}

	// Steps 5-6: defender side divisors.
	ctx.holder = defender
	for _, e := range defAbility {
		if e.target == targetDefenseDiv && condsHold(e.when, ctx) {
			res.DefenseDiv *= e.value
		}
	}
	for _, e := range defItem {
		if e.target == targetDefenseDiv && condsHold(e.when, ctx) {
			res.DefenseDiv *= e.value
		}
	}

	return res
}
