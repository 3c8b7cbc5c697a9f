package encoder

import (
	"math"

	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/damage"
	"github.com/asandoval/battlecore/internal/dex"
	"github.com/asandoval/battlecore/internal/modifier"
)

// effectivenessBucket maps an effectiveness value onto its one-hot index,
// defaulting to the neutral bucket when no bucket is within tolerance.
func effectivenessBucket(eff float64) int {
	for i, b := range effectivenessBuckets {
		if math.Abs(eff-b) < bucketTolerance {
			return i
		}
	}
	return neutralBucket
}

// combatAnalysis writes the per-move matchup blocks for the own active
// member followed by the global flags: speed advantage, the knockout
// probability in both directions, and the mean type effectiveness across
// damaging moves capped at 4x and normalized.
func (v *vector) combatAnalysis(own, opp *battle.Pokemon, field *battle.Field) {
	for i := 0; i < battle.MaxMoves; i++ {
		if i >= len(own.Moves) {
			v.skip(moveAnalysisSize)
			continue
		}
		mv := &own.Moves[i]
		eff := dex.Effectiveness(mv.Type, opp.Types...)
		v.oneHot(effectivenessBucket(eff), len(effectivenessBuckets))
		v.put(damage.Estimate(mv, own, opp, field, true, damage.DefaultRoll))
		v.putBool(!mv.Damaging())
	}

	v.putBool(modifier.Speed(own, field) > modifier.Speed(opp, field))
	v.put(damage.KOProbability(opp, own, field, false))
	v.put(damage.KOProbability(own, opp, field, true))

	sum, n := 0.0, 0
	for i := range own.Moves {
		if !own.Moves[i].Damaging() {
			continue
		}
		sum += dex.Effectiveness(own.Moves[i].Type, opp.Types...)
		n++
	}
	mean := 1.0
	if n > 0 {
		mean = sum / float64(n)
	}
	v.put(math.Min(mean/4.0, 1.0))
}

// switchAnalysis writes one block per own reserve slot: the best damage it
// could inflict on the opponent's active member, resist and immune flags
// against the opponent's primary type, a speed advantage flag, its HP
// fraction, and its chance of surviving the opponent's best hit. Absent
// and fainted slots stay zero.
func (v *vector) switchAnalysis(reserves []*battle.Pokemon, opp *battle.Pokemon, field *battle.Field) {
	oppPrimary := opp.PrimaryType()
	oppSpeed := modifier.Speed(opp, field)

	for i := 0; i < battle.MaxReserves; i++ {
		p := battle.ReserveAt(reserves, i)
		if p == nil || p.Fainted {
			v.skip(reserveAnalysisSize)
			continue
		}

		v.put(damage.BestDamage(p, opp, field, true, damage.DefaultRoll))

		resist, immune := false, false
		if oppPrimary.Valid() {
			eff := dex.Effectiveness(oppPrimary, p.Types...)
			immune = eff == 0.0
			resist = eff <= 0.5
		}
		v.putBool(resist)
		v.putBool(immune)

		v.putBool(modifier.Speed(p, field) > oppSpeed)
		v.put(p.HPFraction)
		v.put(1.0 - damage.KOProbability(opp, p, field, false))
	}
}
