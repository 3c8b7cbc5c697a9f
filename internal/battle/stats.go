package battle

import "math"

// BoostMultiplier converts a stat stage in [-6, 6] to its multiplier:
// (2+stage)/2 for non-negative stages, 2/(2-stage) for negative ones.
// Stages outside the domain are the caller's responsibility to clamp.
//
// Postcondition: BoostMultiplier(0) == 1, monotonically increasing in stage.
func BoostMultiplier(stage int) float64 {
	if stage >= 0 {
		return float64(2+stage) / 2.0
	}
	return 2.0 / float64(2-stage)
}

// EffectiveStat estimates a level-100 stat from its base value assuming a
// fixed fictitious IV/EV spread: floor(2*base + 52) plus 110 for HP or 5
// otherwise. Real spreads are unobservable, so this deliberate
// approximation is applied uniformly to both sides.
func EffectiveStat(base int, isHP bool) float64 {
	v := math.Floor(float64(2*base + 52))
	if isHP {
		return v + 110
	}
	return v + 5
}

// AttackStat returns the attacker's boosted offensive stat for the given
// move category (Atk for physical, SpA otherwise).
func (p *Pokemon) AttackStat(cat Category) float64 {
	if cat == CategoryPhysical {
		return EffectiveStat(p.Base.Atk, false) * BoostMultiplier(p.Boosts.Atk)
	}
	return EffectiveStat(p.Base.SpA, false) * BoostMultiplier(p.Boosts.SpA)
}

// DefenseStat returns the defender's boosted defensive stat for the given
// move category (Def for physical, SpD otherwise).
func (p *Pokemon) DefenseStat(cat Category) float64 {
	if cat == CategoryPhysical {
		return EffectiveStat(p.Base.Def, false) * BoostMultiplier(p.Boosts.Def)
	}
	return EffectiveStat(p.Base.SpD, false) * BoostMultiplier(p.Boosts.SpD)
}

// ApproxMaxHP returns the approximated level-100 maximum HP.
func (p *Pokemon) ApproxMaxHP() float64 {
	return EffectiveStat(p.Base.HP, true)
}
