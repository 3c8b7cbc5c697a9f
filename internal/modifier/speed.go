package modifier

import (
	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/dex"
)

// speedCond gates a speed ability on field or holder state.
type speedCond int

const (
	speedAlways speedCond = iota
	speedInRain
	speedInSun
	speedInSandstorm
	speedInHailOrSnow
	speedInElectricTerrain
	speedWhenStatused
)

type speedAbility struct {
	mult float64
	cond speedCond
}

// speedAbilities are the abilities that scale effective speed. Abilities
// whose trigger is unobservable from a snapshot (unburden's consumed item,
// speed boost's accumulated turns) are not modeled; their boosts surface
// through boost stages when the session layer reports them.
var speedAbilities = map[string]speedAbility{
	"swiftswim":   {2.0, speedInRain},
	"chlorophyll": {2.0, speedInSun},
	"sandrush":    {2.0, speedInSandstorm},
	"slushrush":   {2.0, speedInHailOrSnow},
	"surgesurfer": {2.0, speedInElectricTerrain},
	"quickfeet":   {1.5, speedWhenStatused},
	"slowstart":   {0.5, speedAlways},
}

// speedItems are flat speed multipliers from held items.
var speedItems = map[string]float64{
	"choicescarf": 1.5,
	"ironball":    0.5,
	"machobrace":  0.5,
	"powerweight": 0.5,
	"powerbracer": 0.5,
	"powerbelt":   0.5,
	"powerlens":   0.5,
	"powerband":   0.5,
	"poweranklet": 0.5,
	"fullincense": 0.5,
	"laggingtail": 0.5,
}

// SpeedItemMult returns the item's speed multiplier, 1.0 for unknown items.
// Quick Powder only applies to Ditto.
func SpeedItemMult(item, species string) float64 {
	id := dex.Normalize(item)
	if id == "quickpowder" {
		if dex.Normalize(species) == "ditto" {
			return 2.0
		}
		return 1.0
	}
	if m, ok := speedItems[id]; ok {
		return m
	}
	return 1.0
}

// SpeedAbilityMult returns the ability's speed multiplier given the current
// field and whether the holder is statused. Unknown abilities and unmet
// conditions yield 1.0.
func SpeedAbilityMult(ability string, field *battle.Field, hasStatus bool) float64 {
	sa, ok := speedAbilities[dex.Normalize(ability)]
	if !ok {
		return 1.0
	}
	switch sa.cond {
	case speedAlways:
		return sa.mult
	case speedWhenStatused:
		if hasStatus {
			return sa.mult
		}
	case speedInRain:
		if field != nil && field.Weather.Rainy() {
			return sa.mult
		}
	case speedInSun:
		if field != nil && field.Weather.Sunny() {
			return sa.mult
		}
	case speedInSandstorm:
		if field != nil && field.Weather == battle.WeatherSandstorm {
			return sa.mult
		}
	case speedInHailOrSnow:
		if field != nil && (field.Weather == battle.WeatherHail || field.Weather == battle.WeatherSnow) {
			return sa.mult
		}
	case speedInElectricTerrain:
		if field != nil && field.Terrain == battle.TerrainElectric {
			return sa.mult
		}
	}
	return 1.0
}

// Speed estimates a member's effective speed: the level-100 stat with its
// boost stage, the paralysis halving (negated by quick feet), and item and
// ability multipliers conditioned on the field.
//
// Precondition: p must not be nil.
// Postcondition: Returns > 0 for any live member.
func Speed(p *battle.Pokemon, field *battle.Field) float64 {
	spe := battle.EffectiveStat(p.Base.Spe, false) * battle.BoostMultiplier(p.Boosts.Spe)

	if p.Status == battle.StatusParalysis && dex.Normalize(p.Ability) != "quickfeet" {
		spe *= 0.5
	}

	spe *= SpeedItemMult(p.Item, p.Species)
	spe *= SpeedAbilityMult(p.Ability, field, p.Status != battle.StatusNone)
	return spe
}
