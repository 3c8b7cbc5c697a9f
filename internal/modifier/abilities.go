package modifier

import (
	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/dex"
)

// sunny and rainy bundle the ordinary weather with its harsh variant, which
// counts for every weather-gated effect.
var (
	sunny = []battle.Weather{battle.WeatherSun, battle.WeatherHarshSun}
	rainy = []battle.Weather{battle.WeatherRain, battle.WeatherHeavyRain}
	icy   = []battle.Weather{battle.WeatherHail, battle.WeatherSnow}
)

func attackMult(value float64, conds ...cond) effect {
	return effect{target: targetAttackMult, value: value, when: conds}
}

func defenseDiv(value float64, conds ...cond) effect {
	return effect{target: targetDefenseDiv, value: value, when: conds}
}

func stabOverride(value float64, anyMove bool) effect {
	return effect{target: targetSTABOverride, value: value, anySTAB: anyMove}
}

func immunity(conds ...cond) effect {
	return effect{target: targetImmunity, when: conds}
}

// attackAbilities maps a normalized ability id to its offensive effects.
var attackAbilities = map[string][]effect{
	// STAB semantics overrides.
	"adaptability": {stabOverride(2.0, false)},
	"protean":      {stabOverride(1.5, true)},
	"libero":       {stabOverride(1.5, true)},

	// Unconditional type boosts.
	"steelworker":  {attackMult(1.5, whenType(dex.TypeSteel))},
	"transistor":   {attackMult(1.5, whenType(dex.TypeElectric))},
	"dragonsmaw":   {attackMult(1.5, whenType(dex.TypeDragon))},
	"rockypayload": {attackMult(1.5, whenType(dex.TypeRock))},

	// Field-gated type boosts.
	"hadronengine":    {attackMult(4.0/3.0, whenType(dex.TypeElectric), whenTerrain(battle.TerrainElectric))},
	"orichalcumpulse": {attackMult(4.0/3.0, whenType(dex.TypeFire), whenWeather(sunny...))},

	// Category boosts.
	"hustle":         {attackMult(1.5, whenCategory(battle.CategoryPhysical))},
	"gorillatactics": {attackMult(1.5, whenCategory(battle.CategoryPhysical))},

	// Pinch abilities: type boost below a third of max HP.
	"blaze":    {attackMult(1.5, whenType(dex.TypeFire), when(predHPBelowThird))},
	"torrent":  {attackMult(1.5, whenType(dex.TypeWater), when(predHPBelowThird))},
	"overgrow": {attackMult(1.5, whenType(dex.TypeGrass), when(predHPBelowThird))},
	"swarm":    {attackMult(1.5, whenType(dex.TypeBug), when(predHPBelowThird))},

	// Status-fueled boosts. Guts also negates the burn halving, which the
	// damage estimator handles when applying the burn multiplier.
	"guts":       {attackMult(1.5, whenCategory(battle.CategoryPhysical), when(predAttackerStatused))},
	"flareboost": {attackMult(1.5, whenCategory(battle.CategorySpecial), when(predAttackerBurned))},
	"toxicboost": {attackMult(1.5, whenCategory(battle.CategoryPhysical), when(predAttackerPoisoned))},

	// Move-property boosts.
	"technician":   {attackMult(1.5, whenPowerAtMost(60))},
	"sheerforce":   {attackMult(1.3)},
	"reckless":     {attackMult(1.2, whenClass(dex.RecoilMoves))},
	"ironfist":     {attackMult(1.2, whenClass(dex.PunchMoves))},
	"strongjaw":    {attackMult(1.5, whenClass(dex.BiteMoves))},
	"megalauncher": {attackMult(1.5, whenClass(dex.PulseMoves))},
	"toughclaws":   {attackMult(1.3, whenClass(dex.ContactMoves))},
	"punkrock":     {attackMult(1.3, whenClass(dex.SoundMoves))},
	"sandforce": {attackMult(1.3,
		whenType(dex.TypeRock, dex.TypeSteel, dex.TypeGround),
		whenWeather(battle.WeatherSandstorm))},

	// Matchup-dependent boosts.
	"analytic":   {attackMult(1.3, when(predSlower))},
	"tintedlens": {{target: targetAttackMult, dynamic: dynTintedLens, when: []cond{when(predNotVeryEffective)}}},
	"neuroforce": {attackMult(1.25, when(predSuperEffective))},

	// -ate abilities: converted normal moves carry a 1.2 boost.
	"aerilate":    {attackMult(1.2, whenType(dex.TypeNormal))},
	"pixilate":    {attackMult(1.2, whenType(dex.TypeNormal))},
	"refrigerate": {attackMult(1.2, whenType(dex.TypeNormal))},
	"galvanize":   {attackMult(1.2, whenType(dex.TypeNormal))},

	"solarpower": {attackMult(1.5, whenCategory(battle.CategorySpecial), whenWeather(sunny...))},

	// Fallen-ally count is observable but deliberately unused; the safe
	// estimate is no boost.
	"supremeoverlord": {attackMult(1.0)},
}

// defenseAbilities maps a normalized ability id to its defensive effects.
// Immunity effects short-circuit; divisor effects divide incoming damage.
var defenseAbilities = map[string][]effect{
	// Type immunities (absorbing and negating abilities alike).
	"levitate":      {immunity(whenType(dex.TypeGround))},
	"eartheater":    {immunity(whenType(dex.TypeGround))},
	"flashfire":     {immunity(whenType(dex.TypeFire))},
	"wellbakedbody": {immunity(whenType(dex.TypeFire))},
	"waterabsorb":   {immunity(whenType(dex.TypeWater))},
	"stormdrain":    {immunity(whenType(dex.TypeWater))},
	"steamengine":   {immunity(whenType(dex.TypeWater))},
	"voltabsorb":    {immunity(whenType(dex.TypeElectric))},
	"motordrive":    {immunity(whenType(dex.TypeElectric))},
	"lightningrod":  {immunity(whenType(dex.TypeElectric))},
	"sapsipper":     {immunity(whenType(dex.TypeGrass))},
	"windrider":     {immunity(whenType(dex.TypeFlying))},

	// Move-class immunities.
	"bulletproof": {immunity(whenClass(dex.BallBombMoves))},
	"soundproof":  {immunity(whenClass(dex.SoundMoves))},

	// Wonder guard blocks everything that is not supereffective.
	"wonderguard": {immunity(when(predNotSuperEffective))},

	// Dry skin absorbs water but takes a quarter more from fire; a divisor
	// below 1 amplifies incoming damage.
	"dryskin": {
		immunity(whenType(dex.TypeWater)),
		defenseDiv(0.8, whenType(dex.TypeFire)),
	},

	// Type- and category-keyed reductions.
	"thickfat":      {defenseDiv(2.0, whenType(dex.TypeFire, dex.TypeIce))},
	"heatproof":     {defenseDiv(2.0, whenType(dex.TypeFire))},
	"purifyingsalt": {defenseDiv(2.0, whenType(dex.TypeGhost))},
	"icescales":     {defenseDiv(2.0, whenCategory(battle.CategorySpecial))},
	"furcoat":       {defenseDiv(2.0, whenCategory(battle.CategoryPhysical))},
	"punkrock":      {defenseDiv(2.0, whenClass(dex.SoundMoves))},

	// Conditional reductions.
	"multiscale":   {defenseDiv(2.0, when(predDefenderFullHP))},
	"shadowshield": {defenseDiv(2.0, when(predDefenderFullHP))},
	"filter":       {defenseDiv(4.0/3.0, when(predSuperEffective))},
	"solidrock":    {defenseDiv(4.0/3.0, when(predSuperEffective))},
	"prismarmor":   {defenseDiv(4.0/3.0, when(predSuperEffective))},
	"marvelscale":  {defenseDiv(1.5, whenCategory(battle.CategoryPhysical), when(predDefenderStatused))},
	"grasspelt":    {defenseDiv(1.5, whenCategory(battle.CategoryPhysical), whenTerrain(battle.TerrainGrassy))},

	// Fluffy halves contact damage but doubles incoming fire; a fire
	// contact move nets out neutral.
	"fluffy": {
		defenseDiv(2.0, whenCategory(battle.CategoryPhysical), whenClass(dex.ContactMoves)),
		defenseDiv(0.5, whenType(dex.TypeFire)),
	},
}
