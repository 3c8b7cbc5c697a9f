package modifier

import (
	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/dex"
)

// typeBoostItems are the plates, gems-era hold items and incenses that give
// a flat 1.2 to moves of one type. They are folded into attackItems at init.
var typeBoostItems = map[string]dex.TypeID{
	"silkscarf":    dex.TypeNormal,
	"normalplate":  dex.TypeNormal,
	"blackbelt":    dex.TypeFighting,
	"fistplate":    dex.TypeFighting,
	"sharpbeak":    dex.TypeFlying,
	"skyplate":     dex.TypeFlying,
	"poisonbarb":   dex.TypePoison,
	"toxicplate":   dex.TypePoison,
	"softsand":     dex.TypeGround,
	"earthplate":   dex.TypeGround,
	"hardstone":    dex.TypeRock,
	"stoneplate":   dex.TypeRock,
	"silverpowder": dex.TypeBug,
	"insectplate":  dex.TypeBug,
	"spelltag":     dex.TypeGhost,
	"spookyplate":  dex.TypeGhost,
	"metalcoat":    dex.TypeSteel,
	"ironplate":    dex.TypeSteel,
	"charcoal":     dex.TypeFire,
	"flameplate":   dex.TypeFire,
	"mysticwater":  dex.TypeWater,
	"splashplate":  dex.TypeWater,
	"seaincense":   dex.TypeWater,
	"waveincense":  dex.TypeWater,
	"miracleseed":  dex.TypeGrass,
	"meadowplate":  dex.TypeGrass,
	"roseincense":  dex.TypeGrass,
	"magnet":       dex.TypeElectric,
	"zapplate":     dex.TypeElectric,
	"twistedspoon": dex.TypePsychic,
	"mindplate":    dex.TypePsychic,
	"oddincense":   dex.TypePsychic,
	"nevermeltice": dex.TypeIce,
	"icicleplate":  dex.TypeIce,
	"dragonfang":   dex.TypeDragon,
	"dracoplate":   dex.TypeDragon,
	"blackglasses": dex.TypeDark,
	"dreadplate":   dex.TypeDark,
	"fairyfeather": dex.TypeFairy,
	"pixieplate":   dex.TypeFairy,
}

// attackItems maps a normalized held-item id to its offensive effects.
var attackItems = map[string][]effect{
	"lifeorb":     {attackMult(1.3)},
	"muscleband":  {attackMult(1.1, whenCategory(battle.CategoryPhysical))},
	"wiseglasses": {attackMult(1.1, whenCategory(battle.CategorySpecial))},
	"expertbelt":  {attackMult(1.2, when(predSuperEffective))},

	// Choice items modeled as an equivalent final-damage multiplier.
	// Choice Scarf affects only speed and has no entry here.
	"choiceband":  {attackMult(1.5, whenCategory(battle.CategoryPhysical))},
	"choicespecs": {attackMult(1.5, whenCategory(battle.CategorySpecial))},

	"punchingglove": {attackMult(1.1, whenCategory(battle.CategoryPhysical), whenClass(dex.PunchMoves))},

	// Species-locked legendary orbs boost both of the holder's signature
	// types.
	"adamantorb":  {attackMult(1.2, whenType(dex.TypeDragon, dex.TypeSteel), whenSpecies("dialga"))},
	"lustrousorb": {attackMult(1.2, whenType(dex.TypeDragon, dex.TypeWater), whenSpecies("palkia"))},
	"griseousorb": {attackMult(1.2, whenType(dex.TypeDragon, dex.TypeGhost),
		whenSpecies("giratina", "giratinaorigin"))},
	"souldew": {attackMult(1.2, whenType(dex.TypeDragon, dex.TypePsychic),
		whenSpecies("latios", "latias"))},
}

func init() {
	for item, t := range typeBoostItems {
		attackItems[item] = append(attackItems[item], attackMult(1.2, whenType(t)))
	}
}

// defenseItems maps a normalized held-item id to its defensive effects.
// The damage-halving berries are assumed unconsumed; whether one has been
// eaten already is not tracked in the snapshot.
var defenseItems = map[string][]effect{
	"eviolite":    {defenseDiv(1.5)},
	"assaultvest": {defenseDiv(1.5, whenCategory(battle.CategorySpecial))},
	"airballoon":  {immunity(whenType(dex.TypeGround))},

	"occaberry":   {defenseDiv(2.0, whenCategory(battle.CategoryPhysical), whenType(dex.TypeFire))},
	"passhoberry": {defenseDiv(2.0, whenCategory(battle.CategorySpecial), whenType(dex.TypeWater))},
	"wacanberry":  {defenseDiv(2.0, whenCategory(battle.CategorySpecial), whenType(dex.TypeElectric))},
	"rindoberry":  {defenseDiv(2.0, whenCategory(battle.CategorySpecial), whenType(dex.TypeGrass))},
	"yacheberry":  {defenseDiv(2.0, whenCategory(battle.CategorySpecial), whenType(dex.TypeIce))},
	"chopleberry": {defenseDiv(2.0, whenCategory(battle.CategoryPhysical), whenType(dex.TypeFighting))},
	"kebiaberry":  {defenseDiv(2.0, whenCategory(battle.CategoryPhysical), whenType(dex.TypePoison))},
	"shucaberry":  {defenseDiv(2.0, whenCategory(battle.CategoryPhysical), whenType(dex.TypeGround))},
	"cobaberry":   {defenseDiv(2.0, whenCategory(battle.CategoryPhysical), whenType(dex.TypeFlying))},
	"payapaberry": {defenseDiv(2.0, whenCategory(battle.CategorySpecial), whenType(dex.TypePsychic))},
	"tangaberry":  {defenseDiv(2.0, whenCategory(battle.CategoryPhysical), whenType(dex.TypeBug))},
	"chartiberry": {defenseDiv(2.0, whenCategory(battle.CategorySpecial), whenType(dex.TypeRock))},
	"kasibberry":  {defenseDiv(2.0, whenCategory(battle.CategorySpecial), whenType(dex.TypeGhost))},
	"habanberry":  {defenseDiv(2.0, whenCategory(battle.CategorySpecial), whenType(dex.TypeDragon))},
	"colburberry": {defenseDiv(2.0, whenCategory(battle.CategorySpecial), whenType(dex.TypeDark))},
	"babiriberry": {defenseDiv(2.0, whenCategory(battle.CategoryPhysical), whenType(dex.TypeSteel))},
	"chilanberry": {defenseDiv(2.0, whenCategory(battle.CategoryPhysical), whenType(dex.TypeNormal))},
	"roseliberry": {defenseDiv(2.0, whenCategory(battle.CategorySpecial), whenType(dex.TypeFairy))},
}
