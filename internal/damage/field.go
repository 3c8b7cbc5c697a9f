package damage

import (
	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/dex"
)

// WeatherMult returns the weather multiplier for a move type. Sun boosts
// fire and weakens water, rain does the opposite. Sandstorm, hail, and snow
// do not scale direct damage.
func WeatherMult(moveType dex.TypeID, field *battle.Field) float64 {
	if field == nil {
		return 1.0
	}
	switch {
	case field.Weather.Sunny():
		if moveType == dex.TypeFire {
			return 1.5
		}
		if moveType == dex.TypeWater {
			return 0.5
		}
	case field.Weather.Rainy():
		if moveType == dex.TypeWater {
			return 1.5
		}
		if moveType == dex.TypeFire {
			return 0.5
		}
	}
	return 1.0
}

// TerrainMult returns the terrain multiplier for a move type. Grounding is
// assumed for every combatant; the session layer does not expose it.
func TerrainMult(moveType dex.TypeID, field *battle.Field) float64 {
	if field == nil {
		return 1.0
	}
	switch field.Terrain {
	case battle.TerrainElectric:
		if moveType == dex.TypeElectric {
			return 1.3
		}
	case battle.TerrainGrassy:
		if moveType == dex.TypeGrass {
			return 1.3
		}
	case battle.TerrainMisty:
		if moveType == dex.TypeDragon {
			return 0.5
		}
	case battle.TerrainPsychic:
		if moveType == dex.TypePsychic {
			return 1.3
		}
	}
	return 1.0
}

// ScreenDiv returns the screen divisor protecting the defending side.
// Own attacks are cut by the opponent's screens and vice versa. Aurora
// Veil covers both categories, Reflect only physical, Light Screen only
// special.
func ScreenDiv(cat battle.Category, field *battle.Field, ownAttack bool) float64 {
	if field == nil {
		return 1.0
	}
	side := &field.OppSide
	if !ownAttack {
		side = &field.OwnSide
	}
	if side.AuroraVeil {
		return 2.0
	}
	if cat == battle.CategoryPhysical && side.Reflect {
		return 2.0
	}
	if cat == battle.CategorySpecial && side.LightScreen {
		return 2.0
	}
	return 1.0
}
