package modifier

import (
	"math"
	"testing"

	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/dex"
)

func speedMon(baseSpe int) *battle.Pokemon {
	return &battle.Pokemon{
		Species:    "runner",
		Types:      []dex.TypeID{dex.TypeNormal},
		Base:       battle.StatBlock{HP: 80, Atk: 80, Def: 80, SpA: 80, SpD: 80, Spe: baseSpe},
		HPFraction: 1.0,
	}
}

func TestSpeedBaseline(t *testing.T) {
	// Base 100 speed approximates to floor(2*100+52)+5 = 257.
	got := Speed(speedMon(100), nil)
	if got != 257 {
		t.Errorf("Speed(base 100) = %v, want 257", got)
	}
}

func TestSpeedBoostStages(t *testing.T) {
	p := speedMon(100)
	p.Boosts.Spe = 2
	if got := Speed(p, nil); got != 257*2 {
		t.Errorf("+2 speed = %v, want %v", got, 257*2)
	}
	p.Boosts.Spe = -1
	want := 257 * 2.0 / 3.0
	if got := Speed(p, nil); math.Abs(got-want) > 1e-9 {
		t.Errorf("-1 speed = %v, want %v", got, want)
	}
}

func TestSpeedParalysis(t *testing.T) {
	p := speedMon(100)
	p.Status = battle.StatusParalysis
	if got := Speed(p, nil); got != 257*0.5 {
		t.Errorf("paralyzed speed = %v, want %v", got, 257*0.5)
	}
}

// Quick feet both ignores the paralysis drop and adds its own boost.
func TestSpeedQuickFeet(t *testing.T) {
	p := speedMon(100)
	p.Ability = "quickfeet"
	p.Status = battle.StatusParalysis
	if got := Speed(p, nil); got != 257*1.5 {
		t.Errorf("quick feet paralyzed speed = %v, want %v", got, 257*1.5)
	}
}

func TestSpeedWeatherAbilities(t *testing.T) {
	p := speedMon(100)
	p.Ability = "swiftswim"
	rain := &battle.Field{Weather: battle.WeatherRain}
	if got := Speed(p, rain); got != 257*2 {
		t.Errorf("swift swim in rain = %v, want %v", got, 257*2)
	}
	if got := Speed(p, nil); got != 257 {
		t.Errorf("swift swim without rain = %v, want 257", got)
	}
}

func TestSpeedItems(t *testing.T) {
	p := speedMon(100)
	p.Item = "choicescarf"
	if got := Speed(p, nil); got != 257*1.5 {
		t.Errorf("choice scarf = %v, want %v", got, 257*1.5)
	}
	p.Item = "ironball"
	if got := Speed(p, nil); got != 257*0.5 {
		t.Errorf("iron ball = %v, want %v", got, 257*0.5)
	}
}

func TestSpeedQuickPowderSpeciesLock(t *testing.T) {
	ditto := speedMon(48)
	ditto.Species = "Ditto"
	ditto.Item = "quickpowder"
	base := Speed(speedMon(48), nil)
	if got := Speed(ditto, nil); got != base*2 {
		t.Errorf("quick powder on ditto = %v, want %v", got, base*2)
	}
	notDitto := speedMon(48)
	notDitto.Item = "quickpowder"
	if got := Speed(notDitto, nil); got != base {
		t.Errorf("quick powder off ditto = %v, want %v", got, base)
	}
}

func TestSpeedSlowStart(t *testing.T) {
	p := speedMon(100)
	p.Ability = "slowstart"
	if got := Speed(p, nil); got != 257*0.5 {
		t.Errorf("slow start = %v, want %v", got, 257*0.5)
	}
}
