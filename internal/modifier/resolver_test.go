package modifier

import (
	"testing"

	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/dex"
)

func makeAttacker(ability, item string) *battle.Pokemon {
	return &battle.Pokemon{
		Species:    "attacker",
		Types:      []dex.TypeID{dex.TypeWater},
		Base:       battle.StatBlock{HP: 80, Atk: 100, Def: 80, SpA: 100, SpD: 80, Spe: 100},
		HPFraction: 1.0,
		Ability:    ability,
		Item:       item,
	}
}

func makeDefender(ability, item string, types ...dex.TypeID) *battle.Pokemon {
	if len(types) == 0 {
		types = []dex.TypeID{dex.TypeNormal}
	}
	return &battle.Pokemon{
		Species:    "defender",
		Types:      types,
		Base:       battle.StatBlock{HP: 80, Atk: 80, Def: 100, SpA: 80, SpD: 100, Spe: 80},
		HPFraction: 1.0,
		Ability:    ability,
		Item:       item,
	}
}

func physMove(id string, t dex.TypeID, power int) *battle.Move {
	return &battle.Move{ID: id, Type: t, Category: battle.CategoryPhysical, BasePower: power}
}

func TestResolveNeutralMatchup(t *testing.T) {
	res := Resolve(makeAttacker("", ""), makeDefender("", ""), physMove("tackle", dex.TypeNormal, 40), nil)
	if res.Immune || res.AttackMult != 1.0 || res.DefenseDiv != 1.0 || res.STAB != nil {
		t.Errorf("neutral matchup not neutral: %+v", res)
	}
}

func TestResolveUnknownIdentifiersAreNoOps(t *testing.T) {
	atk := makeAttacker("somefutureability", "somefutureitem")
	def := makeDefender("anotherability", "anotheritem")
	res := Resolve(atk, def, physMove("tackle", dex.TypeNormal, 40), nil)
	if res.Immune || res.AttackMult != 1.0 || res.DefenseDiv != 1.0 {
		t.Errorf("unknown identifiers must be no-ops, got %+v", res)
	}
}

func TestResolveLevitateImmunity(t *testing.T) {
	res := Resolve(makeAttacker("", ""), makeDefender("levitate", ""), physMove("earthquake", dex.TypeGround, 100), nil)
	if !res.Immune {
		t.Fatal("levitate must grant ground immunity")
	}
}

// TestResolveImmunityShortCircuits verifies that once the defender is
// immune no attacker multipliers are reported.
func TestResolveImmunityShortCircuits(t *testing.T) {
	atk := makeAttacker("guts", "lifeorb")
	atk.Status = battle.StatusBurn
	res := Resolve(atk, makeDefender("waterabsorb", ""), physMove("liquidation", dex.TypeWater, 85), nil)
	if !res.Immune {
		t.Fatal("water absorb must grant water immunity")
	}
	if res.AttackMult != 1.0 {
		t.Errorf("immune result leaked attack multiplier %v", res.AttackMult)
	}
}

func TestResolveAirBalloonImmunity(t *testing.T) {
	res := Resolve(makeAttacker("", ""), makeDefender("", "airballoon"), physMove("earthquake", dex.TypeGround, 100), nil)
	if !res.Immune {
		t.Fatal("air balloon must grant ground immunity")
	}
}

func TestResolveWonderGuard(t *testing.T) {
	def := makeDefender("wonderguard", "", dex.TypeBug, dex.TypeGhost)
	// Neutral hit: blocked.
	if res := Resolve(makeAttacker("", ""), def, physMove("aquajet", dex.TypeWater, 40), nil); !res.Immune {
		t.Error("wonder guard must block non-supereffective hits")
	}
	// Supereffective hit: goes through.
	if res := Resolve(makeAttacker("", ""), def, physMove("rockblast", dex.TypeRock, 25), nil); res.Immune {
		t.Error("wonder guard must not block supereffective hits")
	}
}

func TestResolveSTABOverrides(t *testing.T) {
	mv := physMove("liquidation", dex.TypeWater, 85)

	res := Resolve(makeAttacker("adaptability", ""), makeDefender("", ""), mv, nil)
	if res.STAB == nil || res.STAB.Mult != 2.0 || res.STAB.AnyMove {
		t.Errorf("adaptability override wrong: %+v", res.STAB)
	}
	atk := makeAttacker("adaptability", "")
	if got := res.STAB.Bonus(dex.TypeWater, atk); got != 2.0 {
		t.Errorf("adaptability same-type bonus = %v, want 2.0", got)
	}
	if got := res.STAB.Bonus(dex.TypeFire, atk); got != 1.0 {
		t.Errorf("adaptability off-type bonus = %v, want 1.0", got)
	}

	res = Resolve(makeAttacker("protean", ""), makeDefender("", ""), mv, nil)
	if res.STAB == nil || res.STAB.Mult != 1.5 || !res.STAB.AnyMove {
		t.Errorf("protean override wrong: %+v", res.STAB)
	}
	if got := res.STAB.Bonus(dex.TypeFire, makeAttacker("protean", "")); got != 1.5 {
		t.Errorf("protean must grant the bonus on every move, got %v", got)
	}
}

func TestResolveGutsRequiresStatus(t *testing.T) {
	mv := physMove("facade", dex.TypeNormal, 70)
	atk := makeAttacker("guts", "")
	if res := Resolve(atk, makeDefender("", ""), mv, nil); res.AttackMult != 1.0 {
		t.Errorf("guts without status gave %v", res.AttackMult)
	}
	atk.Status = battle.StatusBurn
	if res := Resolve(atk, makeDefender("", ""), mv, nil); res.AttackMult != 1.5 {
		t.Errorf("guts with burn gave %v, want 1.5", res.AttackMult)
	}
}

func TestResolveTechnicianThreshold(t *testing.T) {
	atk := makeAttacker("technician", "")
	if res := Resolve(atk, makeDefender("", ""), physMove("bulletpunch", dex.TypeSteel, 40), nil); res.AttackMult != 1.5 {
		t.Errorf("technician on 40 power gave %v", res.AttackMult)
	}
	if res := Resolve(atk, makeDefender("", ""), physMove("ironhead", dex.TypeSteel, 80), nil); res.AttackMult != 1.0 {
		t.Errorf("technician on 80 power gave %v", res.AttackMult)
	}
}

func TestResolvePinchAbility(t *testing.T) {
	atk := makeAttacker("torrent", "")
	mv := physMove("waterfall", dex.TypeWater, 80)
	if res := Resolve(atk, makeDefender("", ""), mv, nil); res.AttackMult != 1.0 {
		t.Errorf("torrent at full HP gave %v", res.AttackMult)
	}
	atk.HPFraction = 0.25
	if res := Resolve(atk, makeDefender("", ""), mv, nil); res.AttackMult != 1.5 {
		t.Errorf("torrent in pinch gave %v", res.AttackMult)
	}
}

func TestResolveItemAndAbilityStack(t *testing.T) {
	atk := makeAttacker("toughclaws", "lifeorb")
	res := Resolve(atk, makeDefender("", ""), physMove("firepunch", dex.TypeFire, 75), nil)
	want := 1.3 * 1.3
	if diff := res.AttackMult - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("stacked multiplier = %v, want %v", res.AttackMult, want)
	}
}

func TestResolveExpertBeltGating(t *testing.T) {
	atk := makeAttacker("", "expertbelt")
	ice := makeDefender("", "", dex.TypeDragon)
	if res := Resolve(atk, ice, physMove("icefang", dex.TypeIce, 65), nil); res.AttackMult != 1.2 {
		t.Errorf("expert belt on supereffective hit gave %v", res.AttackMult)
	}
	if res := Resolve(atk, makeDefender("", ""), physMove("icefang", dex.TypeIce, 65), nil); res.AttackMult != 1.0 {
		t.Errorf("expert belt on neutral hit gave %v", res.AttackMult)
	}
}

func TestResolveChoiceBandCategoryGating(t *testing.T) {
	atk := makeAttacker("", "choiceband")
	if res := Resolve(atk, makeDefender("", ""), physMove("waterfall", dex.TypeWater, 80), nil); res.AttackMult != 1.5 {
		t.Errorf("choice band on physical gave %v", res.AttackMult)
	}
	special := &battle.Move{ID: "surf", Type: dex.TypeWater, Category: battle.CategorySpecial, BasePower: 90}
	if res := Resolve(atk, makeDefender("", ""), special, nil); res.AttackMult != 1.0 {
		t.Errorf("choice band on special gave %v", res.AttackMult)
	}
}

func TestResolveTypeBoostItem(t *testing.T) {
	atk := makeAttacker("", "charcoal")
	if res := Resolve(atk, makeDefender("", ""), physMove("firepunch", dex.TypeFire, 75), nil); res.AttackMult != 1.2 {
		t.Errorf("charcoal on fire move gave %v", res.AttackMult)
	}
	if res := Resolve(atk, makeDefender("", ""), physMove("waterfall", dex.TypeWater, 80), nil); res.AttackMult != 1.0 {
		t.Errorf("charcoal on water move gave %v", res.AttackMult)
	}
}

func TestResolveLegendaryOrbSpeciesLock(t *testing.T) {
	mv := physMove("dragonclaw", dex.TypeDragon, 80)
	dialga := makeAttacker("", "adamantorb")
	dialga.Species = "Dialga"
	if res := Resolve(dialga, makeDefender("", ""), mv, nil); res.AttackMult != 1.2 {
		t.Errorf("adamant orb on dialga gave %v", res.AttackMult)
	}
	if res := Resolve(makeAttacker("", "adamantorb"), makeDefender("", ""), mv, nil); res.AttackMult != 1.0 {
		t.Errorf("adamant orb on wrong species gave %v", res.AttackMult)
	}
}

func TestResolveDefenseDivisors(t *testing.T) {
	mv := physMove("firepunch", dex.TypeFire, 75)

	if res := Resolve(makeAttacker("", ""), makeDefender("thickfat", ""), mv, nil); res.DefenseDiv != 2.0 {
		t.Errorf("thick fat vs fire gave %v", res.DefenseDiv)
	}
	if res := Resolve(makeAttacker("", ""), makeDefender("thickfat", ""), physMove("tackle", dex.TypeNormal, 40), nil); res.DefenseDiv != 1.0 {
		t.Errorf("thick fat vs normal gave %v", res.DefenseDiv)
	}
	if res := Resolve(makeAttacker("", ""), makeDefender("", "eviolite"), mv, nil); res.DefenseDiv != 1.5 {
		t.Errorf("eviolite gave %v", res.DefenseDiv)
	}
}

func TestResolveMultiscaleFullHPOnly(t *testing.T) {
	mv := physMove("dragonclaw", dex.TypeDragon, 80)
	def := makeDefender("multiscale", "")
	if res := Resolve(makeAttacker("", ""), def, mv, nil); res.DefenseDiv != 2.0 {
		t.Errorf("multiscale at full HP gave %v", res.DefenseDiv)
	}
	def.HPFraction = 0.7
	if res := Resolve(makeAttacker("", ""), def, mv, nil); res.DefenseDiv != 1.0 {
		t.Errorf("multiscale below full HP gave %v", res.DefenseDiv)
	}
}

func TestResolveDrySkinFireAmplifies(t *testing.T) {
	mv := physMove("firepunch", dex.TypeFire, 75)
	res := Resolve(makeAttacker("", ""), makeDefender("dryskin", ""), mv, nil)
	if res.Immune {
		t.Fatal("dry skin is not immune to fire")
	}
	if res.DefenseDiv != 0.8 {
		t.Errorf("dry skin vs fire gave divisor %v, want 0.8 (amplified)", res.DefenseDiv)
	}
}

func TestResolveTintedLens(t *testing.T) {
	atk := makeAttacker("tintedlens", "")
	// Water vs grass-type defender resists to 0.5; tinted lens doubles back.
	def := makeDefender("", "", dex.TypeGrass)
	res := Resolve(atk, def, physMove("waterfall", dex.TypeWater, 80), nil)
	if res.AttackMult != 2.0 {
		t.Errorf("tinted lens on resisted hit gave %v, want 2.0", res.AttackMult)
	}
	res = Resolve(atk, makeDefender("", ""), physMove("waterfall", dex.TypeWater, 80), nil)
	if res.AttackMult != 1.0 {
		t.Errorf("tinted lens on neutral hit gave %v", res.AttackMult)
	}
}

func TestResolveFieldGatedAbility(t *testing.T) {
	atk := makeAttacker("orichalcumpulse", "")
	mv := physMove("firepunch", dex.TypeFire, 75)
	sun := &battle.Field{Weather: battle.WeatherSun}
	want := 4.0 / 3.0
	if res := Resolve(atk, makeDefender("", ""), mv, sun); res.AttackMult != want {
		t.Errorf("orichalcum pulse in sun gave %v, want %v", res.AttackMult, want)
	}
	if res := Resolve(atk, makeDefender("", ""), mv, nil); res.AttackMult != 1.0 {
		t.Errorf("orichalcum pulse without sun gave %v", res.AttackMult)
	}
}

func TestResolveNilInputs(t *testing.T) {
	res := Resolve(nil, nil, nil, nil)
	if res.Immune || res.AttackMult != 1.0 || res.DefenseDiv != 1.0 {
		t.Errorf("nil inputs must yield the neutral result, got %+v", res)
	}
}
