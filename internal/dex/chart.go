package dex

// chart is the 18x18 effectiveness matrix, indexed [attacker][defender].
// Populated once in init and never written again.
var chart [NumTypes][NumTypes]float64

func init() {
	for i := range chart {
		for j := range chart[i] {
			chart[i][j] = 1.0
		}
	}

	se := func(atk TypeID, defs ...TypeID) {
		for _, d := range defs {
			chart[atk][d] = 2.0
		}
	}
	nve := func(atk TypeID, defs ...TypeID) {
		for _, d := range defs {
			chart[atk][d] = 0.5
		}
	}
	imm := func(atk TypeID, defs ...TypeID) {
		for _, d := range defs {
			chart[atk][d] = 0.0
		}
	}

	nve(TypeNormal, TypeRock, TypeSteel)
	imm(TypeNormal, TypeGhost)

	se(TypeFire, TypeGrass, TypeIce, TypeBug, TypeSteel)
	nve(TypeFire, TypeFire, TypeWater, TypeRock, TypeDragon)

	se(TypeWater, TypeFire, TypeGround, TypeRock)
	nve(TypeWater, TypeWater, TypeGrass, TypeDragon)

	se(TypeElectric, TypeWater, TypeFlying)
	nve(TypeElectric, TypeElectric, TypeGrass, TypeDragon)
	imm(TypeElectric, TypeGround)

	se(TypeGrass, TypeWater, TypeGround, TypeRock)
	nve(TypeGrass, TypeFire, TypeGrass, TypePoison, TypeFlying, TypeBug, TypeDragon, TypeSteel)

	se(TypeIce, TypeGrass, TypeGround, TypeFlying, TypeDragon)
	nve(TypeIce, TypeFire, TypeWater, TypeIce, TypeSteel)

	se(TypeFighting, TypeNormal, TypeIce, TypeRock, TypeDark, TypeSteel)
	nve(TypeFighting, TypePoison, TypeFlying, TypePsychic, TypeBug, TypeFairy)
	imm(TypeFighting, TypeGhost)

	se(TypePoison, TypeGrass, TypeFairy)
	nve(TypePoison, TypePoison, TypeGround, TypeRock, TypeGhost)
	imm(TypePoison, TypeSteel)

	se(TypeGround, TypeFire, TypeElectric, TypePoison, TypeRock, TypeSteel)
	nve(TypeGround, TypeGrass, TypeBug)
	imm(TypeGround, TypeFlying)

	se(TypeFlying, TypeGrass, TypeFighting, TypeBug)
	nve(TypeFlying, TypeElectric, TypeRock, TypeSteel)

	se(TypePsychic, TypeFighting, TypePoison)
	nve(TypePsychic, TypePsychic, TypeSteel)
	imm(TypePsychic, TypeDark)

	se(TypeBug, TypeGrass, TypePsychic, TypeDark)
	nve(TypeBug, TypeFire, TypeFighting, TypeFlying, TypeGhost, TypeSteel, TypeFairy)

	se(TypeRock, TypeFire, TypeIce, TypeFlying, TypeBug)
	nve(TypeRock, TypeFighting, TypeGround, TypeSteel)

	se(TypeGhost, TypePsychic, TypeGhost)
	nve(TypeGhost, TypeDark)
	imm(TypeGhost, TypeNormal)

	se(TypeDragon, TypeDragon)
	nve(TypeDragon, TypeSteel)
	imm(TypeDragon, TypeFairy)

	se(TypeDark, TypePsychic, TypeGhost)
	nve(TypeDark, TypeFighting, TypeDark, TypeFairy)

	se(TypeSteel, TypeIce, TypeRock, TypeFairy)
	nve(TypeSteel, TypeFire, TypeWater, TypeElectric, TypeSteel)

	se(TypeFairy, TypeFighting, TypeDragon, TypeDark)
	nve(TypeFairy, TypeFire, TypePoison, TypeSteel)
}

// Effectiveness returns the combined type-effectiveness multiplier of an
// attack of type atk against the given defender types. Dual-type defenders
// multiply two chart lookups; TypeNone slots are skipped, not defaulted.
//
// Postcondition: result is a product of values from {0, 0.5, 1, 2}.
func Effectiveness(atk TypeID, defenders ...TypeID) float64 {
	if !atk.Valid() {
		return 1.0
	}
	mult := 1.0
	for _, d := range defenders {
		if d.Valid() {
			mult *= chart[atk][d]
		}
	}
	return mult
}
