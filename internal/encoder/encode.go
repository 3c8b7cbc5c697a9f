package encoder

import (
	"math"

	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/dex"
)

// Encode flattens snap into the fixed observation vector. Section order is
// own active, combat analysis, switch analysis, own reserves, opponent
// active, opponent reserves, field.
//
// Precondition: snap must not be nil.
// Postcondition: len(result) == VectorSize on every call.
func Encode(snap *battle.Snapshot) []float64 {
	v := newVector()

	if snap.OwnActive != nil {
		v.active(snap.OwnActive, true)
	} else {
		v.skip(ActiveSize)
	}

	if snap.OwnActive != nil && snap.OppActive != nil {
		v.combatAnalysis(snap.OwnActive, snap.OppActive, &snap.Field)
	} else {
		v.skip(CombatSize)
	}

	if snap.OppActive != nil {
		v.switchAnalysis(snap.OwnReserves, snap.OppActive, &snap.Field)
	} else {
		v.skip(SwitchSize)
	}

	for i := 0; i < battle.MaxReserves; i++ {
		v.reserve(battle.ReserveAt(snap.OwnReserves, i))
	}

	if snap.OppActive != nil {
		v.active(snap.OppActive, false)
	} else {
		v.skip(ActiveSize)
	}

	for i := 0; i < battle.MaxReserves; i++ {
		v.reserve(battle.ReserveAt(snap.OppReserves, i))
	}

	v.field(&snap.Field)

	return v.finish()
}

// vector appends fixed-size sections into a pre-allocated observation.
// Zero-filling is centralized in skip so absent information always
// occupies its declared width.
type vector struct {
	buf []float64
	off int
}

func newVector() *vector {
	return &vector{buf: make([]float64, VectorSize)}
}

// put writes one value and advances.
func (v *vector) put(x float64) {
	v.buf[v.off] = x
	v.off++
}

// putBool writes a flag as 0 or 1.
func (v *vector) putBool(b bool) {
	if b {
		v.put(1.0)
	} else {
		v.put(0.0)
	}
}

// skip leaves n positions zeroed.
func (v *vector) skip(n int) {
	v.off += n
}

// oneHot writes a width-wide one-hot sub-vector. An out-of-range index
// leaves the sub-vector all zero.
func (v *vector) oneHot(index, width int) {
	if index >= 0 && index < width {
		v.buf[v.off+index] = 1.0
	}
	v.off += width
}

func (v *vector) finish() []float64 {
	if v.off != VectorSize {
		panic("encoder: section sizes out of sync with VectorSize")
	}
	return v.buf
}

// types writes the member's type one-hot, covering one or both slots.
func (v *vector) types(p *battle.Pokemon) {
	for _, t := range p.Types {
		if t.Valid() {
			v.buf[v.off+int(t)] = 1.0
		}
	}
	v.off += dex.NumTypes
}

// status writes the status one-hot with the trailing healthy slot.
func (v *vector) status(s battle.Status) {
	if s == battle.StatusNone {
		v.oneHot(statusSize-1, statusSize)
		return
	}
	v.oneHot(int(s)-1, statusSize)
}

// boosts writes the seven stage values scaled to [-1, 1].
func (v *vector) boosts(b *battle.Boosts) {
	v.put(float64(b.Atk) / 6.0)
	v.put(float64(b.Def) / 6.0)
	v.put(float64(b.SpA) / 6.0)
	v.put(float64(b.SpD) / 6.0)
	v.put(float64(b.Spe) / 6.0)
	v.put(float64(b.Accuracy) / 6.0)
	v.put(float64(b.Evasion) / 6.0)
}

// move writes one move slot. A nil move zeroes the slot.
func (v *vector) move(m *battle.Move, owner *battle.Pokemon) {
	if m == nil {
		v.skip(MoveSize)
		return
	}
	v.oneHot(int(m.Type), dex.NumTypes)
	v.oneHot(int(m.Category), 3)
	v.put(math.Min(float64(m.BasePower)/powerScale, 1.0))
	v.put(m.Accuracy)
	if m.MaxPP > 0 {
		v.put(float64(m.PP) / float64(m.MaxPP))
	} else {
		v.put(1.0)
	}
	v.putBool(owner.HasType(m.Type))
}

// active writes one active member. Only the own side carries stat and move
// detail; the opponent's sections stay zero since they are unobservable.
func (v *vector) active(p *battle.Pokemon, own bool) {
	v.put(p.HPFraction)
	v.types(p)
	v.status(p.Status)
	v.boosts(&p.Boosts)

	if !own {
		v.skip(statsSize + battle.MaxMoves*MoveSize)
		return
	}

	v.put(float64(p.Base.Atk) / statScale)
	v.put(float64(p.Base.Def) / statScale)
	v.put(float64(p.Base.SpA) / statScale)
	v.put(float64(p.Base.SpD) / statScale)
	v.put(float64(p.Base.Spe) / statScale)

	for i := 0; i < battle.MaxMoves; i++ {
		if i < len(p.Moves) {
			v.move(&p.Moves[i], p)
		} else {
			v.move(nil, p)
		}
	}
}

// reserve writes one reserve slot: HP, types, and availability. An absent
// slot stays zero.
func (v *vector) reserve(p *battle.Pokemon) {
	if p == nil {
		v.skip(ReserveSize)
		return
	}
	v.put(p.HPFraction)
	v.types(p)
	v.putBool(!p.Fainted)
}

// field writes weather, terrain, both sides' screens, and both sides'
// hazards. Hazard layer counts are scaled by their maximums.
func (v *vector) field(f *battle.Field) {
	if f.Weather == battle.WeatherNone {
		v.oneHot(weatherSize-1, weatherSize)
	} else {
		v.oneHot(int(f.Weather)-1, weatherSize)
	}
	if f.Terrain == battle.TerrainNone {
		v.oneHot(terrainSize-1, terrainSize)
	} else {
		v.oneHot(int(f.Terrain)-1, terrainSize)
	}

	for _, side := range [2]*battle.SideConditions{&f.OwnSide, &f.OppSide} {
		v.putBool(side.Reflect)
		v.putBool(side.LightScreen)
		v.putBool(side.AuroraVeil)
	}
	for _, side := range [2]*battle.SideConditions{&f.OwnSide, &f.OppSide} {
		v.putBool(side.StealthRock)
		v.put(float64(side.Spikes) / 3.0)
		v.put(float64(side.ToxicSpikes) / 2.0)
		v.putBool(side.StickyWeb)
	}
}
