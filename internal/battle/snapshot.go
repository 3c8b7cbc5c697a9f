// Package battle defines the read-only battle snapshot the core consumes and
// the level-100 stat approximation model. The session layer owns and mutates
// live battle state; the core only borrows an immutable view of it for the
// duration of one encode or mask call and holds nothing across turns.
package battle

import "github.com/asandoval/battlecore/internal/dex"

// Roster shape constants shared by the feature encoder and the action
// legality resolver. Both derive their layouts from these values, so the
// two indexing conventions cannot drift apart.
const (
	// MaxMoves is the number of move slots per Pokemon.
	MaxMoves = 4
	// MaxReserves is the number of reserve roster slots per side.
	MaxReserves = 5
)

// Category is a move's damage category.
type Category int

const (
	CategoryPhysical Category = iota
	CategorySpecial
	CategoryStatus
)

// Status is a major status condition.
type Status int

const (
	StatusNone Status = iota
	StatusBurn
	StatusFreeze
	StatusParalysis
	StatusPoison
	StatusToxic
	StatusSleep
)

// NumStatuses counts the non-none status conditions; the encoder reserves
// one extra slot for the healthy case.
const NumStatuses = 6

// Weather is the active global weather.
type Weather int

const (
	WeatherNone Weather = iota
	WeatherSun
	WeatherRain
	WeatherSandstorm
	WeatherHail
	WeatherSnow
	WeatherHarshSun
	WeatherHeavyRain
	WeatherStrongWinds
)

// NumWeathers counts the non-none weather states.
const NumWeathers = 8

// Sunny reports whether w boosts fire moves and weakens water moves.
func (w Weather) Sunny() bool { return w == WeatherSun || w == WeatherHarshSun }

// Rainy reports whether w boosts water moves and weakens fire moves.
func (w Weather) Rainy() bool { return w == WeatherRain || w == WeatherHeavyRain }

// Terrain is the active field terrain.
type Terrain int

const (
	TerrainNone Terrain = iota
	TerrainElectric
	TerrainGrassy
	TerrainMisty
	TerrainPsychic
)

// NumTerrains counts the non-none terrains.
const NumTerrains = 4

// StatBlock holds the six base stats as published in the species dex entry.
// Real in-battle stats depend on unobservable IV/EV spreads; the core works
// from these plus the fixed-spread approximation in EffectiveStat.
type StatBlock struct {
	HP  int `yaml:"hp"`
	Atk int `yaml:"atk"`
	Def int `yaml:"def"`
	SpA int `yaml:"spa"`
	SpD int `yaml:"spd"`
	Spe int `yaml:"spe"`
}

// Boosts holds in-battle stat stages, each in [-6, 6]. HP cannot be boosted.
type Boosts struct {
	Atk      int `yaml:"atk"`
	Def      int `yaml:"def"`
	SpA      int `yaml:"spa"`
	SpD      int `yaml:"spd"`
	Spe      int `yaml:"spe"`
	Accuracy int `yaml:"accuracy"`
	Evasion  int `yaml:"evasion"`
}

// Move is one revealed move slot. An opponent's unrevealed move is
// represented as an absent slot, never as a zero-power Move.
type Move struct {
	// ID is the normalized move identifier.
	ID       string
	Type     dex.TypeID
	Category Category
	// BasePower is 0 for status moves.
	BasePower int
	// Accuracy is in [0, 1]; 1 for moves that never miss.
	Accuracy float64
	PP       int
	MaxPP    int
}

// Damaging reports whether the move deals direct damage.
func (m *Move) Damaging() bool {
	return m != nil && m.Category != CategoryStatus && m.BasePower > 0
}

// Pokemon is one team member's observable state. Own-side members are fully
// known; opponent members carry only what the battle so far has revealed,
// with unrevealed attributes left zero-valued or absent.
type Pokemon struct {
	Species string
	Base    StatBlock
	Boosts  Boosts
	// HPFraction is current HP as a fraction of max, in [0, 1].
	HPFraction float64
	// Types holds 1 or 2 entries.
	Types []dex.TypeID
	// Ability and Item are normalized identifiers, empty when unrevealed.
	Ability string
	Item    string
	Status  Status
	Fainted bool
	// Moves holds up to MaxMoves revealed moves in the member's own slot
	// order, which is the order move actions index.
	Moves []Move
}

// PrimaryType returns the first valid type, or TypeNone.
func (p *Pokemon) PrimaryType() dex.TypeID {
	for _, t := range p.Types {
		if t.Valid() {
			return t
		}
	}
	return dex.TypeNone
}

// HasType reports whether t is one of p's types.
func (p *Pokemon) HasType(t dex.TypeID) bool {
	for _, pt := range p.Types {
		if pt == t {
			return true
		}
	}
	return false
}

// SideConditions are the screens and entry hazards on one side of the field.
type SideConditions struct {
	Reflect     bool `yaml:"reflect"`
	LightScreen bool `yaml:"light_screen"`
	AuroraVeil  bool `yaml:"aurora_veil"`
	StealthRock bool `yaml:"stealth_rock"`
	// Spikes is the layer count, 0-3.
	Spikes int `yaml:"spikes"`
	// ToxicSpikes is the layer count, 0-2.
	ToxicSpikes int  `yaml:"toxic_spikes"`
	StickyWeb   bool `yaml:"sticky_web"`
}

// Field is the global battle field state.
type Field struct {
	Weather Weather
	Terrain Terrain
	// OwnSide and OppSide are tracked independently; screens reduce damage
	// for the side they were set on.
	OwnSide SideConditions
	OppSide SideConditions
}

// Snapshot is the full observable battle state at one decision point.
// The core assumes internal consistency (one active member per side) and
// performs only defensive nil checks beyond that.
type Snapshot struct {
	OwnActive *Pokemon
	// OwnReserves holds up to MaxReserves members in fixed team order with
	// the active member excluded. Slot positions are stable across the
	// battle; they are what switch actions index.
	OwnReserves []*Pokemon
	OppActive   *Pokemon
	OppReserves []*Pokemon
	Field       Field
	Turn        int

	// Turn-scoped choice restrictions reported by the session layer.
	Trapped      bool
	ForcedSwitch bool
	MustRecharge bool
	// CanTerastallize gates the extended action sub-range for formats
	// that expose the mechanic.
	CanTerastallize bool

	Won      bool
	Lost     bool
	Finished bool
}

// ReserveAt returns the reserve member in roster slot i of the given side,
// or nil when the slot is absent or out of range.
func ReserveAt(side []*Pokemon, i int) *Pokemon {
	if i < 0 || i >= len(side) {
		return nil
	}
	return side[i]
}
