// Package encoder flattens a battle snapshot into a fixed-length feature
// vector for a learning policy. Every section has a constant, pre-declared
// size; unknown or absent information is encoded as zero-filled sub-vectors
// so the vector length never varies between calls.
package encoder

import (
	"github.com/asandoval/battlecore/internal/battle"
	"github.com/asandoval/battlecore/internal/dex"
)

// Per-field sub-vector sizes. The one-hot encodings carry a trailing
// "none" slot so the absence of a status, weather, or terrain is itself a
// signal.
const (
	statusSize  = battle.NumStatuses + 1
	boostsSize  = 7
	statsSize   = 5
	weatherSize = battle.NumWeathers + 1
	terrainSize = battle.NumTerrains + 1
	screensSize = 3
	hazardsSize = 4

	// MoveSize is one move slot: type one-hot, category one-hot, scaled
	// power, accuracy, PP fraction, and a same-type flag.
	MoveSize = dex.NumTypes + 3 + 1 + 1 + 1 + 1

	// ActiveSize is one active member: HP fraction, type one-hot, status,
	// boost stages, scaled base stats, and the move slots. Opponent
	// actives zero the stat and move sections.
	ActiveSize = 1 + dex.NumTypes + statusSize + boostsSize + statsSize + battle.MaxMoves*MoveSize

	// ReserveSize is one reserve slot: HP fraction, type one-hot, and an
	// availability flag.
	ReserveSize = 1 + dex.NumTypes + 1

	// CombatSize is the per-move matchup analysis plus the global flags.
	CombatSize = battle.MaxMoves*moveAnalysisSize + combatGlobalSize

	// SwitchSize is the per-reserve switch analysis.
	SwitchSize = battle.MaxReserves * reserveAnalysisSize

	// FieldSize covers weather, terrain, both sides' screens, and both
	// sides' entry hazards.
	FieldSize = weatherSize + terrainSize + 2*screensSize + 2*hazardsSize

	moveAnalysisSize    = len(effectivenessBuckets) + 2
	combatGlobalSize    = 4
	reserveAnalysisSize = 6

	// VectorSize is the full observation: own active, combat analysis,
	// switch analysis, own reserves, opponent active, opponent reserves,
	// field.
	VectorSize = ActiveSize + CombatSize + SwitchSize +
		battle.MaxReserves*ReserveSize + ActiveSize +
		battle.MaxReserves*ReserveSize + FieldSize
)

// effectivenessBuckets are the one-hot targets for a move's combined type
// effectiveness. Values that match no bucket fall back to the neutral one.
var effectivenessBuckets = [...]float64{0.0, 0.25, 0.5, 1.0, 2.0, 4.0}

// neutralBucket indexes the 1.0 entry of effectivenessBuckets.
const neutralBucket = 3

// bucketTolerance bounds the distance between an effectiveness value and
// its bucket.
const bucketTolerance = 0.01

// statScale normalizes base stats by their game-wide maximum.
const statScale = 255.0

// powerScale normalizes base power; the few moves above it saturate at 1.
const powerScale = 250.0
