package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asandoval/battlecore/internal/battle"
)

func TestSnapshotFields(t *testing.T) {
	snap := &battle.Snapshot{
		Turn:      12,
		OwnActive: &battle.Pokemon{Species: "garchomp", HPFraction: 0.75},
	}
	fields := SnapshotFields(snap)
	assert.Len(t, fields, 5)
	assert.Equal(t, "turn", fields[0].Key)
	assert.Equal(t, "own_species", fields[1].Key)
	// Unrevealed opponent still yields its fields.
	assert.Equal(t, "opp_species", fields[3].Key)
}

func TestMatchupFields(t *testing.T) {
	atk := &battle.Pokemon{Species: "garchomp", HPFraction: 1.0}
	def := &battle.Pokemon{Species: "rotomwash", HPFraction: 0.5}
	fields := MatchupFields(atk, def)
	assert.Len(t, fields, 4)
	assert.Equal(t, "attacker", fields[0].Key)
}
