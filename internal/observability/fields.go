package observability

import (
	"go.uber.org/zap"

	"github.com/asandoval/battlecore/internal/battle"
)

// SnapshotFields converts the loggable surface of a battle snapshot into
// structured fields: turn number, active species, and HP fractions.
// Unknown actives are reported as empty species with zero HP.
func SnapshotFields(snap *battle.Snapshot) []zap.Field {
	fields := []zap.Field{zap.Int("turn", snap.Turn)}
	fields = append(fields, memberFields("own", snap.OwnActive)...)
	fields = append(fields, memberFields("opp", snap.OppActive)...)
	return fields
}

func memberFields(prefix string, p *battle.Pokemon) []zap.Field {
	if p == nil {
		return []zap.Field{
			zap.String(prefix+"_species", ""),
			zap.Float64(prefix+"_hp", 0),
		}
	}
	return []zap.Field{
		zap.String(prefix+"_species", p.Species),
		zap.Float64(prefix+"_hp", p.HPFraction),
	}
}

// MatchupFields describes a single attacker/defender pairing for damage
// calculator output.
func MatchupFields(attacker, defender *battle.Pokemon) []zap.Field {
	return []zap.Field{
		zap.String("attacker", attacker.Species),
		zap.String("defender", defender.Species),
		zap.Float64("attacker_hp", attacker.HPFraction),
		zap.Float64("defender_hp", defender.HPFraction),
	}
}
