package dex

// MoveSet is a fixed membership set of normalized move ids, used by item and
// ability effects that key off a move class (punches, sounds, contact, ...).
type MoveSet map[string]struct{}

// Contains reports whether the normalized move id is in the set.
func (s MoveSet) Contains(moveID string) bool {
	_, ok := s[Normalize(moveID)]
	return ok
}

func newMoveSet(ids ...string) MoveSet {
	s := make(MoveSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func union(sets ...MoveSet) MoveSet {
	out := make(MoveSet)
	for _, s := range sets {
		for id := range s {
			out[id] = struct{}{}
		}
	}
	return out
}

// PunchMoves are fist-based moves (iron fist, punching glove).
var PunchMoves = newMoveSet(
	"bulletpunch", "cometpunch", "dizzypunch", "drainpunch", "dynamicpunch",
	"firepunch", "focuspunch", "hammerarm", "icehammer", "icepunch",
	"machpunch", "megapunch", "meteormash", "poisonjab", "poweruppunch",
	"shadowpunch", "skyuppercut", "superpower", "thunderpunch",
)

// RecoilMoves damage their user (reckless).
var RecoilMoves = newMoveSet(
	"bravebird", "doubleedge", "flareblitz", "headsmash", "highjumpkick",
	"jumpkick", "submission", "takedown", "volttackle", "wildcharge",
	"woodhammer", "headcharge",
)

// BiteMoves are jaw-based moves (strong jaw).
var BiteMoves = newMoveSet(
	"bite", "crunch", "firefang", "hyperfang", "icefang", "poisonfang",
	"psychicfangs", "thunderfang",
)

// PulseMoves are aura and pulse moves (mega launcher).
var PulseMoves = newMoveSet(
	"aurasphere", "darkpulse", "dragonpulse", "healpulse",
	"originpulse", "terrainpulse", "waterpulse",
)

// SoundMoves are sound-based moves (punk rock, soundproof).
var SoundMoves = newMoveSet(
	"boomburst", "bugbuzz", "chatter", "clangingscales", "clangoroussoul",
	"disarmingvoice", "echoedvoice", "grasswhistle", "growl", "hypervoice",
	"metalsound", "nobleroar", "overdrive", "partingshot", "perishsong",
	"relicsong", "roar", "round", "screech", "sing", "snarl", "snore",
	"sparklingaria", "supersonic", "uproar", "healbell",
)

// ContactMoves make physical contact with the target (tough claws, fluffy).
var ContactMoves = union(newMoveSet(
	"aquajet", "aquastep", "bodypress", "bodyslam", "bravebird", "bulldoze",
	"closecombat", "crunch", "doubleedge", "dragonclaw", "dragonrush",
	"drainpunch", "extremespeed", "facade", "falseswipe", "flareblitz",
	"flyingpress", "focuspunch", "geargrind", "headsmash", "highjumpkick",
	"iciclecrash", "ironhead", "leafblade", "lowkick", "lowsweep", "lunge",
	"nightslash", "outrage", "phantomforce", "playrough", "poisonjab",
	"psychocut", "psychicfangs", "rapidspin", "shadowclaw", "shadowsneak",
	"slash", "stoneedge", "submission", "superpower", "takedown",
	"thunderpunch", "uturn", "woodhammer", "xscissor", "zenheadbutt",
), PunchMoves, BiteMoves)

// BallBombMoves are ball and bomb moves (bulletproof).
var BallBombMoves = newMoveSet(
	"aurasphere", "barrage", "eggbomb", "electroball", "energyball",
	"focusblast", "gunkshot", "gyroball", "iceball", "magnetbomb",
	"mistball", "mudbomb", "octazooka", "pollenpuff", "rockblast",
	"rockwrecker", "seedbomb", "seedflare", "shadowball", "sludgebomb",
	"syrupbomb", "weatherball",
)
