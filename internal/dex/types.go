// Package dex holds the static game data the rest of the core is built on:
// the element type identifiers, the type-effectiveness chart, and the named
// move classes referenced by item and ability effects. Everything here is
// constructed once at process start and is read-only afterward, so it is
// safe to share across any number of concurrent callers.
package dex

import "strings"

// TypeID identifies one of the 18 element types.
type TypeID int

const (
	// TypeNone marks an absent or unrecognized type slot.
	TypeNone TypeID = iota - 1
	TypeNormal
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy
)

// NumTypes is the number of distinct element types.
const NumTypes = 18

var typeNames = [NumTypes]string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// String returns the lowercase type name, or "none" for TypeNone.
func (t TypeID) String() string {
	if t < 0 || int(t) >= NumTypes {
		return "none"
	}
	return typeNames[t]
}

// Valid reports whether t is one of the 18 real types.
func (t TypeID) Valid() bool {
	return t >= 0 && int(t) < NumTypes
}

var typesByName = func() map[string]TypeID {
	m := make(map[string]TypeID, NumTypes)
	for i, name := range typeNames {
		m[name] = TypeID(i)
	}
	return m
}()

// ParseType maps an external type identifier to a TypeID.
// Unrecognized identifiers yield TypeNone, never an error: the encoder must
// degrade gracefully as the game's content set grows.
func ParseType(name string) TypeID {
	if t, ok := typesByName[Normalize(name)]; ok {
		return t
	}
	return TypeNone
}

// Normalize lowercases an external item, ability, or move identifier and
// strips the separators the server is inconsistent about, so "Choice Band",
// "choice-band", and "choiceband" all key the same registry entry.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	r := strings.NewReplacer(" ", "", "-", "", "_", "", "'", "", ".", "")
	return r.Replace(s)
}
