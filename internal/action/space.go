// Package action maps a battle snapshot onto a fixed discrete action
// space: up to four move slots followed by up to five switch targets, with
// an optional extension covering the terastallize mechanic as extra
// move-plus-mechanic combinations.
//
// Switch indices always name absolute roster slots, never positions in a
// filtered list of currently available targets. The legality mask and the
// index translator share this convention; a policy trained against the
// mask can hand any marked index to Translate and receive the command the
// mask promised.
package action

import (
	"github.com/asandoval/battlecore/internal/battle"
)

// Kind discriminates the command a translated action index produces.
type Kind int

const (
	// KindDefault is the designated no-op command: the externally chosen
	// forced action for the turn (struggle, recharge, or the server's
	// default choice).
	KindDefault Kind = iota
	KindMove
	KindSwitch
)

// Command is a translated action ready for the session layer.
type Command struct {
	Kind Kind
	// Slot is the move slot for KindMove or the absolute reserve roster
	// slot for KindSwitch. Unused for KindDefault.
	Slot int
	// Terastallize marks a move command that also triggers the mechanic.
	Terastallize bool
}

// Space describes the action space of one battle format.
type Space struct {
	withTera bool
}

// NewSpace returns the singles action space, optionally extended with the
// terastallize sub-range.
func NewSpace(withTera bool) Space {
	return Space{withTera: withTera}
}

// Size is the number of action indices in the space.
func (s Space) Size() int {
	n := battle.MaxMoves + battle.MaxReserves
	if s.withTera {
		n += battle.MaxMoves
	}
	return n
}

// moveUsable reports whether the active member can use move slot i this
// turn.
func moveUsable(snap *battle.Snapshot, i int) bool {
	if snap.ForcedSwitch || snap.MustRecharge {
		return false
	}
	p := snap.OwnActive
	if p == nil || p.Fainted || i >= len(p.Moves) {
		return false
	}
	return p.Moves[i].PP > 0
}

// switchUsable reports whether reserve roster slot i is a legal switch
// target this turn.
func switchUsable(snap *battle.Snapshot, i int) bool {
	if snap.Trapped && !snap.ForcedSwitch {
		return false
	}
	p := battle.ReserveAt(snap.OwnReserves, i)
	return p != nil && !p.Fainted && p.HPFraction > 0
}

// anyMoveUsable reports whether any move slot is usable.
func anyMoveUsable(snap *battle.Snapshot) bool {
	for i := 0; i < battle.MaxMoves; i++ {
		if moveUsable(snap, i) {
			return true
		}
	}
	return false
}

// defaultForced reports whether slot 0 must stand in for the turn's forced
// choice: the active member has no usable move and is not being forced out,
// so the only move-range action is the server's default (struggle or
// recharge).
func defaultForced(snap *battle.Snapshot) bool {
	return !snap.ForcedSwitch && !anyMoveUsable(snap)
}

// LegalMask returns one flag per action index, true when translating that
// index yields a command that is legal this turn.
//
// Postcondition: at least one flag is true. If no action is legal after
// the default-slot rule the whole mask is true, deferring recovery to the
// session layer's own fallback.
func (s Space) LegalMask(snap *battle.Snapshot) []bool {
	mask := make([]bool, s.Size())
	if snap == nil {
		for i := range mask {
			mask[i] = true
		}
		return mask
	}

	for i := 0; i < battle.MaxMoves; i++ {
		mask[i] = moveUsable(snap, i)
	}
	// A turn with no usable move still needs a selectable action: slot 0
	// stands in for the forced default command.
	if defaultForced(snap) {
		mask[0] = true
	}

	for i := 0; i < battle.MaxReserves; i++ {
		mask[battle.MaxMoves+i] = switchUsable(snap, i)
	}

	if s.withTera {
		base := battle.MaxMoves + battle.MaxReserves
		for i := 0; i < battle.MaxMoves; i++ {
			mask[base+i] = snap.CanTerastallize && moveUsable(snap, i)
		}
	}

	any := false
	for _, m := range mask {
		if m {
			any = true
			break
		}
	}
	if !any {
		for i := range mask {
			mask[i] = true
		}
	}
	return mask
}

// Translate converts an action index into its command. ok is false when
// the index is out of range or names a slot that is not legal this turn;
// the returned mask and Translate agree index for index apart from the
// all-legal fallback, which defers to the session layer.
func (s Space) Translate(snap *battle.Snapshot, index int) (Command, bool) {
	if snap == nil || index < 0 || index >= s.Size() {
		return Command{}, false
	}

	if index < battle.MaxMoves {
		if moveUsable(snap, index) {
			return Command{Kind: KindMove, Slot: index}, true
		}
		if index == 0 && defaultForced(snap) {
			return Command{Kind: KindDefault}, true
		}
		return Command{}, false
	}

	if index < battle.MaxMoves+battle.MaxReserves {
		slot := index - battle.MaxMoves
		if switchUsable(snap, slot) {
			return Command{Kind: KindSwitch, Slot: slot}, true
		}
		return Command{}, false
	}

	slot := index - battle.MaxMoves - battle.MaxReserves
	if snap.CanTerastallize && moveUsable(snap, slot) {
		return Command{Kind: KindMove, Slot: slot, Terastallize: true}, true
	}
	return Command{}, false
}

// FirstLegal returns the lowest action index marked legal in mask, or 0
// when none is.
func FirstLegal(mask []bool) int {
	for i, m := range mask {
		if m {
			return i
		}
	}
	return 0
}
