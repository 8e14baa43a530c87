package checkstate

import "fmt"

// CheckState classifies the logical state of a tri-state checkbox.
//
// The state is always derived from the host control's checked and
// indeterminate probes via [DeriveCheckState]; the engine caches the last
// derivation but never invents a state of its own.
//
//	                checked=true
//	Unchecked ◄──────────────────► Checked
//	     ▲                            ▲
//	     │     indeterminate=true     │
//	     └────────► Indeterminate ◄───┘
//
// StateInit exists only as the engine's value before the first derivation;
// it is never re-entered and has no externally observable equivalent.
type CheckState int

const (
	// StateInit is the engine's starting value before the first derivation.
	StateInit CheckState = iota
	// StateUnchecked means neither probe is set.
	StateUnchecked
	// StateChecked means the checked probe is set and indeterminate is not.
	StateChecked
	// StateIndeterminate means the indeterminate probe is set.
	StateIndeterminate
)

// String returns a human-readable representation of the check state.
func (s CheckState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateUnchecked:
		return "unchecked"
	case StateChecked:
		return "checked"
	case StateIndeterminate:
		return "indeterminate"
	default:
		return fmt.Sprintf("CheckState(%d)", int(s))
	}
}

// DeriveCheckState classifies the raw control probes. Indeterminate
// strictly dominates checked. The result is never StateInit.
func DeriveCheckState(checked, indeterminate bool) CheckState {
	if indeterminate {
		return StateIndeterminate
	}
	if checked {
		return StateChecked
	}
	return StateUnchecked
}
