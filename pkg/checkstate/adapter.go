package checkstate

// Adapter is the capability surface the engine requires from its host.
// The engine never touches rendering itself; it issues class, attribute,
// and native-control commands through the adapter and reads the probes
// back from it. Implement one adapter per host environment; package dom
// provides the in-memory implementation and package testing a recording
// fake.
type Adapter interface {
	// AddClass adds a styling class to the widget's root element.
	AddClass(name string)

	// RemoveClass removes a styling class from the widget's root element.
	RemoveClass(name string)

	// ForceLayout forces a synchronous layout pass on the root element.
	// Required between removing and re-adding an animation class so the
	// host restarts the transition instead of coalescing the two edits.
	ForceLayout()

	// IsAttached reports whether the root element is currently part of a
	// rendered tree. Detached elements are never animated.
	IsAttached() bool

	// Checked reads the native control's checked state.
	Checked() bool

	// SetChecked writes the native control's checked state.
	SetChecked(v bool)

	// Indeterminate reads the native control's indeterminate state.
	Indeterminate() bool

	// SetIndeterminate writes the native control's indeterminate state.
	SetIndeterminate(v bool)

	// Disabled reads the native control's disabled state.
	Disabled() bool

	// SetDisabled writes the native control's disabled state.
	SetDisabled(v bool)

	// Value reads the native control's value.
	Value() string

	// SetValue writes the native control's value.
	SetValue(v string)

	// SetAttribute sets a named attribute on the native control.
	SetAttribute(name, value string)

	// RemoveAttribute removes a named attribute from the native control.
	RemoveAttribute(name string)
}
