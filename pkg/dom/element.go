// Package dom provides a minimal in-memory element model for hosts that
// style widgets with named classes: an ordered class list, an attribute
// map, native control state, and an attachment flag. [Element] implements
// checkstate.Adapter directly, making it the reference host for the
// transition engine and the backing store for the checksim demo.
package dom

import (
	"slices"
	"sort"
	"strings"

	"github.com/go-drift/checkstate/pkg/checkstate"
)

// Element models the root element of a checkbox widget together with its
// underlying native control. The zero value is usable and starts
// detached, unchecked, and classless.
type Element struct {
	classes []string
	attrs   map[string]string

	attached    bool
	layoutCount int

	checked       bool
	indeterminate bool
	disabled      bool
	value         string

	// onChange is invoked by Click, mirroring a native change event.
	onChange func()
}

var _ checkstate.Adapter = (*Element)(nil)

// NewElement returns a detached element with no classes or attributes.
func NewElement() *Element {
	return &Element{attrs: make(map[string]string)}
}

// AddClass adds name to the class list. Adding a present class is a no-op.
func (e *Element) AddClass(name string) {
	if !slices.Contains(e.classes, name) {
		e.classes = append(e.classes, name)
	}
}

// RemoveClass removes name from the class list if present.
func (e *Element) RemoveClass(name string) {
	if i := slices.Index(e.classes, name); i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
	}
}

// HasClass reports whether name is in the class list.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// ForceLayout records a forced synchronous layout pass. The in-memory
// model has no real layout, so this only bumps a counter hosts and tests
// can observe.
func (e *Element) ForceLayout() {
	e.layoutCount++
}

// LayoutCount returns how many layout passes were forced.
func (e *Element) LayoutCount() int {
	return e.layoutCount
}

// Attach marks the element as part of a rendered tree.
func (e *Element) Attach() {
	e.attached = true
}

// Detach marks the element as removed from the rendered tree.
func (e *Element) Detach() {
	e.attached = false
}

// IsAttached reports whether the element is part of a rendered tree.
func (e *Element) IsAttached() bool {
	return e.attached
}

// Checked reads the native control's checked state.
func (e *Element) Checked() bool { return e.checked }

// SetChecked writes the native control's checked state. Programmatic
// writes do not fire the change callback; use Click for user interaction.
func (e *Element) SetChecked(v bool) { e.checked = v }

// Indeterminate reads the native control's indeterminate state.
func (e *Element) Indeterminate() bool { return e.indeterminate }

// SetIndeterminate writes the native control's indeterminate state.
func (e *Element) SetIndeterminate(v bool) { e.indeterminate = v }

// Disabled reads the native control's disabled state.
func (e *Element) Disabled() bool { return e.disabled }

// SetDisabled writes the native control's disabled state.
func (e *Element) SetDisabled(v bool) { e.disabled = v }

// Value reads the native control's value.
func (e *Element) Value() string { return e.value }

// SetValue writes the native control's value.
func (e *Element) SetValue(v string) { e.value = v }

// SetAttribute sets a named attribute on the native control.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttribute removes a named attribute from the native control.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// Attribute returns the value of a named attribute and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// OnChange registers the callback fired by Click. Passing nil clears it.
func (e *Element) OnChange(fn func()) {
	e.onChange = fn
}

// Click simulates user interaction with the native control: a disabled
// control ignores it; otherwise the checked state flips, indeterminate
// clears, and the change callback fires.
func (e *Element) Click() {
	if e.disabled {
		return
	}
	e.checked = !e.checked
	e.indeterminate = false
	if e.onChange != nil {
		e.onChange()
	}
}

// String renders the element one line at a time: classes in insertion
// order, attributes sorted by name, then the native control state.
func (e *Element) String() string {
	var b strings.Builder
	b.WriteString("class=[" + strings.Join(e.classes, " ") + "]")

	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(" " + name + "=" + e.attrs[name])
	}

	if e.checked {
		b.WriteString(" checked")
	}
	if e.indeterminate {
		b.WriteString(" indeterminate")
	}
	if e.disabled {
		b.WriteString(" disabled")
	}
	return b.String()
}
