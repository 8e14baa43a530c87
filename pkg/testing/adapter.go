// Package testing provides fakes for exercising the checkstate engine
// without a host: a recording adapter that captures every command the
// engine issues, and a manually stepped scheduler for deterministic latch
// timing.
package testing

import (
	"fmt"
	"slices"

	"github.com/go-drift/checkstate/pkg/checkstate"
)

// RecordingAdapter is a fake checkstate.Adapter. Probe state lives in
// plain fields tests can set directly; every mutating command is appended
// to an ordered op log so tests can assert exact command sequences.
type RecordingAdapter struct {
	// Probe state, readable and writable by tests.
	CheckedState       bool
	IndeterminateState bool
	DisabledState      bool
	ValueState         string
	Attached           bool

	classes map[string]bool
	attrs   map[string]string
	ops     []string
}

var _ checkstate.Adapter = (*RecordingAdapter)(nil)

// NewRecordingAdapter returns an adapter that reports attached, with no
// classes or attributes applied.
func NewRecordingAdapter() *RecordingAdapter {
	return &RecordingAdapter{
		Attached: true,
		classes:  make(map[string]bool),
		attrs:    make(map[string]string),
	}
}

// Ops returns a copy of the op log in command order.
func (a *RecordingAdapter) Ops() []string {
	return slices.Clone(a.ops)
}

// ClearOps discards the op log, keeping class, attribute, and probe state.
func (a *RecordingAdapter) ClearOps() {
	a.ops = nil
}

// HasClass reports whether name is currently applied.
func (a *RecordingAdapter) HasClass(name string) bool {
	return a.classes[name]
}

// Attr returns a named attribute and whether it is set.
func (a *RecordingAdapter) Attr(name string) (string, bool) {
	v, ok := a.attrs[name]
	return v, ok
}

func (a *RecordingAdapter) record(format string, args ...any) {
	a.ops = append(a.ops, fmt.Sprintf(format, args...))
}

func (a *RecordingAdapter) AddClass(name string) {
	a.classes[name] = true
	a.record("addClass %s", name)
}

func (a *RecordingAdapter) RemoveClass(name string) {
	delete(a.classes, name)
	a.record("removeClass %s", name)
}

func (a *RecordingAdapter) ForceLayout() {
	a.record("forceLayout")
}

func (a *RecordingAdapter) IsAttached() bool {
	return a.Attached
}

func (a *RecordingAdapter) Checked() bool { return a.CheckedState }

func (a *RecordingAdapter) SetChecked(v bool) {
	a.CheckedState = v
	a.record("setChecked %v", v)
}

func (a *RecordingAdapter) Indeterminate() bool { return a.IndeterminateState }

func (a *RecordingAdapter) SetIndeterminate(v bool) {
	a.IndeterminateState = v
	a.record("setIndeterminate %v", v)
}

func (a *RecordingAdapter) Disabled() bool { return a.DisabledState }

func (a *RecordingAdapter) SetDisabled(v bool) {
	a.DisabledState = v
	a.record("setDisabled %v", v)
}

func (a *RecordingAdapter) Value() string { return a.ValueState }

func (a *RecordingAdapter) SetValue(v string) {
	a.ValueState = v
	a.record("setValue %s", v)
}

func (a *RecordingAdapter) SetAttribute(name, value string) {
	a.attrs[name] = value
	a.record("setAttr %s=%s", name, value)
}

func (a *RecordingAdapter) RemoveAttribute(name string) {
	delete(a.attrs, name)
	a.record("removeAttr %s", name)
}
