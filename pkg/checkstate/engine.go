package checkstate

// Engine drives the visual transitions of a tri-state checkbox without
// touching the host's rendering. It derives the logical state from the
// adapter's checked and indeterminate probes, keeps the accessibility
// attribute in sync, and selects the directional animation class for each
// state change.
//
// The engine is single-threaded and event-driven: every method runs to
// completion on the calling goroutine and nothing blocks. The only
// asynchronous piece is the animation-end latch timer; see [Scheduler]
// for the threading contract.
//
// Always call Init before use and Dispose when the widget is torn down.
type Engine struct {
	adapter Adapter
	cfg     Config

	state      CheckState
	animClass  string
	latchTimer TimerHandle
	latchArmed bool
}

// NewEngine creates an engine bound to the given host adapter and
// constants table.
func NewEngine(adapter Adapter, cfg Config) *Engine {
	return &Engine{adapter: adapter, cfg: cfg, state: StateInit}
}

// Init seeds the logical state from the current probes, synchronizes the
// accessibility attribute, and marks the element upgraded. No animation
// is triggered.
func (e *Engine) Init() {
	e.state = e.deriveState()
	e.syncAriaChecked()
	e.adapter.AddClass(e.cfg.ClassUpgraded)
}

// Dispose cancels any pending latch timer. Safe to call multiple times.
func (e *Engine) Dispose() {
	if e.latchTimer != nil {
		e.latchTimer.Stop()
		e.latchTimer = nil
	}
}

// State returns the logical state as of the last derivation.
func (e *Engine) State() CheckState {
	return e.state
}

// Checked reads the native control's checked state.
func (e *Engine) Checked() bool {
	return e.adapter.Checked()
}

// SetChecked writes the native control's checked state and runs the
// transition procedure.
func (e *Engine) SetChecked(v bool) {
	e.adapter.SetChecked(v)
	e.transitionCheckState()
}

// Indeterminate reads the native control's indeterminate state.
func (e *Engine) Indeterminate() bool {
	return e.adapter.Indeterminate()
}

// SetIndeterminate writes the native control's indeterminate state. It
// does not run the transition procedure: callers must follow up with
// HandleChange for the visual state to update.
func (e *Engine) SetIndeterminate(v bool) {
	e.adapter.SetIndeterminate(v)
}

// Disabled reads the native control's disabled state.
func (e *Engine) Disabled() bool {
	return e.adapter.Disabled()
}

// SetDisabled writes the native control's disabled state and toggles the
// disabled class to match.
func (e *Engine) SetDisabled(v bool) {
	e.adapter.SetDisabled(v)
	if v {
		e.adapter.AddClass(e.cfg.ClassDisabled)
	} else {
		e.adapter.RemoveClass(e.cfg.ClassDisabled)
	}
}

// Value reads the native control's value.
func (e *Engine) Value() string {
	return e.adapter.Value()
}

// SetValue writes the native control's value.
func (e *Engine) SetValue(v string) {
	e.adapter.SetValue(v)
}

// HandleChange notifies the engine that the checked or indeterminate
// probes may have changed, typically from a native change event.
func (e *Engine) HandleChange() {
	e.transitionCheckState()
}

// HandleAnimationEnd notifies the engine that a transition on the element
// finished. Ignored unless an animation class is armed; otherwise it
// cancels and re-arms the latch timer, whose firing removes the applied
// class and disarms the gate. The latch absorbs duplicate or spurious end
// signals that arrive before the host's own event stream settles.
func (e *Engine) HandleAnimationEnd() {
	if !e.latchArmed {
		return
	}
	if e.latchTimer != nil {
		e.latchTimer.Stop()
	}
	e.latchTimer = scheduler.AfterFunc(e.cfg.AnimEndLatch, func() {
		e.adapter.RemoveClass(e.animClass)
		e.animClass = ""
		e.latchArmed = false
	})
}

// transitionCheckState re-derives the logical state and, when it changed,
// updates the accessibility attribute, the selected class, and the
// animation class. Unchanged state is a complete no-op.
func (e *Engine) transitionCheckState() {
	old := e.state
	next := e.deriveState()
	if next == old {
		return
	}

	e.syncAriaChecked()
	if next == StateUnchecked {
		e.adapter.RemoveClass(e.cfg.ClassSelected)
	} else {
		e.adapter.AddClass(e.cfg.ClassSelected)
	}

	// A class from a previous transition may still be applied if the user
	// re-toggled mid-animation. Cancel its latch and force a layout pass
	// between the removal and the add below, so the host restarts the
	// animation instead of coalescing the two class edits.
	if e.animClass != "" {
		if e.latchTimer != nil {
			e.latchTimer.Stop()
			e.latchTimer = nil
		}
		e.adapter.ForceLayout()
		e.adapter.RemoveClass(e.animClass)
	}

	e.state = next
	e.animClass = e.cfg.TransitionClass(old, next)

	// Animate only when the element can actually be seen. Leaving the
	// latch disarmed here keeps a detached element from holding a timer
	// that would never fire.
	if e.animClass != "" && e.adapter.IsAttached() {
		e.adapter.AddClass(e.animClass)
		e.latchArmed = true
	} else {
		e.latchArmed = false
	}
}

func (e *Engine) deriveState() CheckState {
	return DeriveCheckState(e.adapter.Checked(), e.adapter.Indeterminate())
}

// syncAriaChecked mirrors the mixed state onto the accessibility
// attribute. The binary checked state travels through the native checked
// property instead, so the attribute is removed entirely when the control
// is not indeterminate.
func (e *Engine) syncAriaChecked() {
	if e.adapter.Indeterminate() {
		e.adapter.SetAttribute(e.cfg.AriaCheckedAttr, e.cfg.AriaMixedValue)
	} else {
		e.adapter.RemoveAttribute(e.cfg.AriaCheckedAttr)
	}
}
