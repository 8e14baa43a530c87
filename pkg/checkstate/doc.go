// Package checkstate implements the headless transition engine behind a
// tri-state checkbox (unchecked, checked, indeterminate).
//
// The package is presentation-agnostic: it never renders anything. The
// engine derives the logical state from two independent probes on the
// host control, computes the directional animation class for each state
// change, and keeps the accessibility attribute synchronized — all by
// issuing commands through an [Adapter] the host supplies.
//
// # Core Components
//
//   - [Engine]: the state machine. Re-derives the logical state on every
//     change signal, toggles the selected class, applies the animation
//     class for the (old, new) pair, and latches its removal against
//     animation-end signals.
//
//   - [Adapter]: the capability surface the host implements — class and
//     attribute mutation, native control probes, forced layout, and the
//     attachment query.
//
//   - [Config]: the injected constants table — class names, the
//     accessibility attribute, and the latch guard duration. Override it
//     from YAML with [LoadConfig].
//
//   - [Scheduler]: the timer source behind the animation-end latch,
//     replaceable for deterministic tests or event-loop marshalling.
//
// # Basic Usage
//
// Bind an engine to a host adapter and forward the host's events:
//
//	engine := checkstate.NewEngine(adapter, checkstate.DefaultConfig())
//	engine.Init()
//
//	// On a native change event:
//	engine.HandleChange()
//
//	// On an animation/transition end event:
//	engine.HandleAnimationEnd()
//
//	// When the widget is torn down:
//	engine.Dispose()
//
// Setting indeterminate is deliberately inert: SetIndeterminate writes the
// probe but leaves the visuals alone until the next HandleChange. This
// mirrors how native controls treat the property and lets callers batch
// probe writes before one visual update.
package checkstate
