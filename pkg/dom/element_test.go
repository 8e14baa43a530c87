package dom_test

import (
	"testing"

	"github.com/go-drift/checkstate/pkg/checkstate"
	"github.com/go-drift/checkstate/pkg/dom"
)

func TestElement_ClassList(t *testing.T) {
	el := dom.NewElement()

	el.AddClass("a")
	el.AddClass("b")
	el.AddClass("a") // duplicate add is a no-op

	if got := el.Classes(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Classes() = %v, want [a b]", got)
	}

	el.RemoveClass("a")
	if el.HasClass("a") {
		t.Error("expected class a removed")
	}
	el.RemoveClass("missing") // removing an absent class is a no-op
	if !el.HasClass("b") {
		t.Error("expected class b retained")
	}
}

func TestElement_Attributes(t *testing.T) {
	el := dom.NewElement()

	el.SetAttribute("aria-checked", "mixed")
	if v, ok := el.Attribute("aria-checked"); !ok || v != "mixed" {
		t.Errorf("Attribute() = %q (set=%v), want mixed", v, ok)
	}

	el.RemoveAttribute("aria-checked")
	if _, ok := el.Attribute("aria-checked"); ok {
		t.Error("expected attribute removed")
	}
}

func TestElement_Attachment(t *testing.T) {
	el := dom.NewElement()
	if el.IsAttached() {
		t.Error("new elements start detached")
	}
	el.Attach()
	if !el.IsAttached() {
		t.Error("expected attached after Attach")
	}
	el.Detach()
	if el.IsAttached() {
		t.Error("expected detached after Detach")
	}
}

func TestElement_ForceLayoutCounts(t *testing.T) {
	el := dom.NewElement()
	el.ForceLayout()
	el.ForceLayout()
	if got := el.LayoutCount(); got != 2 {
		t.Errorf("LayoutCount() = %d, want 2", got)
	}
}

func TestElement_Click(t *testing.T) {
	el := dom.NewElement()
	changes := 0
	el.OnChange(func() { changes++ })

	el.SetIndeterminate(true)
	el.Click()
	if !el.Checked() || el.Indeterminate() {
		t.Error("click must set checked and clear indeterminate")
	}
	if changes != 1 {
		t.Errorf("change callbacks = %d, want 1", changes)
	}

	el.SetDisabled(true)
	el.Click()
	if !el.Checked() || changes != 1 {
		t.Error("disabled elements must ignore clicks")
	}
}

func TestElement_ChangeEventDrivesEngine(t *testing.T) {
	el := dom.NewElement()
	el.Attach()

	engine := checkstate.NewEngine(el, checkstate.DefaultConfig())
	engine.Init()
	defer engine.Dispose()
	el.OnChange(engine.HandleChange)

	el.Click()

	if got := engine.State(); got != checkstate.StateChecked {
		t.Errorf("State() = %v, want checked after click", got)
	}
	if !el.HasClass("drift-checkbox--selected") {
		t.Error("expected selected class after click")
	}
	if !el.HasClass("drift-checkbox--anim-unchecked-checked") {
		t.Error("expected the unchecked-to-checked animation class")
	}
}

func TestElement_String(t *testing.T) {
	el := dom.NewElement()
	el.AddClass("x")
	el.SetAttribute("aria-checked", "mixed")
	el.SetChecked(true)
	el.SetIndeterminate(true)

	want := "class=[x] aria-checked=mixed checked indeterminate"
	if got := el.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
