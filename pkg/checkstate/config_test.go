package checkstate_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/checkstate/pkg/checkstate"
)

func TestTransitionClassTable(t *testing.T) {
	cfg := checkstate.DefaultConfig()

	cases := []struct {
		old  checkstate.CheckState
		next checkstate.CheckState
		want string
	}{
		// From init, appearing unchecked needs no animation; appearing
		// checked or indeterminate reuses the indeterminate-prefixed
		// classes.
		{checkstate.StateInit, checkstate.StateUnchecked, ""},
		{checkstate.StateInit, checkstate.StateChecked, cfg.AnimIndeterminateChecked},
		{checkstate.StateInit, checkstate.StateIndeterminate, cfg.AnimIndeterminateUnchecked},

		{checkstate.StateUnchecked, checkstate.StateChecked, cfg.AnimUncheckedChecked},
		{checkstate.StateUnchecked, checkstate.StateIndeterminate, cfg.AnimUncheckedIndeterminate},

		{checkstate.StateChecked, checkstate.StateUnchecked, cfg.AnimCheckedUnchecked},
		{checkstate.StateChecked, checkstate.StateIndeterminate, cfg.AnimCheckedIndeterminate},

		{checkstate.StateIndeterminate, checkstate.StateUnchecked, cfg.AnimIndeterminateUnchecked},
		{checkstate.StateIndeterminate, checkstate.StateChecked, cfg.AnimIndeterminateChecked},
	}

	for _, tc := range cases {
		got := cfg.TransitionClass(tc.old, tc.next)
		if got != tc.want {
			t.Errorf("TransitionClass(%v, %v) = %q, want %q", tc.old, tc.next, got, tc.want)
		}
	}
}

func TestTransitionClassSameState(t *testing.T) {
	cfg := checkstate.DefaultConfig()
	states := []checkstate.CheckState{
		checkstate.StateUnchecked,
		checkstate.StateChecked,
		checkstate.StateIndeterminate,
	}
	for _, s := range states {
		if got := cfg.TransitionClass(s, s); got != "" {
			t.Errorf("TransitionClass(%v, %v) = %q, want empty", s, s, got)
		}
	}
}

func TestDefaultConfigAnimationClassesDistinct(t *testing.T) {
	cfg := checkstate.DefaultConfig()
	classes := []string{
		cfg.AnimUncheckedChecked,
		cfg.AnimUncheckedIndeterminate,
		cfg.AnimCheckedUnchecked,
		cfg.AnimCheckedIndeterminate,
		cfg.AnimIndeterminateChecked,
		cfg.AnimIndeterminateUnchecked,
	}
	seen := make(map[string]bool)
	for _, class := range classes {
		if class == "" {
			t.Fatal("default config has an empty animation class")
		}
		if seen[class] {
			t.Fatalf("default config reuses animation class %q", class)
		}
		seen[class] = true
	}
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, checkstate.ConfigFileName)
	content := `
selectedClass: app-check--on
animUncheckedChecked: app-check--tick
animEndLatchMs: 250
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := checkstate.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.ClassSelected != "app-check--on" {
		t.Errorf("ClassSelected = %q, want override", cfg.ClassSelected)
	}
	if cfg.AnimUncheckedChecked != "app-check--tick" {
		t.Errorf("AnimUncheckedChecked = %q, want override", cfg.AnimUncheckedChecked)
	}
	if cfg.AnimEndLatch != 250*time.Millisecond {
		t.Errorf("AnimEndLatch = %v, want 250ms", cfg.AnimEndLatch)
	}

	// Unset fields keep their defaults.
	def := checkstate.DefaultConfig()
	if cfg.ClassUpgraded != def.ClassUpgraded {
		t.Errorf("ClassUpgraded = %q, want default %q", cfg.ClassUpgraded, def.ClassUpgraded)
	}
	if cfg.AriaMixedValue != def.AriaMixedValue {
		t.Errorf("AriaMixedValue = %q, want default %q", cfg.AriaMixedValue, def.AriaMixedValue)
	}
}

func TestLoadConfigOptionalMissingFile(t *testing.T) {
	cfg, err := checkstate.LoadConfigOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfigOptional failed: %v", err)
	}
	if cfg != checkstate.DefaultConfig() {
		t.Error("expected defaults when checkstate.yaml is absent")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, checkstate.ConfigFileName)
	if err := os.WriteFile(path, []byte("selectedClass: [unterminated"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := checkstate.LoadConfig(path); err == nil {
		t.Error("expected a parse error for malformed YAML")
	}
}
