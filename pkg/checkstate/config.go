package checkstate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the immutable constants table the engine reads: class names,
// the accessibility attribute, and the latch guard duration. The engine
// consumes these but never defines them, so hosts can restyle a checkbox
// by injecting a different table. Use [DefaultConfig] for the stock names
// and [LoadConfig] to override them from a YAML file.
type Config struct {
	// ClassSelected marks the root element whenever the state is not
	// unchecked.
	ClassSelected string

	// ClassDisabled marks the root element while the control is disabled.
	ClassDisabled string

	// ClassUpgraded marks the root element once the engine has taken over.
	ClassUpgraded string

	// The six directional animation classes, named for the (from, to)
	// state pair they animate.
	AnimUncheckedChecked       string
	AnimUncheckedIndeterminate string
	AnimCheckedUnchecked       string
	AnimCheckedIndeterminate   string
	AnimIndeterminateChecked   string
	AnimIndeterminateUnchecked string

	// AriaCheckedAttr is the accessibility attribute that mirrors the
	// mixed state.
	AriaCheckedAttr string

	// AriaMixedValue is the literal written to AriaCheckedAttr while the
	// control is indeterminate.
	AriaMixedValue string

	// AnimEndLatch is the guard delay between an animation-end signal and
	// removal of the applied animation class.
	AnimEndLatch time.Duration
}

// DefaultConfig returns the stock constants table.
func DefaultConfig() Config {
	return Config{
		ClassSelected: "drift-checkbox--selected",
		ClassDisabled: "drift-checkbox--disabled",
		ClassUpgraded: "drift-checkbox--upgraded",

		AnimUncheckedChecked:       "drift-checkbox--anim-unchecked-checked",
		AnimUncheckedIndeterminate: "drift-checkbox--anim-unchecked-indeterminate",
		AnimCheckedUnchecked:       "drift-checkbox--anim-checked-unchecked",
		AnimCheckedIndeterminate:   "drift-checkbox--anim-checked-indeterminate",
		AnimIndeterminateChecked:   "drift-checkbox--anim-indeterminate-checked",
		AnimIndeterminateUnchecked: "drift-checkbox--anim-indeterminate-unchecked",

		AriaCheckedAttr: "aria-checked",
		AriaMixedValue:  "mixed",

		AnimEndLatch: 400 * time.Millisecond,
	}
}

// TransitionClass returns the animation class for a state change, or the
// empty string when the pair has no animation. Same-state pairs never
// reach the lookup; the engine short-circuits them before selecting a
// class.
func (c Config) TransitionClass(old, next CheckState) string {
	switch old {
	case StateInit:
		// Leaving init looks identical to leaving indeterminate: the mark
		// fades in from nothing. Appearing already unchecked needs no
		// animation at all.
		switch next {
		case StateChecked:
			return c.AnimIndeterminateChecked
		case StateIndeterminate:
			return c.AnimIndeterminateUnchecked
		}
	case StateUnchecked:
		switch next {
		case StateChecked:
			return c.AnimUncheckedChecked
		case StateIndeterminate:
			return c.AnimUncheckedIndeterminate
		}
	case StateChecked:
		switch next {
		case StateUnchecked:
			return c.AnimCheckedUnchecked
		case StateIndeterminate:
			return c.AnimCheckedIndeterminate
		}
	case StateIndeterminate:
		switch next {
		case StateUnchecked:
			return c.AnimIndeterminateUnchecked
		case StateChecked:
			return c.AnimIndeterminateChecked
		}
	}
	return ""
}

// fileConfig is the YAML shape of a constants override. Every field is
// optional; unset fields keep their defaults.
type fileConfig struct {
	SelectedClass string `yaml:"selectedClass,omitempty"`
	DisabledClass string `yaml:"disabledClass,omitempty"`
	UpgradedClass string `yaml:"upgradedClass,omitempty"`

	AnimUncheckedChecked       string `yaml:"animUncheckedChecked,omitempty"`
	AnimUncheckedIndeterminate string `yaml:"animUncheckedIndeterminate,omitempty"`
	AnimCheckedUnchecked       string `yaml:"animCheckedUnchecked,omitempty"`
	AnimCheckedIndeterminate   string `yaml:"animCheckedIndeterminate,omitempty"`
	AnimIndeterminateChecked   string `yaml:"animIndeterminateChecked,omitempty"`
	AnimIndeterminateUnchecked string `yaml:"animIndeterminateUnchecked,omitempty"`

	AriaCheckedAttr string `yaml:"ariaCheckedAttr,omitempty"`
	AriaMixedValue  string `yaml:"ariaMixedValue,omitempty"`

	AnimEndLatchMs int `yaml:"animEndLatchMs,omitempty"`
}

// ConfigFileName is the file LoadConfigOptional looks for.
const ConfigFileName = "checkstate.yaml"

// LoadConfig reads a YAML constants file and merges the set fields over
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	cfg := DefaultConfig()
	cfg.apply(fc)
	return cfg, nil
}

// LoadConfigOptional reads checkstate.yaml from dir if present. A missing
// file yields the defaults.
func LoadConfigOptional(dir string) (Config, error) {
	cfg, err := LoadConfig(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(fc fileConfig) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.ClassSelected, fc.SelectedClass)
	set(&c.ClassDisabled, fc.DisabledClass)
	set(&c.ClassUpgraded, fc.UpgradedClass)
	set(&c.AnimUncheckedChecked, fc.AnimUncheckedChecked)
	set(&c.AnimUncheckedIndeterminate, fc.AnimUncheckedIndeterminate)
	set(&c.AnimCheckedUnchecked, fc.AnimCheckedUnchecked)
	set(&c.AnimCheckedIndeterminate, fc.AnimCheckedIndeterminate)
	set(&c.AnimIndeterminateChecked, fc.AnimIndeterminateChecked)
	set(&c.AnimIndeterminateUnchecked, fc.AnimIndeterminateUnchecked)
	set(&c.AriaCheckedAttr, fc.AriaCheckedAttr)
	set(&c.AriaMixedValue, fc.AriaMixedValue)
	if fc.AnimEndLatchMs > 0 {
		c.AnimEndLatch = time.Duration(fc.AnimEndLatchMs) * time.Millisecond
	}
}
