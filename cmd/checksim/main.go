// Command checksim drives the checkstate engine against an in-memory dom
// element and prints the class and attribute timeline for a scripted
// interaction sequence.
//
// Usage:
//
//	checksim [flags] [step,step,...]
//
// Steps:
//
//	check / uncheck          write the checked probe and transition
//	indeterminate / determinate  write the indeterminate probe (inert)
//	click                    simulate user interaction on the control
//	change                   deliver a native change signal
//	animend                  deliver an animation-end signal
//	latch                    let the armed latch window elapse
//	disable / enable         toggle the disabled state
//
// Flags:
//
//	-config dir    read class-name overrides from dir/checkstate.yaml
//	-detached      simulate an element outside the rendered tree
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-drift/checkstate/pkg/checkstate"
	"github.com/go-drift/checkstate/pkg/dom"
)

const defaultScript = "click,animend,latch,indeterminate,change,animend,latch,click"

func main() {
	configDir := flag.String("config", "", "directory containing an optional checkstate.yaml")
	detached := flag.Bool("detached", false, "simulate an element outside the rendered tree")
	flag.Parse()

	cfg := checkstate.DefaultConfig()
	if *configDir != "" {
		var err error
		cfg, err = checkstate.LoadConfigOptional(*configDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "checksim: %v\n", err)
			os.Exit(1)
		}
	}

	script := defaultScript
	if flag.NArg() > 0 {
		script = strings.Join(flag.Args(), ",")
	}

	sched := &stepScheduler{}
	checkstate.SetScheduler(sched)

	el := dom.NewElement()
	if !*detached {
		el.Attach()
	}

	engine := checkstate.NewEngine(el, cfg)
	defer engine.Dispose()
	el.OnChange(engine.HandleChange)
	engine.Init()

	report("init", engine, el)
	for _, step := range strings.Split(script, ",") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		if err := apply(step, engine, el, sched); err != nil {
			fmt.Fprintf(os.Stderr, "checksim: %v\n", err)
			os.Exit(1)
		}
		report(step, engine, el)
	}
}

func apply(step string, engine *checkstate.Engine, el *dom.Element, sched *stepScheduler) error {
	switch step {
	case "check":
		engine.SetChecked(true)
	case "uncheck":
		engine.SetChecked(false)
	case "indeterminate":
		engine.SetIndeterminate(true)
	case "determinate":
		engine.SetIndeterminate(false)
	case "click":
		el.Click()
	case "change":
		engine.HandleChange()
	case "animend":
		engine.HandleAnimationEnd()
	case "latch":
		sched.fire()
	case "disable":
		engine.SetDisabled(true)
	case "enable":
		engine.SetDisabled(false)
	default:
		return fmt.Errorf("unknown step %q", step)
	}
	return nil
}

func report(step string, engine *checkstate.Engine, el *dom.Element) {
	fmt.Printf("%-13s  state=%-13s  %s\n", step, engine.State(), el)
}

// stepScheduler queues latch callbacks and fires them only on the latch
// step, keeping the simulation deterministic regardless of wall time.
type stepScheduler struct {
	pending []*stepTimer
}

type stepTimer struct {
	fn      func()
	stopped bool
}

func (t *stepTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (s *stepScheduler) AfterFunc(_ time.Duration, fn func()) checkstate.TimerHandle {
	t := &stepTimer{fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// fire runs every armed callback, draining the queue.
func (s *stepScheduler) fire() {
	pending := s.pending
	s.pending = nil
	for _, t := range pending {
		if !t.stopped {
			t.stopped = true
			t.fn()
		}
	}
}
