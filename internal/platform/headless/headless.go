// Package headless drives a kaboom game without a terminal: scripted input
// in, YAML snapshots out. It backs the `kaboom sim` command.
package headless

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/kaboom/internal/core"
	"github.com/vovakirdan/kaboom/internal/games/kaboom/sim"
	"github.com/vovakirdan/kaboom/internal/levels"
	"github.com/vovakirdan/kaboom/internal/registry"
)

// Game is a registry game whose world can be inspected.
type Game interface {
	registry.Game
	World() *sim.World
	Level() levels.Level
}

// Script is the input fed to the game, one InputState per tick.
type Script struct {
	Ticks     int    // ticks to run; the run also ends on game over
	Hold      string // "left", "right" or "" for none
	JumpEvery int    // press jump on every Nth tick; 0 never jumps
	Every     int    // emit a frame every Nth tick; 0 only emits the result
}

// Validate checks the script values.
func (s Script) Validate() error {
	switch s.Hold {
	case "", "left", "right":
	default:
		return fmt.Errorf("headless: hold must be left or right, got %q", s.Hold)
	}
	if s.Ticks < 0 || s.JumpEvery < 0 || s.Every < 0 {
		return fmt.Errorf("headless: ticks, jump-every and every must not be negative")
	}
	return nil
}

// Input returns the input held on the given 1-based tick.
func (s Script) Input(tick int) core.InputState {
	var in core.InputState
	switch s.Hold {
	case "left":
		in.Press(core.ActionMoveLeft)
	case "right":
		in.Press(core.ActionMoveRight)
	}
	if s.JumpEvery > 0 && tick%s.JumpEvery == 0 {
		in.Press(core.ActionJump)
	}
	return in
}

// Frame is one emitted YAML document.
type Frame struct {
	Level string       `yaml:"level"`
	World sim.Snapshot `yaml:"world"`
}

// Result is the final YAML document of a run.
type Result struct {
	Ticks   int    `yaml:"ticks"`
	Level   string `yaml:"level"`
	Score   int    `yaml:"score"`
	Tokens  int    `yaml:"tokens"`
	Victory bool   `yaml:"victory"`
	Digest  string `yaml:"digest"`
}

// Run resets g, plays the script and writes the frames and the result to w
// as a YAML stream.
func Run(g Game, cfg core.RuntimeConfig, s Script, w io.Writer) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()

	g.Reset(cfg)

	var res Result
	for tick := 1; tick <= s.Ticks; tick++ {
		step := g.Step(s.Input(tick))
		res.Ticks = tick

		if s.Every > 0 && tick%s.Every == 0 {
			if err := enc.Encode(Frame{Level: g.Level().ID, World: g.World().Snapshot()}); err != nil {
				return res, fmt.Errorf("headless: encode frame: %w", err)
			}
		}
		if step.State.GameOver {
			break
		}
	}

	state := g.State()
	res.Level = g.Level().ID
	res.Score = state.Score
	res.Tokens = state.Tokens
	res.Victory = state.Victory
	res.Digest = strconv.FormatUint(g.World().Snapshot().Digest(), 16)

	if err := enc.Encode(res); err != nil {
		return res, fmt.Errorf("headless: encode result: %w", err)
	}
	return res, nil
}
