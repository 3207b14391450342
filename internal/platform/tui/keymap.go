package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kaboom/internal/core"
)

// DefaultHoldWindow is how long a key stays held after its last repeat.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionMoveLeft, false
	case "d", "right":
		return core.ActionMoveRight, false
	case "w", "up", " ":
		return core.ActionJump, false
	case "esc":
		return core.ActionMenu, false
	case "p":
		return core.ActionPause, false
	case "e", "x":
		return core.ActionBomb, false
	case "r":
		return core.ActionRestart, false
	case "b":
		return core.ActionBack, false
	case "enter":
		return core.ActionConfirm, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// HoldTracker turns the key presses a terminal reports into held/released
// transitions. A key is held from its first press until no repeat has
// arrived for the hold window; the release is synthesized then.
// Events are buffered and applied when the tick reads the state, so every
// event dispatched before a tick is visible to that tick.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	pending  []core.KeyEvent
	state    core.InputState
}

// NewHoldTracker creates a tracker. A non-positive window uses
// DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Window returns the hold window.
func (h *HoldTracker) Window() time.Duration {
	return h.window
}

// KeyDown records a press or auto-repeat of the action at now.
func (h *HoldTracker) KeyDown(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if _, held := h.lastSeen[a]; !held {
		h.pending = append(h.pending, core.KeyEvent{Action: a, Down: true})
	}
	h.lastSeen[a] = now
}

// Tick applies the buffered events, synthesizes releases for keys idle
// longer than the window and returns the state for this tick.
// A key first pressed since the previous tick is held for at least this tick.
func (h *HoldTracker) Tick(now time.Time) core.InputState {
	prev := h.state
	for _, ev := range h.pending {
		h.state.Apply(ev)
	}
	h.pending = h.pending[:0]

	for a, last := range h.lastSeen {
		if prev.Held(a) && now.Sub(last) > h.window {
			delete(h.lastSeen, a)
			h.state.Release(a)
		}
	}
	return h.state
}

// ReleaseAll drops every held key and pending event.
func (h *HoldTracker) ReleaseAll() {
	clear(h.lastSeen)
	h.pending = h.pending[:0]
	h.state.ReleaseAll()
}
