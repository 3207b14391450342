package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionJump             // W, Up arrow, Space
	ActionMenu             // Escape - leave the level / open menu
	ActionUp               // menu navigation
	ActionDown             // menu navigation
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
	ActionBomb             // E, X - place a bomb

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionMenu:
		return "Menu"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionBomb:
		return "Bomb"
	default:
		return "Unknown"
	}
}

// KeyEvent is a discrete key-down or key-up for one action.
type KeyEvent struct {
	Action Action
	Down   bool
}

// InputState holds the held/not-held state of every action.
// It is updated by key events and read once per simulation tick.
// The zero value has nothing held.
type InputState struct {
	held [actionCount]bool
}

// NewInputState returns an InputState with the given actions held.
func NewInputState(held ...Action) InputState {
	var s InputState
	for _, a := range held {
		s.Press(a)
	}
	return s
}

// Press marks an action as held.
func (s *InputState) Press(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	s.held[a] = true
}

// Release marks an action as not held.
func (s *InputState) Release(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	s.held[a] = false
}

// Apply updates the state from a discrete key event.
func (s *InputState) Apply(ev KeyEvent) {
	if ev.Down {
		s.Press(ev.Action)
	} else {
		s.Release(ev.Action)
	}
}

// Held reports whether the action is currently held.
func (s InputState) Held(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return s.held[a]
}

// Pressed reports whether the action is held now but was not held in prev.
func (s InputState) Pressed(a Action, prev InputState) bool {
	return s.Held(a) && !prev.Held(a)
}

// ReleaseAll clears every held action.
func (s *InputState) ReleaseAll() {
	s.held = [actionCount]bool{}
}

// HeldActions returns the held actions in declaration order.
func (s InputState) HeldActions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if s.held[a] {
			out = append(out, a)
		}
	}
	return out
}
