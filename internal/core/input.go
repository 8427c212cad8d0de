package core

// Action represents a semantic grid action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionPlace         // Space, Enter, A - place the next block
	ActionClear         // C - delete every block
	ActionReload        // R - reload blocks from the store
	ActionTable         // T - toggle the block table
	ActionHelp          // ? - toggle full help
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlace:
		return "Place"
	case ActionClear:
		return "Clear"
	case ActionReload:
		return "Reload"
	case ActionTable:
		return "Table"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Mutates reports whether the action issues a request to the blocks store.
// Only one such request may be outstanding at a time.
func (a Action) Mutates() bool {
	return a == ActionPlace || a == ActionClear || a == ActionReload
}
