package keymap

// Action names of the line editor.
const (
	ActionSubmit         = "line.submit"
	ActionNewline        = "line.newline"
	ActionComplete       = "line.complete"
	ActionDiscard        = "line.discard"
	ActionMoveLeft       = "cursor.moveLeft"
	ActionMoveRight      = "cursor.moveRight"
	ActionWordBackward   = "cursor.wordBackward"
	ActionWordForward    = "cursor.wordForward"
	ActionLineStart      = "cursor.moveLineStart"
	ActionLineEnd        = "cursor.moveLineEnd"
	ActionDeleteBackward = "edit.deleteBackward"
	ActionDeleteForward  = "edit.deleteForward"
	ActionHistoryPrev    = "history.previous"
	ActionHistoryNext    = "history.next"
	ActionRepaint        = "view.repaint"
)

// DefaultBindings returns the standard line editor bindings.
func DefaultBindings() []Binding {
	return []Binding{
		{Keys: "Enter", Action: ActionSubmit, Description: "Submit the line"},
		{Keys: "Alt+Enter", Action: ActionNewline, Description: "Insert a line break"},
		{Keys: "Shift+Enter", Action: ActionNewline, Description: "Insert a line break"},
		{Keys: "Tab", Action: ActionComplete, Description: "Complete the command or argument"},
		{Keys: "Ctrl+C", Action: ActionDiscard, Description: "Discard the line"},

		{Keys: "Left", Action: ActionMoveLeft, Description: "Move left"},
		{Keys: "Right", Action: ActionMoveRight, Description: "Move right"},
		{Keys: "Ctrl+Left", Action: ActionWordBackward, Description: "Move to previous word"},
		{Keys: "Ctrl+Right", Action: ActionWordForward, Description: "Move to next word"},
		{Keys: "Home", Action: ActionLineStart, Description: "Move to start"},
		{Keys: "Ctrl+A", Action: ActionLineStart, Description: "Move to start"},
		{Keys: "End", Action: ActionLineEnd, Description: "Move to end"},
		{Keys: "Ctrl+E", Action: ActionLineEnd, Description: "Move to end"},

		{Keys: "Backspace", Action: ActionDeleteBackward, Description: "Delete before cursor"},
		{Keys: "Delete", Action: ActionDeleteForward, Description: "Delete after cursor"},

		{Keys: "Up", Action: ActionHistoryPrev, Description: "Recall previous line"},
		{Keys: "Down", Action: ActionHistoryNext, Description: "Recall next line"},

		{Keys: "Ctrl+L", Action: ActionRepaint, Description: "Repaint the line"},
	}
}

// ActionNames returns every action name the default table uses.
func ActionNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, b := range DefaultBindings() {
		if !seen[b.Action] {
			seen[b.Action] = true
			names = append(names, b.Action)
		}
	}
	return names
}

// IsAction reports whether name is a known action name.
func IsAction(name string) bool {
	for _, b := range DefaultBindings() {
		if b.Action == name {
			return true
		}
	}
	return false
}
