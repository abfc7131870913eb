package editor

import "github.com/dshills/keyline/internal/input/keymap"

func (e *Editor) defineActions() {
	f := e.field
	actions := map[string]keymap.Action{
		keymap.ActionSubmit:         e.Submit,
		keymap.ActionDiscard:        e.Discard,
		keymap.ActionNewline:        func() { f.Insert("\n") },
		keymap.ActionComplete:       e.Complete,
		keymap.ActionMoveLeft:       f.Left,
		keymap.ActionMoveRight:      f.Right,
		keymap.ActionWordBackward:   f.WordBackward,
		keymap.ActionWordForward:    f.WordForward,
		keymap.ActionLineStart:      f.Home,
		keymap.ActionLineEnd:        f.End,
		keymap.ActionDeleteBackward: func() { f.DeleteBackward() },
		keymap.ActionDeleteForward:  func() { f.DeleteForward() },
		keymap.ActionHistoryPrev:    func() { e.recall(e.history.Previous()) },
		keymap.ActionHistoryNext:    func() { e.recall(e.history.Next()) },
		// The key loop repaints after every action.
		keymap.ActionRepaint: func() {},
	}
	for name, fn := range actions {
		if err := e.keymap.Define(name, fn); err != nil {
			panic(err)
		}
	}
}
