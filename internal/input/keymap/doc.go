// Package keymap maps key presses to named editor actions.
//
// A Keymap holds two tables: named actions (procedures taking no
// arguments) and bindings from a key.Event to an action name. Bindings
// are written as key specifications:
//
//	"Enter"     - plain Enter
//	"Alt+Enter" - Enter with Alt held
//	"<C-a>"     - Ctrl+A in angle bracket notation
//	"Ctrl+Left" - Ctrl with the left arrow
//
// Lookups normalize the pressed key first, so a binding for "Ctrl+A"
// matches Ctrl+a and Ctrl+Shift+A alike.
//
// While an action runs the keymap is locked: Bind, Define and Unbind fail
// with ErrKeymapLocked, so an action cannot change the table that is
// dispatching it.
//
// # Usage
//
//	km := keymap.New()
//	km.Define(keymap.ActionSubmit, submit)
//	km.Bind("Enter", keymap.ActionSubmit)
//
//	if name, ok := km.Run(ev); ok {
//	    // name ran
//	}
package keymap
