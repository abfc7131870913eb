// Package editor runs the key loop of an interactive prompt.
//
// An Editor owns a field.Field and a keymap.Keymap and draws onto a
// terminal.Terminal. Each ReadLine call is one capture cycle: the field is
// cleared, the prompt is written, and keys are read until the submit or
// discard action fires. Bound keys run their action; printable unbound
// runes are inserted at the cursor; every other key is ignored. After
// each change the field is repainted in place and the terminal cursor is
// moved to the logical cursor.
//
// The editor is single threaded. Actions run with the keymap locked, so
// bindings can only be changed between capture cycles.
package editor
