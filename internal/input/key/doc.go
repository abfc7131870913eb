// Package key provides the key event model used by the line editor.
//
// A key press is described by three things, mirroring what a console
// reports for a single keystroke:
//
//   - Rune: the character produced by the key, or 0 for keys that do not
//     produce one (arrows, Delete, function keys).
//   - Key: the logical key (Enter, Backspace, Left, ...), or KeyRune when
//     the press is an ordinary character.
//   - Modifiers: the Shift, Ctrl, Alt and Meta flags held during the press.
//
// Event values are comparable and are used directly as map keys by the
// key binding table.
//
// # Key Specifications
//
// Bindings are written as strings and parsed with Parse:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+A", "Alt+Enter", "Ctrl+Left"
//   - Vim-style: "<C-a>", "<A-CR>", "<S-Enter>", "<BS>"
package key
