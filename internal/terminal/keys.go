package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyline/internal/input/key"
)

var tcellKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:    key.KeyEscape,
	tcell.KeyEnter:     key.KeyEnter,
	tcell.KeyTab:       key.KeyTab,
	tcell.KeyBacktab:   key.KeyTab,
	tcell.KeyBackspace: key.KeyBackspace,
	tcell.KeyDelete:    key.KeyDelete,
	tcell.KeyInsert:    key.KeyInsert,
	tcell.KeyHome:      key.KeyHome,
	tcell.KeyEnd:       key.KeyEnd,
	tcell.KeyPgUp:      key.KeyPageUp,
	tcell.KeyPgDn:      key.KeyPageDown,
	tcell.KeyUp:        key.KeyUp,
	tcell.KeyDown:      key.KeyDown,
	tcell.KeyLeft:      key.KeyLeft,
	tcell.KeyRight:     key.KeyRight,
	tcell.KeyF1:        key.KeyF1,
	tcell.KeyF2:        key.KeyF2,
	tcell.KeyF3:        key.KeyF3,
	tcell.KeyF4:        key.KeyF4,
	tcell.KeyF5:        key.KeyF5,
	tcell.KeyF6:        key.KeyF6,
	tcell.KeyF7:        key.KeyF7,
	tcell.KeyF8:        key.KeyF8,
	tcell.KeyF9:        key.KeyF9,
	tcell.KeyF10:       key.KeyF10,
	tcell.KeyF11:       key.KeyF11,
	tcell.KeyF12:       key.KeyF12,
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

// convertKey maps a tcell key event to a key.Event. Legacy control codes
// for letters become the letter with Ctrl held. DEL is treated as
// Backspace, which is what most terminals send for it.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		return key.NewRuneEvent(e.Rune(), mods), true
	}
	if k == tcell.KeyBackspace2 {
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	}
	if k == tcell.KeyBacktab {
		mods = mods.With(key.ModShift)
	}
	if kk, ok := tcellKeys[k]; ok {
		return key.NewSpecialEvent(kk, mods), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}
