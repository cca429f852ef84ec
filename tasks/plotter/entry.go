package plotter

import "plotter/hal"

// maxEntryLen bounds the expression prompt.
const maxEntryLen = 100

func (t *Task) openEntry() {
	t.mode = modeEntry
	t.entry = t.entry[:0]
	clear(t.held)
}

func (t *Task) handleEntryKey(ev hal.KeyEvent) {
	switch ev.Code {
	case hal.KeyUnknown:
		if ev.Rune >= 32 && ev.Rune <= 126 && len(t.entry) < maxEntryLen {
			t.entry = append(t.entry, ev.Rune)
		}
	case hal.KeyBackspace:
		if len(t.entry) > 0 {
			t.entry = t.entry[:len(t.entry)-1]
		}
	case hal.KeyEnter:
		t.mode = modePlot
		t.setExpression(string(t.entry))
	case hal.KeyEscape:
		t.mode = modePlot
		t.ctl.Invalidate()
	}
}
