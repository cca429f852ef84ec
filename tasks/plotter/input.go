package plotter

import (
	"plotter/graph"
	"plotter/hal"
)

// heldActions apply every frame while their key is down.
var heldActions = []struct {
	code   hal.KeyCode
	action graph.Action
}{
	{hal.KeyLeft, graph.PanLeft},
	{hal.KeyRight, graph.PanRight},
	{hal.KeyZ, graph.ZoomIn},
	{hal.KeyX, graph.ZoomOut},
	{hal.KeyUp, graph.RaiseOrigin},
	{hal.KeyDown, graph.LowerOrigin},
}

func (t *Task) drainKeys() error {
	if t.keys == nil {
		return nil
	}
	for {
		select {
		case ev := <-t.keys:
			if err := t.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (t *Task) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		delete(t.held, ev.Code)
		return nil
	}
	if t.mode == modeEntry {
		t.handleEntryKey(ev)
		return nil
	}
	if ev.Code == hal.KeyUnknown {
		return nil
	}

	t.held[ev.Code] = true
	switch ev.Code {
	case hal.KeySpace:
		t.markPointer()
	case hal.KeyC:
		t.mark = graph.Mark{}
	case hal.KeyR:
		t.openEntry()
	case hal.KeyTab:
		t.cycleBuiltin()
	case hal.KeyEscape:
		return ErrQuit
	}
	return nil
}

func (t *Task) applyHeld() {
	for _, h := range heldActions {
		if t.held[h.code] {
			t.ctl.Apply(h.action)
		}
	}
}

// markPointer moves the crosshair; it never touches the sample buffer.
func (t *Task) markPointer() {
	if t.ptr == nil {
		return
	}
	x, y := t.ptr.Position()
	t.mark = graph.MarkAt(x, y)
}
