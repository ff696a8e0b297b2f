package breakout

import "github.com/vovakirdan/arcade-vanilla/internal/core"

// IntentKind identifies the input event carried by an IntentEvent.
type IntentKind int

const (
	IntentKeyDown IntentKind = iota
	IntentKeyUp
	IntentPointer
)

// IntentEvent is one queued input update.
type IntentEvent struct {
	Kind       IntentKind
	Key        core.Key // Key events only
	ClientX    float64  // Pointer events only
	OffsetLeft float64  // Pointer events only
}

// InputAdapter turns host input callbacks into queued intent events.
// Callbacks never touch the World; Drain applies the queue at the start
// of a tick so every frame sees a deterministic input order.
type InputAdapter struct {
	queue []IntentEvent
}

// NewInputAdapter creates an adapter with an empty queue.
func NewInputAdapter() *InputAdapter {
	return &InputAdapter{}
}

// OnKeyDown records a key press. Names that do not map to a movement key
// are ignored.
func (a *InputAdapter) OnKeyDown(name string) {
	if k := core.ParseKey(name); k != core.KeyNone {
		a.queue = append(a.queue, IntentEvent{Kind: IntentKeyDown, Key: k})
	}
}

// OnKeyUp records a key release.
func (a *InputAdapter) OnKeyUp(name string) {
	if k := core.ParseKey(name); k != core.KeyNone {
		a.queue = append(a.queue, IntentEvent{Kind: IntentKeyUp, Key: k})
	}
}

// OnPointerMove records a pointer position in host pixels.
func (a *InputAdapter) OnPointerMove(clientX, canvasOffsetLeft float64) {
	a.queue = append(a.queue, IntentEvent{
		Kind:       IntentPointer,
		ClientX:    clientX,
		OffsetLeft: canvasOffsetLeft,
	})
}

// Pending returns the number of queued events.
func (a *InputAdapter) Pending() int {
	return len(a.queue)
}

// Drain applies queued events to w in arrival order and empties the queue.
// It returns the number of events applied.
func (a *InputAdapter) Drain(w *World) int {
	n := len(a.queue)
	for _, ev := range a.queue {
		switch ev.Kind {
		case IntentKeyDown:
			w.setKey(ev.Key, true)
		case IntentKeyUp:
			w.setKey(ev.Key, false)
		case IntentPointer:
			w.pointerTo(ev.ClientX, ev.OffsetLeft)
		}
	}
	a.queue = a.queue[:0]
	return n
}
