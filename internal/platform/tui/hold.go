package tui

import (
	"time"

	"github.com/vovakirdan/arcade-vanilla/internal/core"
)

// holdKeys lists movement keys in the order releases are reported.
var holdKeys = [...]core.Key{core.KeyLeft, core.KeyRight}

type holdState struct {
	lastSeen time.Time
	repeated bool
}

// keyHold emulates key releases for terminals, which only report presses.
// A key counts as held until no repeat arrives within the window: initial
// after the first press, repeat after an auto-repeat.
type keyHold struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Key]holdState
}

func newKeyHold(initial, repeat time.Duration) *keyHold {
	return &keyHold{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Key]holdState, len(holdKeys)),
	}
}

// Press records a press of k and returns the other keys it released.
func (h *keyHold) Press(k core.Key, now time.Time) []core.Key {
	var released []core.Key
	for _, other := range holdKeys {
		if other == k {
			continue
		}
		if _, ok := h.held[other]; ok {
			delete(h.held, other)
			released = append(released, other)
		}
	}

	if st, ok := h.held[k]; ok {
		st.lastSeen = now
		st.repeated = true
		h.held[k] = st
		return released
	}

	h.held[k] = holdState{lastSeen: now}
	return released
}

// Expire releases every key whose window has passed.
func (h *keyHold) Expire(now time.Time) []core.Key {
	var released []core.Key
	for _, k := range holdKeys {
		st, ok := h.held[k]
		if !ok {
			continue
		}
		window := h.initial
		if st.repeated {
			window = h.repeat
		}
		if now.Sub(st.lastSeen) > window {
			delete(h.held, k)
			released = append(released, k)
		}
	}
	return released
}

// Held reports whether k is currently held.
func (h *keyHold) Held(k core.Key) bool {
	_, ok := h.held[k]
	return ok
}

// Reset releases everything without reporting.
func (h *keyHold) Reset() {
	clear(h.held)
}
