package core

import "strings"

// Key is a logical key the game understands, abstracted from the host's
// key names. Browser-style names ("ArrowLeft") and terminal names ("left")
// both resolve to the same Key.
type Key int

const (
	KeyNone  Key = iota // Any key the game ignores
	KeyLeft             // Left arrow and its aliases
	KeyRight            // Right arrow and its aliases
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// keyAliases maps lower-cased host key names to logical keys.
var keyAliases = map[string]Key{
	"left":       KeyLeft,
	"arrowleft":  KeyLeft,
	"a":          KeyLeft,
	"h":          KeyLeft,
	"right":      KeyRight,
	"arrowright": KeyRight,
	"d":          KeyRight,
	"l":          KeyRight,
}

// ParseKey resolves a host key name to a logical key.
// Unknown names resolve to KeyNone.
func ParseKey(name string) Key {
	if k, ok := keyAliases[strings.ToLower(name)]; ok {
		return k
	}
	return KeyNone
}
