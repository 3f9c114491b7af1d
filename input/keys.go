package input

import (
	"fmt"
	"strings"
)

// Key is a logical control, independent of the device that produced it.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyC
	KeyR
	KeyL
	KeyO
	KeyP
	KeySpace
	KeyShift
	KeyF5
	KeyF6
	KeyF8
	keyCount
)

var keyNames = [keyCount]string{
	KeyW:     "w",
	KeyA:     "a",
	KeyS:     "s",
	KeyD:     "d",
	KeyQ:     "q",
	KeyE:     "e",
	KeyC:     "c",
	KeyR:     "r",
	KeyL:     "l",
	KeyO:     "o",
	KeyP:     "p",
	KeySpace: "space",
	KeyShift: "shift",
	KeyF5:    "f5",
	KeyF6:    "f6",
	KeyF8:    "f8",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// ParseKey maps a case-insensitive key name to its Key.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range keyNames {
		if n == name {
			return Key(i), nil
		}
	}
	return 0, fmt.Errorf("input: unknown key %q", name)
}

// Keys is one frame of input: held keys, edges and the cursor delta.
type Keys struct {
	down     [keyCount]bool
	pressed  [keyCount]bool
	released [keyCount]bool

	MouseDX float64
	MouseDY float64
}

func (k Keys) Down(key Key) bool { return key >= 0 && key < keyCount && k.down[key] }

// JustPressed is true only on the first frame a key is held.
func (k Keys) JustPressed(key Key) bool { return key >= 0 && key < keyCount && k.pressed[key] }

// JustReleased is true only on the first frame a key is no longer held.
func (k Keys) JustReleased(key Key) bool { return key >= 0 && key < keyCount && k.released[key] }

// Held lists the keys that are down, in Key order.
func (k Keys) Held() []Key {
	var out []Key
	for i, d := range k.down {
		if d {
			out = append(out, Key(i))
		}
	}
	return out
}

func (k Keys) String() string {
	held := k.Held()
	names := make([]string, len(held))
	for i, key := range held {
		names[i] = key.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

// Tracker derives edge state from successive sets of held keys.
type Tracker struct {
	prev [keyCount]bool
}

// Next builds the frame's Keys given everything currently held.
func (t *Tracker) Next(held ...Key) Keys {
	var k Keys
	for _, key := range held {
		if key >= 0 && key < keyCount {
			k.down[key] = true
		}
	}
	for i := range k.down {
		k.pressed[i] = k.down[i] && !t.prev[i]
		k.released[i] = !k.down[i] && t.prev[i]
	}
	t.prev = k.down
	return k
}

// Reset forgets the previous frame so every held key reads as just pressed.
func (t *Tracker) Reset() { t.prev = [keyCount]bool{} }

// Source produces one Keys per frame.
type Source interface {
	Poll() (Keys, error)
}
