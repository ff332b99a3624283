package memory

import "github.com/corrinlakeland/dmgcore/addr"

// Button identifies one of the eight physical Game Boy inputs.
type Button uint8

const (
	ButtonRight Button = iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

// IsDirection reports whether this button belongs to the d-pad nibble
// rather than the face-button nibble.
func (b Button) IsDirection() bool {
	return b <= ButtonDown
}

func (b Button) bit() uint8 {
	return uint8(b) % 4
}

// Joypad models the P1 register matrix: two 4-bit nibbles (face buttons,
// d-pad), each bit low when the corresponding input is held, gated by a
// 2-bit select mask, with edge detection against the previous poll to
// synthesize the Joypad interrupt.
type Joypad struct {
	buttons    byte // bits 0-3: A, B, Select, Start; 0 = pressed
	directions byte // bits 0-3: Right, Left, Up, Down; 0 = pressed

	selectButtons    bool
	selectDirections bool

	prevButtons    byte
	prevDirections byte
}

// NewJoypad returns a Joypad with nothing pressed and no lines selected.
func NewJoypad() *Joypad {
	return &Joypad{
		buttons:        0x0F,
		directions:     0x0F,
		prevButtons:    0x0F,
		prevDirections: 0x0F,
	}
}

// Reset restores the joypad to its power-on state.
func (j *Joypad) Reset() {
	*j = *NewJoypad()
}

// Read returns the current P1 register value: bits 6-7 always 1, bits 4-5
// reflect the select lines, and bits 0-3 reflect whichever nibble(s) are
// selected (ANDed together if both are selected, all 1s if neither is).
func (j *Joypad) Read() byte {
	result := byte(0xC0)
	if !j.selectDirections {
		result |= 0x10
	}
	if !j.selectButtons {
		result |= 0x20
	}

	low := byte(0x0F)
	if j.selectButtons {
		low &= j.buttons
	}
	if j.selectDirections {
		low &= j.directions
	}
	result |= low
	return result
}

// Write updates the select lines (bits 4-5 are the only writable bits).
func (j *Joypad) Write(value byte) {
	j.selectDirections = value&0x10 == 0
	j.selectButtons = value&0x20 == 0
}

// SetButton updates the held/released state of a single button.
func (j *Joypad) SetButton(b Button, pressed bool) {
	if b.IsDirection() {
		j.directions = bit(j.directions, b.bit(), !pressed)
		return
	}
	j.buttons = bit(j.buttons, b.bit(), !pressed)
}

func bit(value byte, index uint8, set bool) byte {
	if set {
		return value | (1 << index)
	}
	return value &^ (1 << index)
}

// PollInterrupt detects a falling edge (released -> pressed) on whichever
// nibble is currently selected since the previous poll, and returns an
// IF-style mask with the Joypad interrupt bit set if one occurred. Called
// once per bus tick, per spec.
func (j *Joypad) PollInterrupt() byte {
	var mask byte

	if j.selectButtons && j.prevButtons&^j.buttons != 0 {
		mask = addr.JoypadInterrupt.Mask()
	}
	if j.selectDirections && j.prevDirections&^j.directions != 0 {
		mask = addr.JoypadInterrupt.Mask()
	}

	j.prevButtons = j.buttons
	j.prevDirections = j.directions

	return mask
}
