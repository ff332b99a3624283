package memory

import (
	"testing"

	"github.com/corrinlakeland/dmgcore/addr"
	"github.com/stretchr/testify/assert"
)

func TestJoypad_ReadNoSelection(t *testing.T) {
	j := NewJoypad()
	assert.Equal(t, byte(0xFF), j.Read(), "bits 6-7 always 1, select bits 4-5 high (unselected), low nibble 1 (released) with nothing selected")
}

func TestJoypad_SelectButtons(t *testing.T) {
	j := NewJoypad()
	j.Write(0x10) // select buttons (bit5=0), bit4=1 leaves directions deselected
	j.SetButton(ButtonA, true)

	assert.Equal(t, byte(0xDE), j.Read(), "A pressed (bit0=0) visible once buttons are selected")
}

func TestJoypad_FallingEdgeRequestsInterruptOnlyWhenSelected(t *testing.T) {
	j := NewJoypad()
	j.Write(0x20) // select directions only

	j.SetButton(ButtonA, true) // buttons not selected: no edge reported
	assert.Equal(t, byte(0), j.PollInterrupt())

	j.SetButton(ButtonUp, true) // directions selected: edge reported
	assert.Equal(t, addr.JoypadInterrupt.Mask(), j.PollInterrupt())

	assert.Equal(t, byte(0), j.PollInterrupt(), "edge only reported once")
}

func TestJoypad_ReleaseIsNotAFallingEdge(t *testing.T) {
	j := NewJoypad()
	j.Write(0x20)
	j.SetButton(ButtonUp, true)
	j.PollInterrupt()

	j.SetButton(ButtonUp, false)
	assert.Equal(t, byte(0), j.PollInterrupt())
}
