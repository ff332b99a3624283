package dmgcore

import (
	"testing"

	"github.com/corrinlakeland/dmgcore/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshCPU_FourteenInstructionsMatchExpectedState(t *testing.T) {
	c := cpu.New()
	c.PC = 0x0100

	program := []byte{
		0x3E, 0x42, 0x06, 0x10, 0x01, 0x50, 0xC0, 0x02, 0x03, 0x04, 0x05, 0x05,
		0x3E, 0x80, 0x07, 0x3E, 0x0F, 0x06, 0x01, 0x80, 0x00,
	}
	rom := make([]byte, 0x8000) // cartridge type 0x00 (NoMBC) at the zeroed header
	copy(rom[0x0100:], program)

	bus := NewBus()
	require.NoError(t, bus.LoadCartridge(rom))

	for i := 0; i < 14; i++ {
		c.Step(bus)
	}

	assert.Equal(t, byte(0x10), c.A)
	assert.Equal(t, byte(0x01), c.B)
	assert.Equal(t, uint16(0x0115), c.PC)
	assert.True(t, c.FlagH(), "H flag set after the final ADD A,B")
}

func TestEmulator_ResetKeepsCartridgeButClearsRAM(t *testing.T) {
	e := New()
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x00 // NoMBC
	assert.NoError(t, e.LoadCartridge(rom))

	e.bus.store(0xC000, 0x42)
	e.Reset()

	assert.Equal(t, byte(0x00), e.Peek(0xC000), "RAM is cleared on reset")
	assert.NotNil(t, e.bus.mbc, "cartridge survives reset")
}

func TestEmulator_PostBootStateAvoidsBlackScreenWithoutBootROM(t *testing.T) {
	e := New()
	assert.Equal(t, uint16(0x0100), e.PC())
	assert.Equal(t, byte(0x91), e.Peek(0xFF40), "LCDC post-boot default")
}

func TestEmulator_InvalidCartridgeReportsError(t *testing.T) {
	e := New()
	err := e.LoadCartridge([]byte{0x01, 0x02})
	assert.Error(t, err)
}
