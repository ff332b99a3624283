package video

import (
	"testing"

	"github.com/corrinlakeland/dmgcore/addr"
	"github.com/stretchr/testify/assert"
)

func enable(p *PPU) { p.Write(addr.LCDC, 0x91) }

func TestPPU_ModeTransitionsAtExpectedDotThresholds(t *testing.T) {
	p := NewPPU()
	enable(p)

	assert.Equal(t, ModeOAMSearch, p.mode)

	p.Update(20) // 80 dots
	assert.Equal(t, ModePixelTransfer, p.mode)

	p.Update(43) // +172 dots = 252 cumulative
	assert.Equal(t, ModeHBlank, p.mode)

	p.Update(51) // +204 dots = 456, end of line
	assert.Equal(t, byte(1), p.ly)
	assert.Equal(t, ModeOAMSearch, p.mode)
}

func TestPPU_EntersVBlankAtLine144AndRaisesIRQ(t *testing.T) {
	p := NewPPU()
	enable(p)

	var irq byte
	for line := 0; line < 144; line++ {
		irq |= p.Update(114) // 456 dots = 114 m-cycles
	}

	assert.Equal(t, ModeVBlank, p.mode)
	assert.Equal(t, byte(144), p.ly)
	assert.True(t, p.HasFrame())
	assert.NotEqual(t, byte(0), irq&addr.VBlankInterrupt.Mask())
}

func TestPPU_LYWrapsAfter153BackToOAMSearch(t *testing.T) {
	p := NewPPU()
	enable(p)

	for line := 0; line < 154; line++ {
		p.Update(114)
	}

	assert.Equal(t, byte(0), p.ly)
	assert.Equal(t, ModeOAMSearch, p.mode)
}

func TestPPU_DisabledLCDDoesNothing(t *testing.T) {
	p := NewPPU()
	irq := p.Update(1000)
	assert.Equal(t, byte(0), irq)
	assert.Equal(t, 0, p.dot)
}

func TestPPU_STATWritePreservesModeAndLYCBits(t *testing.T) {
	p := NewPPU()
	p.stat = 0x07
	p.Write(addr.STAT, 0x78)
	assert.Equal(t, byte(0x07|0x78&^0x07), p.stat)
}

func TestPaletteColor_ExtractsTwoBitSlot(t *testing.T) {
	assert.Equal(t, byte(0x00), paletteColor(0xE4, 0))
	assert.Equal(t, byte(0x03), paletteColor(0xE4, 3))
}

func TestPPU_BackgroundRasterizesOpaquePixels(t *testing.T) {
	p := NewPPU()
	enable(p)
	p.Write(addr.BGP, 0xE4)

	// Tile 0 at 0x8000: a fully-opaque (color 3) first row.
	p.Write(0x8000, 0xFF)
	p.Write(0x8001, 0xFF)
	// Tile map entry (0,0) = tile 0 (zero value already default).

	p.renderScanline()

	assert.Equal(t, byte(3), p.fb.Get(0, 0))
}
