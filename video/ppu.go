// Package video implements the DMG PPU: the VRAM/OAM-backed pixel
// processing unit that walks through OAM search, pixel transfer and
// h-blank each scanline, then a ten-line v-blank, rasterizing one
// scanline at a time into a FrameBuffer.
package video

import (
	"github.com/corrinlakeland/dmgcore/addr"
	"github.com/corrinlakeland/dmgcore/bit"
)

// Mode is one of the four PPU states; its value is also the STAT bits 0-1
// encoding, per spec.md §4.4.
type Mode byte

const (
	ModeHBlank      Mode = 0
	ModeVBlank      Mode = 1
	ModeOAMSearch   Mode = 2
	ModePixelTransfer Mode = 3
)

const (
	dotsOAMSearch     = 80
	dotsPixelTransfer = 252 // cumulative: OAMSearch(80) + transfer(172)
	dotsPerLine       = 456
	linesPerFrame     = 154
	visibleLines      = 144
)

// PPU owns VRAM, OAM, and the PPU register file, and drives the mode
// state machine one dot at a time.
type PPU struct {
	vram [8192]byte
	oam  [160]byte

	lcdc, stat       byte
	scy, scx         byte
	ly, lyc          byte
	bgp, obp0, obp1  byte
	wy, wx           byte

	dot         int
	mode        Mode
	windowLine  int
	frameReady  bool

	fb      *FrameBuffer
	bgOpaque [Width]bool
}

// NewPPU returns a PPU with LCD off and all registers zeroed. Post-boot
// register values (LCDC=0x91 and the rest) are not applied here: a boot ROM
// sets them, or the façade's post-boot initialization does.
func NewPPU() *PPU {
	return &PPU{fb: NewFrameBuffer(), mode: ModeOAMSearch}
}

// Reset returns the PPU to its power-on state.
func (p *PPU) Reset() {
	*p = *NewPPU()
}

// FrameBuffer returns the most recently completed frame.
func (p *PPU) FrameBuffer() *FrameBuffer { return p.fb }

// HasFrame reports whether a new frame has completed since the last call
// to ConsumeFrame.
func (p *PPU) HasFrame() bool { return p.frameReady }

// ConsumeFrame clears the frame-ready flag.
func (p *PPU) ConsumeFrame() { p.frameReady = false }

func (p *PPU) lcdEnabled() bool { return bit.IsSet(7, p.lcdc) }

// Update advances the PPU by cycles m-cycles (4 dots each) and returns the
// OR-combined mask of interrupts it wants to raise this call.
func (p *PPU) Update(cycles int) byte {
	if !p.lcdEnabled() {
		return 0
	}

	var irq byte
	for i := 0; i < cycles*4; i++ {
		irq |= p.tickDot()
	}
	return irq
}

func (p *PPU) tickDot() byte {
	var irq byte
	p.dot++

	switch p.mode {
	case ModeOAMSearch:
		if p.dot == dotsOAMSearch {
			p.mode = ModePixelTransfer
		}
	case ModePixelTransfer:
		if p.dot == dotsPixelTransfer {
			p.renderScanline()
			p.mode = ModeHBlank
			if bit.IsSet(3, p.stat) {
				irq |= addr.LCDSTATInterrupt.Mask()
			}
		}
	case ModeHBlank, ModeVBlank:
		// handled at line boundary below
	}

	if p.dot == dotsPerLine {
		p.dot = 0
		p.ly++

		switch {
		case p.ly == visibleLines:
			p.mode = ModeVBlank
			p.frameReady = true
			p.windowLine = 0
			irq |= addr.VBlankInterrupt.Mask()
			if bit.IsSet(4, p.stat) {
				irq |= addr.LCDSTATInterrupt.Mask()
			}
		case p.ly == linesPerFrame:
			p.ly = 0
			p.mode = ModeOAMSearch
			if bit.IsSet(5, p.stat) {
				irq |= addr.LCDSTATInterrupt.Mask()
			}
		case p.mode == ModeVBlank:
			// stay in VBlank, LY keeps climbing toward 153
		default:
			p.mode = ModeOAMSearch
			if bit.IsSet(5, p.stat) {
				irq |= addr.LCDSTATInterrupt.Mask()
			}
		}

		// LYC compare runs once per LY change, against the line's final
		// value (post-wrap when LY just reset to 0).
		irq |= p.compareLYC()
	}

	return irq
}

func (p *PPU) compareLYC() byte {
	if p.ly == p.lyc {
		p.stat = bit.Set(2, p.stat)
		if bit.IsSet(6, p.stat) {
			return addr.LCDSTATInterrupt.Mask()
		}
		return 0
	}
	p.stat = bit.Reset(2, p.stat)
	return 0
}

// Read handles VRAM, OAM and register reads.
func (p *PPU) Read(address uint16) byte {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		return p.vram[address-0x8000]
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		return p.oam[address-addr.OAMStart]
	case address == addr.LCDC:
		return p.lcdc
	case address == addr.STAT:
		return p.stat | 0x80 | byte(p.mode)
	case address == addr.SCY:
		return p.scy
	case address == addr.SCX:
		return p.scx
	case address == addr.LY:
		return p.ly
	case address == addr.LYC:
		return p.lyc
	case address == addr.BGP:
		return p.bgp
	case address == addr.OBP0:
		return p.obp0
	case address == addr.OBP1:
		return p.obp1
	case address == addr.WY:
		return p.wy
	case address == addr.WX:
		return p.wx
	default:
		return 0xFF
	}
}

// Write handles VRAM, OAM and register writes.
func (p *PPU) Write(address uint16, value byte) {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		p.vram[address-0x8000] = value
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		p.oam[address-addr.OAMStart] = value
	case address == addr.LCDC:
		p.writeLCDC(value)
	case address == addr.STAT:
		p.stat = (p.stat & 0x07) | (value &^ 0x07)
	case address == addr.SCY:
		p.scy = value
	case address == addr.SCX:
		p.scx = value
	case address == addr.LY:
		// read-only
	case address == addr.LYC:
		p.lyc = value
	case address == addr.BGP:
		p.bgp = value
	case address == addr.OBP0:
		p.obp0 = value
	case address == addr.OBP1:
		p.obp1 = value
	case address == addr.WY:
		p.wy = value
	case address == addr.WX:
		p.wx = value
	}
}

func (p *PPU) writeLCDC(value byte) {
	wasEnabled := p.lcdEnabled()
	p.lcdc = value

	if wasEnabled && !p.lcdEnabled() {
		p.ly = 0
		p.dot = 0
		p.mode = ModeHBlank
		p.windowLine = 0
	} else if !wasEnabled && p.lcdEnabled() {
		p.mode = ModeOAMSearch
		p.dot = 0
		p.compareLYC()
	}
}

// OAMBytes exposes the raw OAM table for DMA transfers.
func (p *PPU) OAMBytes() *[160]byte { return &p.oam }

func (p *PPU) renderScanline() {
	ly := int(p.ly)
	if ly >= Height {
		return
	}

	for i := range p.bgOpaque {
		p.bgOpaque[i] = false
	}

	p.renderBackground(ly)
	if bit.IsSet(5, p.lcdc) {
		p.renderWindow(ly)
	}
	if bit.IsSet(1, p.lcdc) {
		p.renderSprites(ly)
	}
}

func (p *PPU) renderBackground(ly int) {
	tileMap := addr.TileMap0
	if bit.IsSet(3, p.lcdc) {
		tileMap = addr.TileMap1
	}
	unsigned := bit.IsSet(4, p.lcdc)
	dataBase := addr.TileData2
	if unsigned {
		dataBase = addr.TileData0
	}

	bgEnabled := bit.IsSet(0, p.lcdc)
	y := (ly + int(p.scy)) & 0xFF

	for x := 0; x < Width; x++ {
		if !bgEnabled {
			p.fb.Set(x, ly, paletteColor(p.bgp, 0))
			continue
		}

		sx := (x + int(p.scx)) & 0xFF
		tileCol := sx / 8
		tileRow := y / 8
		tileIndex := p.vram[tileMap+uint16(tileRow*32+tileCol)-0x8000]

		lineAddr := tileLineAddress(dataBase, !unsigned, tileIndex, y%8)
		low := p.vram[lineAddr-0x8000]
		high := p.vram[lineAddr+1-0x8000]

		color := pixelFromTileLine(low, high, sx%8, false)
		if color != 0 {
			p.bgOpaque[x] = true
		}
		p.fb.Set(x, ly, paletteColor(p.bgp, color))
	}
}

func (p *PPU) renderWindow(ly int) {
	wy := int(p.wy)
	wx := int(p.wx) - 7
	if ly < wy || wx >= Width {
		return
	}

	tileMap := addr.TileMap0
	if bit.IsSet(6, p.lcdc) {
		tileMap = addr.TileMap1
	}
	unsigned := bit.IsSet(4, p.lcdc)
	dataBase := addr.TileData2
	if unsigned {
		dataBase = addr.TileData0
	}

	drew := false
	y := p.windowLine
	for x := 0; x < Width; x++ {
		if x < wx {
			continue
		}
		wxPixel := x - wx
		tileCol := wxPixel / 8
		tileRow := y / 8
		tileIndex := p.vram[tileMap+uint16(tileRow*32+tileCol)-0x8000]

		lineAddr := tileLineAddress(dataBase, !unsigned, tileIndex, y%8)
		low := p.vram[lineAddr-0x8000]
		high := p.vram[lineAddr+1-0x8000]

		color := pixelFromTileLine(low, high, wxPixel%8, false)
		p.bgOpaque[x] = color != 0
		p.fb.Set(x, ly, paletteColor(p.bgp, color))
		drew = true
	}

	if drew {
		p.windowLine++
	}
}

func (p *PPU) renderSprites(ly int) {
	height := 8
	if bit.IsSet(2, p.lcdc) {
		height = 16
	}

	sprites := ScanLine(&p.oam, ly, height)

	for i := len(sprites) - 1; i >= 0; i-- {
		s := sprites[i]
		row := ly - s.Y
		if s.flipY() {
			row = height - 1 - row
		}

		tile := s.Tile
		if height == 16 {
			tile &^= 0x01
			if row >= 8 {
				tile |= 0x01
				row -= 8
			}
		}

		lineAddr := tileLineAddress(addr.TileData0, false, tile, row)
		low := p.vram[lineAddr-0x8000]
		high := p.vram[lineAddr+1-0x8000]

		palette := p.obp0
		if s.paletteOBP1() {
			palette = p.obp1
		}

		for col := 0; col < 8; col++ {
			x := s.X + col
			if x < 0 || x >= Width {
				continue
			}
			color := pixelFromTileLine(low, high, col, s.flipX())
			if color == 0 {
				continue
			}
			if s.behindBG() && p.bgOpaque[x] {
				continue
			}
			p.fb.Set(x, ly, paletteColor(palette, color))
		}
	}
}

// paletteColor maps a 2-bit color index through a palette register's four
// 2-bit slots.
func paletteColor(palette byte, index byte) byte {
	return (palette >> (index * 2)) & 0x03
}
