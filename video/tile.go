package video

import "github.com/corrinlakeland/dmgcore/bit"

// tileLineAddress resolves the VRAM address of a tile's 2-byte line for the
// given tile index and 0-7 row, honoring the two LCDC-selected addressing
// modes: unsigned from 0x8000, or signed relative to 0x9000.
func tileLineAddress(base uint16, signed bool, tileIndex byte, row int) uint16 {
	var offset int
	if signed {
		offset = int(int8(tileIndex)) * 16
	} else {
		offset = int(tileIndex) * 16
	}
	return uint16(int(base) + offset + row*2)
}

// pixelFromTileLine extracts the 2-bit color index (0-3) of one pixel from a
// tile line's low/high bytes. x is 0-7 with 0 the leftmost pixel, matching
// bit 7 of each byte; flip reverses that.
func pixelFromTileLine(low, high byte, x int, flip bool) byte {
	idx := uint8(7 - x)
	if flip {
		idx = uint8(x)
	}

	var color byte
	if bit.IsSet(idx, low) {
		color |= 1
	}
	if bit.IsSet(idx, high) {
		color |= 2
	}
	return color
}
