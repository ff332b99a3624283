package video

import "github.com/corrinlakeland/dmgcore/bit"

// Sprite is one parsed OAM entry (Y, X, tile, flags), adjusted to the
// sprite's actual on-screen position (the -16/-8 OAM offsets already
// applied).
type Sprite struct {
	Y, X      int
	Tile      byte
	Flags     byte
	OAMIndex  int
}

func (s Sprite) paletteOBP1() bool { return bit.IsSet(4, s.Flags) }
func (s Sprite) flipX() bool       { return bit.IsSet(5, s.Flags) }
func (s Sprite) flipY() bool       { return bit.IsSet(6, s.Flags) }
func (s Sprite) behindBG() bool    { return bit.IsSet(7, s.Flags) }

// ScanLine walks OAM in hardware order (index 0..39) and returns up to 10
// sprites that intersect scanline ly, sorted ascending by X with OAM index
// as the tiebreaker - the PPU draws this list back-to-front so the lowest
// X (and, on ties, the lowest OAM index) is painted last and wins overlap,
// per spec.md §4.4.
func ScanLine(oam *[160]byte, ly, height int) []Sprite {
	var found []Sprite

	for i := 0; i < 40 && len(found) < 10; i++ {
		base := i * 4
		y := int(oam[base]) - 16
		if y > ly || y+height <= ly {
			continue
		}

		s := Sprite{
			Y:        y,
			X:        int(oam[base+1]) - 8,
			Tile:     oam[base+2],
			Flags:    oam[base+3],
			OAMIndex: i,
		}

		// Insertion-sort into found, ascending by X then by OAM index.
		pos := len(found)
		found = append(found, s)
		for pos > 0 && (found[pos-1].X > s.X || (found[pos-1].X == s.X && found[pos-1].OAMIndex > s.OAMIndex)) {
			found[pos] = found[pos-1]
			pos--
		}
		found[pos] = s
	}

	return found
}
