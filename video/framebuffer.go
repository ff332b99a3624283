package video

// Width and Height are the fixed dimensions of the DMG LCD.
const (
	Width  = 160
	Height = 144
	Size   = Width * Height
)

// FrameBuffer holds one rendered frame as row-major, palette-resolved 2-bit
// pixel indices (values 0-3), exactly as the PPU computed them after
// passing through BGP/OBP0/OBP1. The host maps indices to RGBA.
type FrameBuffer struct {
	pixels [Size]byte
}

// NewFrameBuffer returns a zeroed (all-white-index) framebuffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Pixels returns the raw row-major pixel slice.
func (f *FrameBuffer) Pixels() *[Size]byte {
	return &f.pixels
}

// Set stores a palette index at (x, y).
func (f *FrameBuffer) Set(x, y int, value byte) {
	f.pixels[y*Width+x] = value
}

// Get returns the palette index at (x, y).
func (f *FrameBuffer) Get(x, y int) byte {
	return f.pixels[y*Width+x]
}

// Row returns a slice over one scanline's 160 pixels.
func (f *FrameBuffer) Row(y int) []byte {
	return f.pixels[y*Width : (y+1)*Width]
}
