package dmgcore

import (
	"github.com/corrinlakeland/dmgcore/addr"
	"github.com/corrinlakeland/dmgcore/cpu"
	"github.com/corrinlakeland/dmgcore/memory"
	"github.com/corrinlakeland/dmgcore/video"
)

// Emulator is the façade: it owns exactly one CPU and one Bus, and is the
// sole entry point a host program needs. The CPU borrows the Bus for the
// duration of each Step call; there is no cyclical ownership between them.
type Emulator struct {
	cpu *cpu.CPU
	bus *Bus
}

// New returns an Emulator with no cartridge loaded. Call LoadCartridge
// before stepping.
func New() *Emulator {
	e := &Emulator{cpu: cpu.New(), bus: NewBus()}
	e.applyPostBootState()
	return e
}

// LoadCartridge parses the cartridge header and installs the matching MBC.
// It returns a *memory.ErrInvalidROM if the image is too short or names an
// unsupported cartridge type.
func (e *Emulator) LoadCartridge(romData []byte) error {
	return e.bus.LoadCartridge(romData)
}

// LoadBootROM installs a 256-byte boot image, overlaying 0x0000-0x00FF
// until the game writes to 0xFF50. Without one, Reset re-applies the
// post-boot register/IO defaults directly instead.
func (e *Emulator) LoadBootROM(image []byte) {
	e.bus.LoadBootROM(image)
	e.cpu.Reset()
}

// Reset clears volatile state (RAMs, PPU/Timer/Joypad, CPU registers) and
// re-enables the boot ROM overlay if one was loaded, otherwise re-applies
// the post-boot defaults. It keeps the loaded cartridge.
func (e *Emulator) Reset() {
	e.cpu.Reset()
	e.bus.Reset()
	if !e.bus.bootROMEnabled {
		e.applyPostBootState()
	}
}

// Step advances the machine by exactly one CPU Step call: one interrupt
// service, one halted m-cycle, or one instruction, including every
// peripheral tick that memory traffic performs along the way. It returns
// the number of m-cycles the call advanced, for host frame pacing.
func (e *Emulator) Step() uint8 {
	before := e.bus.Ticks()
	e.cpu.Step(e.bus)
	return uint8(e.bus.Ticks() - before)
}

// SetButton updates one button's held/released state. The host must
// serialize this with Step calls; the core holds no internal locking.
func (e *Emulator) SetButton(b memory.Button, pressed bool) {
	e.bus.joypad.SetButton(b, pressed)
}

// HasFrame reports whether the PPU has completed a frame since the last
// ConsumeFrame call.
func (e *Emulator) HasFrame() bool {
	return e.bus.ppu.HasFrame()
}

// Framebuffer returns the most recently rendered frame. It is stable
// between VBlank entry and the next Step that proceeds past the VBlank
// boundary.
func (e *Emulator) Framebuffer() *video.FrameBuffer {
	return e.bus.ppu.FrameBuffer()
}

// ConsumeFrame clears the frame-ready flag after the host has read the
// framebuffer.
func (e *Emulator) ConsumeFrame() {
	e.bus.ppu.ConsumeFrame()
}

// SerialOutput returns everything the cartridge has published over the
// test-observation serial port so far.
func (e *Emulator) SerialOutput() string {
	return e.bus.serial.Output()
}

// Title returns the cleaned title from the loaded cartridge's header.
func (e *Emulator) Title() string { return e.bus.cartHeader.Title }

// CartridgeType returns the loaded cartridge's header type byte (0x0147).
func (e *Emulator) CartridgeType() byte { return e.bus.cartHeader.CartridgeType }

// Peek inspects one byte of the address space without advancing the
// machine clock, for debuggers and tests.
func (e *Emulator) Peek(address uint16) byte {
	return e.bus.Peek(address)
}

// Ticks returns the running m-cycle count since the last Reset.
func (e *Emulator) Ticks() int {
	return e.bus.Ticks()
}

// PC and SP expose the CPU's program counter and stack pointer for
// debugging and tests.
func (e *Emulator) PC() uint16 { return e.cpu.PC }
func (e *Emulator) SP() uint16 { return e.cpu.SP }

// applyPostBootState pre-initializes registers and the LCDC/timer I/O
// block to their documented post-boot-ROM values, so a cartridge runs
// correctly even when no real boot image has been supplied.
func (e *Emulator) applyPostBootState() {
	e.cpu.SetAF(0x01B0)
	e.cpu.SetBC(0x0013)
	e.cpu.SetDE(0x00D8)
	e.cpu.SetHL(0x014D)
	e.cpu.SP = 0xFFFE
	e.cpu.PC = 0x0100

	e.bus.store(addr.TIMA, 0x00)
	e.bus.store(addr.TMA, 0x00)
	e.bus.store(addr.TAC, 0x00)
	e.bus.store(addr.LCDC, 0x91)
	e.bus.store(addr.STAT, 0x85)
	e.bus.store(addr.SCY, 0x00)
	e.bus.store(addr.SCX, 0x00)
	e.bus.store(addr.LYC, 0x00)
	e.bus.store(addr.BGP, 0xFC)
	e.bus.store(addr.OBP0, 0xFF)
	e.bus.store(addr.OBP1, 0xFF)
	e.bus.store(addr.WY, 0x00)
	e.bus.store(addr.WX, 0x00)
	e.bus.store(addr.IE, 0x00)
	e.bus.bootROMEnabled = false
}
