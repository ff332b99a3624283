// Package dmgcore implements the core of a Game Boy (DMG) system emulator:
// the CPU/bus/PPU/timer/joypad/MBC model described in this repository's
// design document, independent of any host GUI, audio, or file I/O layer.
package dmgcore

import (
	"github.com/corrinlakeland/dmgcore/addr"
	"github.com/corrinlakeland/dmgcore/memory"
	"github.com/corrinlakeland/dmgcore/serial"
	"github.com/corrinlakeland/dmgcore/video"
)

// Bus owns every peripheral and RAM region and implements cpu.Bus. It is
// the only mutable owner of machine state the CPU borrows per Step; there
// is no reference back from Bus to CPU.
type Bus struct {
	mbc        memory.MBC
	cartHeader memory.Header
	ppu        *video.PPU
	timer      *memory.Timer
	joypad     *memory.Joypad
	serial     *serial.Port

	wram [0x2000]byte
	hram [0x7F]byte
	ie   byte
	ifr  byte

	bootROM        [0x100]byte
	bootROMEnabled bool

	ticks int
}

// NewBus returns a Bus with no cartridge and no boot ROM loaded. Without a
// boot ROM (LoadBootROM), the overlay stays disabled and the façade is
// responsible for pre-initializing post-boot register/IO state itself, per
// spec.
func NewBus() *Bus {
	return &Bus{
		ppu:    video.NewPPU(),
		timer:  memory.NewTimer(),
		joypad: memory.NewJoypad(),
		serial: serial.NewPort(),
	}
}

// LoadBootROM installs a 256-byte boot image and enables the overlay at
// 0x0000-0x00FF until 0xFF50 is written. The image is supplied by the host;
// this core does not embed one.
func (b *Bus) LoadBootROM(image []byte) {
	copy(b.bootROM[:], image)
	b.bootROMEnabled = true
}

// LoadCartridge parses the header and constructs the matching MBC. It does
// not reset the rest of the machine.
func (b *Bus) LoadCartridge(romData []byte) error {
	header, err := memory.ParseHeader(romData)
	if err != nil {
		return err
	}
	mbc, err := memory.NewMBC(romData, header)
	if err != nil {
		return err
	}
	b.mbc = mbc
	b.cartHeader = header
	return nil
}

// Reset clears RAMs, PPU/Timer/Joypad, and re-enables the boot ROM overlay
// if one was loaded. It keeps the loaded cartridge, per spec.
func (b *Bus) Reset() {
	mbc := b.mbc
	header := b.cartHeader
	bootROM := b.bootROM
	hadBootROM := b.bootROMEnabled || bootROM != [0x100]byte{}
	*b = Bus{
		ppu:            video.NewPPU(),
		timer:          memory.NewTimer(),
		joypad:         memory.NewJoypad(),
		serial:         serial.NewPort(),
		mbc:            mbc,
		cartHeader:     header,
		bootROM:        bootROM,
		bootROMEnabled: hadBootROM,
	}
}

// Read performs one memory-mapped byte read, ticking the bus once.
func (b *Bus) Read(address uint16) byte {
	value := b.peek(address)
	b.Tick()
	return value
}

// Write performs one memory-mapped byte write, ticking the bus once.
func (b *Bus) Write(address uint16, value byte) {
	b.store(address, value)
	b.Tick()
}

// Tick advances every peripheral by one m-cycle with no associated memory
// access, OR-combining whatever interrupt bits they raise into IF. Every
// Read/Write calls this once; CPU instructions that spend an internal
// cycle with no bus traffic call it directly.
func (b *Bus) Tick() {
	b.ticks++
	var irq byte
	irq |= b.ppu.Update(1)
	irq |= b.timer.Update(1)
	irq |= b.joypad.PollInterrupt()
	b.ifr |= irq
}

// Ticks returns the running m-cycle count, for host frame pacing against
// the 4,194,304 Hz dot clock.
func (b *Bus) Ticks() int { return b.ticks }

// Peek reads without ticking the bus, for the debugger, the CPU's IE/IF
// interrupt poll, and DMA's source reads (none of which should recursively
// advance peripherals).
func (b *Bus) Peek(address uint16) byte {
	return b.peek(address)
}

// peek is the unticked read shared by Peek, Read and runDMA.
func (b *Bus) peek(address uint16) byte {
	switch {
	case address <= 0x00FF && b.bootROMEnabled:
		return b.bootROM[address]
	case address <= 0x7FFF:
		return b.mbcRead(address)
	case address >= 0x8000 && address <= 0x9FFF:
		return b.ppu.Read(address)
	case address >= 0xA000 && address <= 0xBFFF:
		return b.mbcRead(address)
	case address >= 0xC000 && address <= 0xDFFF:
		return b.wram[address-0xC000]
	case address >= 0xE000 && address <= 0xFDFF:
		return b.wram[address-0xE000]
	case address >= 0xFE00 && address <= 0xFE9F:
		return b.ppu.Read(address)
	case address >= 0xFEA0 && address <= 0xFEFF:
		return 0x00
	case address == addr.P1:
		return b.joypad.Read()
	case address == addr.SB || address == addr.SC:
		return b.serial.Read(address)
	case address >= addr.DIV && address <= addr.TAC:
		return b.timer.Read(address)
	case address == addr.IF:
		return b.ifr | 0xE0
	case address >= 0xFF40 && address <= 0xFF4B:
		return b.ppu.Read(address)
	case address == addr.BootROMDisable:
		return 0xFF
	case address >= 0xFF80 && address <= 0xFFFE:
		return b.hram[address-0xFF80]
	case address == addr.IE:
		return b.ie
	default:
		return 0xFF
	}
}

// store writes without ticking the bus, shared by Write and Reset-adjacent
// internal paths.
func (b *Bus) store(address uint16, value byte) {
	switch {
	case address <= 0x7FFF:
		b.mbcWrite(address, value)
	case address >= 0x8000 && address <= 0x9FFF:
		b.ppu.Write(address, value)
	case address >= 0xA000 && address <= 0xBFFF:
		b.mbcWrite(address, value)
	case address >= 0xC000 && address <= 0xDFFF:
		b.wram[address-0xC000] = value
	case address >= 0xE000 && address <= 0xFDFF:
		b.wram[address-0xE000] = value
	case address >= 0xFE00 && address <= 0xFE9F:
		b.ppu.Write(address, value)
	case address >= 0xFEA0 && address <= 0xFEFF:
		// prohibited region; writes are ignored.
	case address == addr.P1:
		b.joypad.Write(value)
	case address == addr.SB || address == addr.SC:
		b.serial.Write(address, value)
	case address >= addr.DIV && address <= addr.TAC:
		b.timer.Write(address, value)
	case address == addr.IF:
		b.ifr = value & 0x1F
	case address == addr.DMA:
		b.runDMA(value)
	case address >= 0xFF40 && address <= 0xFF4B:
		b.ppu.Write(address, value)
	case address == addr.BootROMDisable:
		b.bootROMEnabled = false
	case address >= 0xFF80 && address <= 0xFFFE:
		b.hram[address-0xFF80] = value
	case address == addr.IE:
		b.ie = value
	}
}

func (b *Bus) mbcRead(address uint16) byte {
	if b.mbc == nil {
		return 0xFF
	}
	return b.mbc.Read(address)
}

func (b *Bus) mbcWrite(address uint16, value byte) {
	if b.mbc == nil {
		return
	}
	b.mbc.Write(address, value)
}

// runDMA performs the 160-byte OAM copy from (value << 8), source bytes
// read with peek since DMA's own source reads are not m-cycle ticks that
// should recursively re-enter the peripheral fan-out.
func (b *Bus) runDMA(value byte) {
	source := uint16(value) << 8
	oam := b.ppu.OAMBytes()
	for i := 0; i < len(oam); i++ {
		oam[i] = b.peek(source + uint16(i))
	}
}
