package cpu

// registerLoadOpcodes wires the load-group opcodes: 8-bit r/r' (including
// (HL) on either side), r/imm8, the A/(r16) family, LDH variants, and the
// 16-bit loads.
func registerLoadOpcodes() {
	// LD r,r' spans 0x40-0x7F; 0x76 is HALT, not LD (HL),(HL).
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dst := byte((opcode >> 3) & 0x07)
		src := byte(opcode & 0x07)
		baseHandlers[opcode] = func(c *CPU, bus Bus) {
			c.writeReg8(bus, dst, c.readReg8(bus, src))
		}
	}
	baseHandlers[0x76] = func(c *CPU, bus Bus) { c.Halted = true }

	// LD r,d8: B,D,H,(HL) at 0x06/0x16/0x26/0x36; C,E,L,A at 0x0E/0x1E/0x2E/0x3E.
	ldImm8 := []struct {
		opcode byte
		reg    byte
	}{
		{0x06, 0}, {0x0E, 1}, {0x16, 2}, {0x1E, 3},
		{0x26, 4}, {0x2E, 5}, {0x36, regHLIndirect}, {0x3E, 7},
	}
	for _, e := range ldImm8 {
		reg := e.reg
		baseHandlers[e.opcode] = func(c *CPU, bus Bus) {
			c.writeReg8(bus, reg, c.fetch8(bus))
		}
	}

	baseHandlers[0x01] = func(c *CPU, bus Bus) { c.SetBC(c.fetch16(bus)) }
	baseHandlers[0x11] = func(c *CPU, bus Bus) { c.SetDE(c.fetch16(bus)) }
	baseHandlers[0x21] = func(c *CPU, bus Bus) { c.SetHL(c.fetch16(bus)) }
	baseHandlers[0x31] = func(c *CPU, bus Bus) { c.SP = c.fetch16(bus) }

	baseHandlers[0x02] = func(c *CPU, bus Bus) { bus.Write(c.BC(), c.A) }
	baseHandlers[0x12] = func(c *CPU, bus Bus) { bus.Write(c.DE(), c.A) }
	baseHandlers[0x0A] = func(c *CPU, bus Bus) { c.A = bus.Read(c.BC()) }
	baseHandlers[0x1A] = func(c *CPU, bus Bus) { c.A = bus.Read(c.DE()) }

	baseHandlers[0x22] = func(c *CPU, bus Bus) {
		bus.Write(c.HL(), c.A)
		c.SetHL(c.HL() + 1)
	}
	baseHandlers[0x32] = func(c *CPU, bus Bus) {
		bus.Write(c.HL(), c.A)
		c.SetHL(c.HL() - 1)
	}
	baseHandlers[0x2A] = func(c *CPU, bus Bus) {
		c.A = bus.Read(c.HL())
		c.SetHL(c.HL() + 1)
	}
	baseHandlers[0x3A] = func(c *CPU, bus Bus) {
		c.A = bus.Read(c.HL())
		c.SetHL(c.HL() - 1)
	}

	baseHandlers[0x08] = func(c *CPU, bus Bus) {
		addr16 := c.fetch16(bus)
		c.writeU16(bus, addr16, c.SP)
	}

	baseHandlers[0xE0] = func(c *CPU, bus Bus) {
		offset := c.fetch8(bus)
		bus.Write(0xFF00+uint16(offset), c.A)
	}
	baseHandlers[0xF0] = func(c *CPU, bus Bus) {
		offset := c.fetch8(bus)
		c.A = bus.Read(0xFF00 + uint16(offset))
	}
	baseHandlers[0xE2] = func(c *CPU, bus Bus) { bus.Write(0xFF00+uint16(c.C), c.A) }
	baseHandlers[0xF2] = func(c *CPU, bus Bus) { c.A = bus.Read(0xFF00 + uint16(c.C)) }

	baseHandlers[0xEA] = func(c *CPU, bus Bus) { bus.Write(c.fetch16(bus), c.A) }
	baseHandlers[0xFA] = func(c *CPU, bus Bus) { c.A = bus.Read(c.fetch16(bus)) }

	baseHandlers[0xF9] = func(c *CPU, bus Bus) {
		bus.Tick()
		c.SP = c.HL()
	}
	baseHandlers[0xF8] = func(c *CPU, bus Bus) {
		offset := int8(c.fetch8(bus))
		bus.Tick()
		c.SetHL(c.addSPSigned(offset))
	}
}

// registerALUOpcodes wires the 8-bit ALU-on-accumulator group (0x80-0xBF,
// regular across all 8 register operands) plus the imm8 forms (0xC6 etc)
// and INC/DEC r (including (HL)).
func registerALUOpcodes() {
	type aluOp struct {
		base byte
		fn   func(c *CPU, value byte)
	}
	ops := []aluOp{
		{0x80, func(c *CPU, v byte) { c.add8(v, false) }},
		{0x88, func(c *CPU, v byte) { c.add8(v, true) }},
		{0x90, func(c *CPU, v byte) { c.sub8(v, false, true) }},
		{0x98, func(c *CPU, v byte) { c.sub8(v, true, true) }},
		{0xA0, func(c *CPU, v byte) { c.and8(v) }},
		{0xA8, func(c *CPU, v byte) { c.xor8(v) }},
		{0xB0, func(c *CPU, v byte) { c.or8(v) }},
		{0xB8, func(c *CPU, v byte) { c.sub8(v, false, false) }},
	}
	for _, op := range ops {
		fn := op.fn
		for reg := byte(0); reg < 8; reg++ {
			opcode := op.base + reg
			r := reg
			baseHandlers[opcode] = func(c *CPU, bus Bus) {
				fn(c, c.readReg8(bus, r))
			}
		}
	}

	imm := []struct {
		opcode byte
		fn     func(c *CPU, v byte)
	}{
		{0xC6, func(c *CPU, v byte) { c.add8(v, false) }},
		{0xCE, func(c *CPU, v byte) { c.add8(v, true) }},
		{0xD6, func(c *CPU, v byte) { c.sub8(v, false, true) }},
		{0xDE, func(c *CPU, v byte) { c.sub8(v, true, true) }},
		{0xE6, func(c *CPU, v byte) { c.and8(v) }},
		{0xEE, func(c *CPU, v byte) { c.xor8(v) }},
		{0xF6, func(c *CPU, v byte) { c.or8(v) }},
		{0xFE, func(c *CPU, v byte) { c.sub8(v, false, false) }},
	}
	for _, e := range imm {
		fn := e.fn
		baseHandlers[e.opcode] = func(c *CPU, bus Bus) { fn(c, c.fetch8(bus)) }
	}

	// INC r / DEC r, including (HL) read-modify-write.
	incRegs := []struct {
		opcode byte
		reg    byte
	}{
		{0x04, 0}, {0x0C, 1}, {0x14, 2}, {0x1C, 3},
		{0x24, 4}, {0x2C, 5}, {0x34, regHLIndirect}, {0x3C, 7},
	}
	for _, e := range incRegs {
		reg := e.reg
		baseHandlers[e.opcode] = func(c *CPU, bus Bus) {
			c.writeReg8(bus, reg, c.inc8(c.readReg8(bus, reg)))
		}
	}
	decRegs := []struct {
		opcode byte
		reg    byte
	}{
		{0x05, 0}, {0x0D, 1}, {0x15, 2}, {0x1D, 3},
		{0x25, 4}, {0x2D, 5}, {0x35, regHLIndirect}, {0x3D, 7},
	}
	for _, e := range decRegs {
		reg := e.reg
		baseHandlers[e.opcode] = func(c *CPU, bus Bus) {
			c.writeReg8(bus, reg, c.dec8(c.readReg8(bus, reg)))
		}
	}
}

// register16BitOpcodes wires INC/DEC r16 (which cost an explicit extra
// tick and touch no flags) and ADD HL,r16/SP.
func register16BitOpcodes() {
	incDec16 := []struct {
		incOpcode, decOpcode byte
		get                  func(c *CPU) uint16
		set                  func(c *CPU, v uint16)
	}{
		{0x03, 0x0B, (*CPU).BC, (*CPU).SetBC},
		{0x13, 0x1B, (*CPU).DE, (*CPU).SetDE},
		{0x23, 0x2B, (*CPU).HL, (*CPU).SetHL},
	}
	for _, e := range incDec16 {
		get, set := e.get, e.set
		baseHandlers[e.incOpcode] = func(c *CPU, bus Bus) {
			bus.Tick()
			set(c, get(c)+1)
		}
		baseHandlers[e.decOpcode] = func(c *CPU, bus Bus) {
			bus.Tick()
			set(c, get(c)-1)
		}
	}
	baseHandlers[0x33] = func(c *CPU, bus Bus) { bus.Tick(); c.SP++ }
	baseHandlers[0x3B] = func(c *CPU, bus Bus) { bus.Tick(); c.SP-- }

	baseHandlers[0x09] = func(c *CPU, bus Bus) { bus.Tick(); c.addHL16(c.BC()) }
	baseHandlers[0x19] = func(c *CPU, bus Bus) { bus.Tick(); c.addHL16(c.DE()) }
	baseHandlers[0x29] = func(c *CPU, bus Bus) { bus.Tick(); c.addHL16(c.HL()) }
	baseHandlers[0x39] = func(c *CPU, bus Bus) { bus.Tick(); c.addHL16(c.SP) }

	baseHandlers[0xE8] = func(c *CPU, bus Bus) {
		offset := int8(c.fetch8(bus))
		bus.Tick()
		bus.Tick()
		c.SP = c.addSPSigned(offset)
	}
}

// registerRotateShiftOpcodes wires the accumulator-only rotates, which
// always clear Z (unlike their CB-table counterparts), plus DAA/CPL/SCF/CCF.
func registerRotateShiftOpcodes() {
	baseHandlers[0x07] = func(c *CPU, bus Bus) {
		result, carry := rotateLeft(c.A, false, false)
		c.A = result
		c.SetFlags(false, false, false, carry)
	}
	baseHandlers[0x0F] = func(c *CPU, bus Bus) {
		result, carry := rotateRight(c.A, false, false)
		c.A = result
		c.SetFlags(false, false, false, carry)
	}
	baseHandlers[0x17] = func(c *CPU, bus Bus) {
		result, carry := rotateLeft(c.A, true, c.FlagC())
		c.A = result
		c.SetFlags(false, false, false, carry)
	}
	baseHandlers[0x1F] = func(c *CPU, bus Bus) {
		result, carry := rotateRight(c.A, true, c.FlagC())
		c.A = result
		c.SetFlags(false, false, false, carry)
	}

	baseHandlers[0x27] = func(c *CPU, bus Bus) { c.daa() }
	baseHandlers[0x2F] = func(c *CPU, bus Bus) { c.cpl() }
	baseHandlers[0x37] = func(c *CPU, bus Bus) { c.scf() }
	baseHandlers[0x3F] = func(c *CPU, bus Bus) { c.ccf() }
}

// condition maps the two-bit cc field used by JR/JP/CALL/RET to a
// predicate over the current flags.
func condition(cc byte, c *CPU) bool {
	switch cc {
	case 0:
		return !c.FlagZ()
	case 1:
		return c.FlagZ()
	case 2:
		return !c.FlagC()
	default:
		return c.FlagC()
	}
}

func registerControlFlowOpcodes() {
	baseHandlers[0xC3] = func(c *CPU, bus Bus) {
		target := c.fetch16(bus)
		bus.Tick()
		c.PC = target
	}
	baseHandlers[0xE9] = func(c *CPU, bus Bus) { c.PC = c.HL() }
	baseHandlers[0x18] = func(c *CPU, bus Bus) {
		offset := int8(c.fetch8(bus))
		bus.Tick()
		c.PC = uint16(int32(c.PC) + int32(offset))
	}

	jpcc := []byte{0xC2, 0xCA, 0xD2, 0xDA}
	for i, opcode := range jpcc {
		cc := byte(i)
		baseHandlers[opcode] = func(c *CPU, bus Bus) {
			target := c.fetch16(bus)
			if condition(cc, c) {
				bus.Tick()
				c.PC = target
			}
		}
	}

	jrcc := []byte{0x20, 0x28, 0x30, 0x38}
	for i, opcode := range jrcc {
		cc := byte(i)
		baseHandlers[opcode] = func(c *CPU, bus Bus) {
			offset := int8(c.fetch8(bus))
			if condition(cc, c) {
				bus.Tick()
				c.PC = uint16(int32(c.PC) + int32(offset))
			}
		}
	}

	baseHandlers[0xCD] = func(c *CPU, bus Bus) {
		target := c.fetch16(bus)
		bus.Tick()
		c.SP -= 2
		c.writeU16(bus, c.SP, c.PC)
		c.PC = target
	}
	callcc := []byte{0xC4, 0xCC, 0xD4, 0xDC}
	for i, opcode := range callcc {
		cc := byte(i)
		baseHandlers[opcode] = func(c *CPU, bus Bus) {
			target := c.fetch16(bus)
			if condition(cc, c) {
				bus.Tick()
				c.SP -= 2
				c.writeU16(bus, c.SP, c.PC)
				c.PC = target
			}
		}
	}

	baseHandlers[0xC9] = func(c *CPU, bus Bus) {
		c.PC = c.pop16(bus)
		bus.Tick()
	}
	baseHandlers[0xD9] = func(c *CPU, bus Bus) {
		c.PC = c.pop16(bus)
		bus.Tick()
		c.IME = IMEEnabled
	}
	retcc := []byte{0xC0, 0xC8, 0xD0, 0xD8}
	for i, opcode := range retcc {
		cc := byte(i)
		baseHandlers[opcode] = func(c *CPU, bus Bus) {
			bus.Tick()
			if condition(cc, c) {
				c.PC = c.pop16(bus)
				bus.Tick()
			}
		}
	}

	rstVectors := []byte{0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF}
	for i, opcode := range rstVectors {
		target := uint16(i) * 8
		baseHandlers[opcode] = func(c *CPU, bus Bus) {
			bus.Tick()
			c.SP -= 2
			c.writeU16(bus, c.SP, c.PC)
			c.PC = target
		}
	}
}

func registerControlOpcodes() {
	baseHandlers[0x00] = func(c *CPU, bus Bus) {}
	baseHandlers[0x10] = func(c *CPU, bus Bus) { c.PC++ }
	baseHandlers[0xF3] = func(c *CPU, bus Bus) { c.IME = IMEDisabled }
	baseHandlers[0xFB] = func(c *CPU, bus Bus) { c.IME = IMEPending }

	push := []struct {
		opcode byte
		get    func(c *CPU) uint16
	}{
		{0xC5, (*CPU).BC}, {0xD5, (*CPU).DE}, {0xE5, (*CPU).HL}, {0xF5, (*CPU).AF},
	}
	for _, e := range push {
		get := e.get
		baseHandlers[e.opcode] = func(c *CPU, bus Bus) { c.push16(bus, get(c)) }
	}

	pop := []struct {
		opcode byte
		set    func(c *CPU, v uint16)
	}{
		{0xC1, (*CPU).SetBC}, {0xD1, (*CPU).SetDE}, {0xE1, (*CPU).SetHL}, {0xF1, (*CPU).SetAF},
	}
	for _, e := range pop {
		set := e.set
		baseHandlers[e.opcode] = func(c *CPU, bus Bus) { set(c, c.pop16(bus)) }
	}
}
