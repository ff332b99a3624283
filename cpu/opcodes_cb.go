package cpu

// registerCBOpcodes builds the entire CB-prefixed table programmatically:
// it is fully regular across the 8 register operands (B,C,D,E,H,L,(HL),A)
// and, for rotates/shifts/swap, across 8 operation kinds, and for
// BIT/RES/SET, across the 8 bit positions. Unlike the accumulator-only
// 0x07/0x0F/0x17/0x1F forms, every CB rotate/shift sets Z from the result.
func registerCBOpcodes() {
	type rotateKind struct {
		apply func(c *CPU, value byte) (result byte, carry bool)
	}
	kinds := []rotateKind{
		{func(c *CPU, v byte) (byte, bool) { return rotateLeft(v, false, false) }},
		{func(c *CPU, v byte) (byte, bool) { return rotateRight(v, false, false) }},
		{func(c *CPU, v byte) (byte, bool) { return rotateLeft(v, true, c.FlagC()) }},
		{func(c *CPU, v byte) (byte, bool) { return rotateRight(v, true, c.FlagC()) }},
		{func(c *CPU, v byte) (byte, bool) { return shiftLeftArithmetic(v) }},
		{func(c *CPU, v byte) (byte, bool) { return shiftRightArithmetic(v) }},
		{func(c *CPU, v byte) (byte, bool) { return swapNibbles(v), false }},
		{func(c *CPU, v byte) (byte, bool) { return shiftRightLogical(v) }},
	}

	for k := 0; k < 8; k++ {
		apply := kinds[k].apply
		isSwap := k == 6
		for reg := byte(0); reg < 8; reg++ {
			opcode := byte(k)<<3 | reg
			r := reg
			cbHandlers[opcode] = func(c *CPU, bus Bus) {
				value := c.readReg8(bus, r)
				result, carry := apply(c, value)
				c.writeReg8(bus, r, result)
				if isSwap {
					c.SetFlags(result == 0, false, false, false)
				} else {
					c.SetFlags(result == 0, false, false, carry)
				}
			}
		}
	}

	for bitIdx := byte(0); bitIdx < 8; bitIdx++ {
		idx := bitIdx
		for reg := byte(0); reg < 8; reg++ {
			opcode := 0x40 | idx<<3 | reg
			r := reg
			cbHandlers[opcode] = func(c *CPU, bus Bus) {
				value := c.readReg8(bus, r)
				c.SetFlagZ(value&(1<<idx) == 0)
				c.SetFlagN(false)
				c.SetFlagH(true)
			}
		}
	}

	for bitIdx := byte(0); bitIdx < 8; bitIdx++ {
		idx := bitIdx
		for reg := byte(0); reg < 8; reg++ {
			opcode := 0x80 | idx<<3 | reg
			r := reg
			cbHandlers[opcode] = func(c *CPU, bus Bus) {
				c.writeReg8(bus, r, c.readReg8(bus, r)&^(1<<idx))
			}
		}
	}

	for bitIdx := byte(0); bitIdx < 8; bitIdx++ {
		idx := bitIdx
		for reg := byte(0); reg < 8; reg++ {
			opcode := 0xC0 | idx<<3 | reg
			r := reg
			cbHandlers[opcode] = func(c *CPU, bus Bus) {
				c.writeReg8(bus, r, c.readReg8(bus, r)|(1<<idx))
			}
		}
	}
}
