package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd8_HalfCarryAndCarry(t *testing.T) {
	c := New()
	c.A = 0x0F
	c.add8(0x01, false)
	assert.Equal(t, byte(0x10), c.A)
	assert.True(t, c.FlagH())
	assert.False(t, c.FlagC())
	assert.False(t, c.FlagZ())
	assert.False(t, c.FlagN())
}

func TestAdd8_CarryOut(t *testing.T) {
	c := New()
	c.A = 0xFF
	c.add8(0x01, false)
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.FlagZ())
	assert.True(t, c.FlagC())
	assert.True(t, c.FlagH())
}

func TestSub8_CPDoesNotWriteBack(t *testing.T) {
	c := New()
	c.A = 0x10
	c.sub8(0x10, false, false)
	assert.Equal(t, byte(0x10), c.A, "CP leaves A untouched")
	assert.True(t, c.FlagZ())
	assert.True(t, c.FlagN())
}

func TestInc8Dec8_DoNotTouchCarry(t *testing.T) {
	c := New()
	c.SetFlagC(true)
	result := c.inc8(0xFF)
	assert.Equal(t, byte(0x00), result)
	assert.True(t, c.FlagZ())
	assert.True(t, c.FlagH())
	assert.True(t, c.FlagC(), "INC never touches C")

	result = c.dec8(0x00)
	assert.Equal(t, byte(0xFF), result)
	assert.False(t, c.FlagZ())
	assert.True(t, c.FlagH())
	assert.True(t, c.FlagC(), "DEC never touches C")
}

func TestAddHL16_FlagsFromBit11AndBit15(t *testing.T) {
	c := New()
	c.SetHL(0x0FFF)
	c.addHL16(0x0001)
	assert.Equal(t, uint16(0x1000), c.HL())
	assert.True(t, c.FlagH())
	assert.False(t, c.FlagC())
}

func TestDAA_AfterBCDAddition(t *testing.T) {
	c := New()
	c.A = 0x45
	c.add8(0x38, false) // 0x45 + 0x38 = 0x7D, not valid packed BCD
	c.daa()
	assert.Equal(t, byte(0x83), c.A, "0x45 + 0x38 in BCD is 83")
}

func TestDAA_AfterBCDSubtraction(t *testing.T) {
	c := New()
	c.A = 0x50
	c.sub8(0x15, false, true) // 0x50 - 0x15 = 0x3B binary; BCD 35
	c.daa()
	assert.Equal(t, byte(0x35), c.A)
}

func TestCPL_SetsNAndHAndInvertsA(t *testing.T) {
	c := New()
	c.A = 0x0F
	c.cpl()
	assert.Equal(t, byte(0xF0), c.A)
	assert.True(t, c.FlagN())
	assert.True(t, c.FlagH())
}

func TestSCFCCF(t *testing.T) {
	c := New()
	c.scf()
	assert.True(t, c.FlagC())
	assert.False(t, c.FlagN())
	assert.False(t, c.FlagH())

	c.ccf()
	assert.False(t, c.FlagC())
}

func TestSwapNibbles(t *testing.T) {
	assert.Equal(t, byte(0x21), swapNibbles(0x12))
}
