package cpu

import "github.com/corrinlakeland/dmgcore/bit"

// Flag bit positions within F.
const (
	flagZ = 7
	flagN = 6
	flagH = 5
	flagC = 4
)

// Registers holds the eight 8-bit Sharp LR35902 registers. F's low nibble
// stays zero: SetAF masks it, the flag setters only touch bits 7-4, and
// AF() masks it on read.
type Registers struct {
	A, F byte
	B, C byte
	D, E byte
	H, L byte
}

func (r *Registers) BC() uint16 { return bit.Combine(r.B, r.C) }
func (r *Registers) DE() uint16 { return bit.Combine(r.D, r.E) }
func (r *Registers) HL() uint16 { return bit.Combine(r.H, r.L) }
func (r *Registers) AF() uint16 { return bit.Combine(r.A, r.F&0xF0) }

func (r *Registers) SetBC(v uint16) { r.B, r.C = bit.High(v), bit.Low(v) }
func (r *Registers) SetDE(v uint16) { r.D, r.E = bit.High(v), bit.Low(v) }
func (r *Registers) SetHL(v uint16) { r.H, r.L = bit.High(v), bit.Low(v) }
func (r *Registers) SetAF(v uint16) { r.A, r.F = bit.High(v), bit.Low(v)&0xF0 }

func (r *Registers) FlagZ() bool { return bit.IsSet(flagZ, r.F) }
func (r *Registers) FlagN() bool { return bit.IsSet(flagN, r.F) }
func (r *Registers) FlagH() bool { return bit.IsSet(flagH, r.F) }
func (r *Registers) FlagC() bool { return bit.IsSet(flagC, r.F) }

func (r *Registers) SetFlagZ(v bool) { r.F = bit.SetTo(flagZ, r.F, v) }
func (r *Registers) SetFlagN(v bool) { r.F = bit.SetTo(flagN, r.F, v) }
func (r *Registers) SetFlagH(v bool) { r.F = bit.SetTo(flagH, r.F, v) }
func (r *Registers) SetFlagC(v bool) { r.F = bit.SetTo(flagC, r.F, v) }

// SetFlags sets all four flags at once.
func (r *Registers) SetFlags(z, n, h, c bool) {
	r.SetFlagZ(z)
	r.SetFlagN(n)
	r.SetFlagH(h)
	r.SetFlagC(c)
}
