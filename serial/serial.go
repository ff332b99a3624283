// Package serial implements the minimal test-observation stub described in
// spec.md §4.5/§4.8: it does not simulate the real link-cable bit clock, it
// just captures the byte pattern Blargg-style test ROMs use to report
// "Passed"/"Failed" over the serial port.
package serial

import (
	"log/slog"
	"strings"

	"github.com/corrinlakeland/dmgcore/addr"
)

// Port holds SB/SC and accumulates the ASCII bytes test ROMs push through
// the classic "write 0x81 to SC" pattern.
type Port struct {
	sb byte
	sc byte

	buffer strings.Builder
	line   []byte
	logger *slog.Logger
}

// NewPort returns an empty serial port.
func NewPort() *Port {
	return &Port{logger: slog.Default()}
}

// Reset clears the accumulated output and register state.
func (p *Port) Reset() {
	p.sb = 0
	p.sc = 0
	p.buffer.Reset()
	p.line = p.line[:0]
}

// Read returns SB or SC.
func (p *Port) Read(address uint16) byte {
	switch address {
	case addr.SB:
		return p.sb
	case addr.SC:
		return p.sc
	default:
		return 0xFF
	}
}

// Write handles a write to SB or SC. A write of 0x81 to SC publishes the
// current SB byte to the observation buffer and clears SC, per spec.
func (p *Port) Write(address uint16, value byte) {
	switch address {
	case addr.SB:
		p.sb = value
	case addr.SC:
		if value == 0x81 {
			p.buffer.WriteByte(p.sb)
			p.appendLine(p.sb)
			p.sc = 0
			return
		}
		p.sc = value
	}
}

func (p *Port) appendLine(b byte) {
	if b == '\n' || b == '\r' {
		if len(p.line) > 0 {
			p.logger.Info("serial", "line", string(p.line))
			p.line = p.line[:0]
		}
		return
	}
	p.line = append(p.line, b)
}

// Output returns everything published through the observation channel so
// far, in order.
func (p *Port) Output() string {
	return p.buffer.String()
}
