package serial

import (
	"testing"

	"github.com/corrinlakeland/dmgcore/addr"
	"github.com/stretchr/testify/assert"
)

func TestPort_PublishesOnSC0x81(t *testing.T) {
	p := NewPort()
	p.Write(addr.SB, 'P')
	p.Write(addr.SC, 0x81)

	assert.Equal(t, "P", p.Output())
	assert.Equal(t, byte(0), p.Read(addr.SC), "SC is cleared after publishing")
}

func TestPort_AccumulatesMultipleBytes(t *testing.T) {
	p := NewPort()
	for _, b := range []byte("Passed") {
		p.Write(addr.SB, b)
		p.Write(addr.SC, 0x81)
	}
	assert.Equal(t, "Passed", p.Output())
}

func TestPort_IgnoresOtherSCWrites(t *testing.T) {
	p := NewPort()
	p.Write(addr.SB, 'X')
	p.Write(addr.SC, 0x01)

	assert.Equal(t, "", p.Output())
	assert.Equal(t, byte(0x01), p.Read(addr.SC))
}
