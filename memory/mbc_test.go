package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeROM(banks int, fill func(bank int, data []byte)) []byte {
	data := make([]byte, banks*0x4000)
	for b := 0; b < banks; b++ {
		fill(b, data[b*0x4000:(b+1)*0x4000])
	}
	return data
}

func TestNewMBC_NoMBC(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0] = 0xAA
	mbc, err := NewMBC(rom, Header{CartridgeType: cartTypeNoMBC})
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAA), mbc.Read(0))

	mbc.Write(0x2000, 0x42) // ignored, NoMBC has no banking
	assert.Equal(t, uint8(0xAA), mbc.Read(0))
}

func TestNewMBC_Unsupported(t *testing.T) {
	_, err := NewMBC(make([]byte, 0x8000), Header{CartridgeType: 0x05})
	require.Error(t, err)
	var invalid *ErrInvalidROM
	assert.ErrorAs(t, err, &invalid)
}

func TestMBC1_RomBankZeroBecomesOne(t *testing.T) {
	rom := makeROM(8, func(bank int, data []byte) { data[0] = byte(bank) })
	m := NewMBC1(rom, Header{ROMSizeCode: 0x01}) // 4 banks minimum implied, but rom has 8

	m.Write(0x2000, 0x00)
	assert.Equal(t, uint8(1), m.Read(0x4000), "writing 0 to the bank register selects bank 1")
}

func TestMBC1_SimpleModeBanking(t *testing.T) {
	rom := makeROM(8, func(bank int, data []byte) { data[0] = byte(bank) })
	m := NewMBC1(rom, Header{ROMSizeCode: 0x02}) // 8 banks -> mask 0x07

	assert.Equal(t, uint8(0), m.Read(0x0000), "bank 0 always visible at 0x0000 in simple mode")

	m.Write(0x2000, 0x05)
	assert.Equal(t, uint8(5), m.Read(0x4000))
}

func TestMBC1_AdvancedModeLowBank(t *testing.T) {
	rom := makeROM(128, func(bank int, data []byte) { data[0] = byte(bank) })
	m := NewMBC1(rom, Header{ROMSizeCode: 0x06}) // 128 banks, mask 0x7F

	m.Write(0x6000, 0x01) // advanced banking mode
	m.Write(0x4000, 0x02) // ram_bank = 2 -> low bank becomes (2<<5)&mask = 64

	assert.Equal(t, uint8(64), m.Read(0x0000), "advanced mode exposes (ram_bank<<5) at the low window")
}

func TestMBC1_RamEnableAndBanking(t *testing.T) {
	rom := makeROM(4, func(int, []byte) {})
	m := NewMBC1(rom, Header{ROMSizeCode: 0x01, RAMSizeCode: 0x03}) // 4 RAM banks

	assert.Equal(t, uint8(0xFF), m.Read(0xA000), "RAM reads 0xFF while disabled")

	m.Write(0x0000, 0x0A) // enable RAM
	m.Write(0x6000, 0x01) // advanced mode, RAM banking active
	m.Write(0x4000, 0x02) // ram_bank = 2

	m.Write(0xA010, 0x99)
	assert.Equal(t, uint8(0x99), m.Read(0xA010))

	m.Write(0x4000, 0x01) // switch bank
	assert.NotEqual(t, uint8(0x99), m.Read(0xA010), "different RAM bank sees different storage")
}
