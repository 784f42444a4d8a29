package io

import (
	"bytes"
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRom_Store(t *testing.T) {
	assert := assert.New(t)

	rom := NewRom(0x100, 8)
	assert.Equal(8, rom.Size())

	err := rom.Store(0x102, []byte{1, 2, 3})
	assert.NoError(err)
	assert.Equal([]byte{0, 0, 1, 2, 3, 0, 0, 0}, rom.Data)

	err = rom.Store(0x105, []byte{4, 5, 6})
	assert.NoError(err)
	assert.Equal([]byte{0, 0, 1, 2, 3, 4, 5, 6}, rom.Data)

	err = rom.Store(0x108, nil)
	assert.NoError(err)
}

func TestRom_Store_Fault(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		addr uint32
		data []byte
	}){
		{"below", 0xff, []byte{1}},
		{"above", 0x108, []byte{1}},
		{"straddle", 0x106, []byte{1, 2, 3}},
		{"wrap", 0xffffffff, []byte{1, 2}},
	}

	for _, entry := range table {
		rom := NewRom(0x100, 8)
		rom.Data[0] = 0xaa

		err := rom.Store(entry.addr, entry.data)
		assert.ErrorIs(err, ErrAddress, entry.name)

		var fault *ErrFault
		if assert.True(errors.As(err, &fault), entry.name) {
			assert.Equal(entry.addr, fault.Addr, entry.name)
			assert.Equal(len(entry.data), fault.Len, entry.name)
		}

		// Nothing was written.
		assert.Equal([]byte{0xaa, 0, 0, 0, 0, 0, 0, 0}, rom.Data, entry.name)
	}
}

func TestRom_Fetch(t *testing.T) {
	assert := assert.New(t)

	rom := NewRom(0x100, 4)
	copy(rom.Data, []byte{1, 2, 3, 4})

	data, err := rom.Fetch(0x101, 2)
	assert.NoError(err)
	assert.Equal([]byte{2, 3}, data)

	// Copies do not alias.
	data[0] = 9
	assert.Equal(byte(2), rom.Data[1])

	_, err = rom.Fetch(0x103, 2)
	assert.ErrorIs(err, ErrAddress)

	_, err = rom.Fetch(0x101, -1)
	assert.ErrorIs(err, ErrAddress)
}

func TestRom_Image(t *testing.T) {
	assert := assert.New(t)

	rom := NewRom(0x100, 4)
	copy(rom.Data, []byte{1, 2, 3, 4})

	data, err := rom.Image(0x100)
	assert.NoError(err)
	assert.Equal([]byte{1, 2, 3, 4}, data)

	data, err = rom.Image(0x103)
	assert.NoError(err)
	assert.Equal([]byte{4}, data)

	data, err = rom.Image(0x104)
	assert.NoError(err)
	assert.Empty(data)

	_, err = rom.Image(0x105)
	assert.ErrorIs(err, ErrAddress)

	_, err = rom.Image(0x0ff)
	assert.ErrorIs(err, ErrAddress)
}

func TestRom_Bytes(t *testing.T) {
	assert := assert.New(t)

	rom := NewRom(0x100, 6)
	copy(rom.Data, []byte{0, 7, 0, 0, 8, 0})

	assert.Equal(map[uint32]byte{0x101: 7, 0x104: 8}, maps.Collect(rom.Bytes()))

	rom.Clear()
	assert.Empty(maps.Collect(rom.Bytes()))
	assert.Equal(6, rom.Size())
}

func TestTape_ReadImage(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewReader([]byte{1, 2, 3}), Limit: 3}
	image, err := tape.ReadImage()
	assert.NoError(err)
	assert.Equal([]byte{1, 2, 3}, image)

	tape = &Tape{Input: bytes.NewReader([]byte{1, 2, 3, 4}), Limit: 3}
	image, err = tape.ReadImage()
	assert.ErrorIs(err, ErrImageSize)
	assert.Nil(image)

	tape = &Tape{Input: bytes.NewReader(nil), Limit: 3}
	image, err = tape.ReadImage()
	assert.NoError(err)
	assert.Empty(image)
}
