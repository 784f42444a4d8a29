// Package io provides the ROM memory and tape reader for the spirovm emulator.
// ROM memory is address mapped; accesses outside of the mapped region fault
// with ErrAddress, and never partially complete.
package io

import (
	"iter"
)

// Rom is a region of address-mapped ROM memory. Unwritten bytes are zero.
type Rom struct {
	Base uint32 // Address of the first byte.
	Data []byte // Contents of the region.
}

// NewRom creates a zero-filled ROM region.
func NewRom(base uint32, size int) *Rom {
	return &Rom{
		Base: base,
		Data: make([]byte, size),
	}
}

// Size returns the number of bytes in the region.
func (rom *Rom) Size() int {
	return len(rom.Data)
}

// offset validates an access of n bytes at addr, and returns its offset into
// the region.
func (rom *Rom) offset(addr uint32, n int) (off int, err error) {
	if addr < rom.Base || n < 0 || uint64(addr-rom.Base)+uint64(n) > uint64(len(rom.Data)) {
		err = &ErrFault{Addr: addr, Len: n}
		return
	}

	off = int(addr - rom.Base)
	return
}

// Store writes data at addr. Nothing is written if any byte of data falls
// outside of the region.
func (rom *Rom) Store(addr uint32, data []byte) (err error) {
	off, err := rom.offset(addr, len(data))
	if err != nil {
		return
	}

	copy(rom.Data[off:], data)
	return
}

// Fetch returns a copy of n bytes at addr.
func (rom *Rom) Fetch(addr uint32, n int) (data []byte, err error) {
	off, err := rom.offset(addr, n)
	if err != nil {
		return
	}

	data = make([]byte, n)
	copy(data, rom.Data[off:])
	return
}

// Image returns a copy of the region from addr to its end.
func (rom *Rom) Image(addr uint32) (data []byte, err error) {
	var n int
	if addr >= rom.Base && uint64(addr-rom.Base) <= uint64(len(rom.Data)) {
		n = len(rom.Data) - int(addr-rom.Base)
	}

	return rom.Fetch(addr, n)
}

// Bytes returns an iterator over the address and value of every non-zero
// byte in the region.
func (rom *Rom) Bytes() iter.Seq2[uint32, byte] {
	return func(yield func(addr uint32, value byte) bool) {
		for n, value := range rom.Data {
			if value == 0 {
				continue
			}
			if !yield(rom.Base+uint32(n), value) {
				return
			}
		}
	}
}

// Clear zeros the region.
func (rom *Rom) Clear() {
	clear(rom.Data)
}
