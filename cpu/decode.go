package cpu

import (
	"iter"
)

// byteAt returns the ROM byte at an offset. Bytes past the end of the
// ROM read as zero, the same as unwritten ROM memory.
func byteAt(rom []byte, at int) byte {
	if at < 0 || at >= len(rom) {
		return 0
	}
	return rom[at]
}

// nibbles returns an iterator over the first count 4-bit values of data,
// high nibble first.
func nibbles(data []byte, count int) iter.Seq[uint8] {
	return func(yield func(op uint8) bool) {
		for n := range count {
			b := byteAt(data, n/2)
			if n&1 == 0 {
				b >>= 4
			}
			if !yield(b & 0xf) {
				return
			}
		}
	}
}

// rules returns an iterator over the rules framed in the ROM.
// Framing stops at a zero command count, or at the end of the ROM.
func rules(rom []byte) iter.Seq[Rule] {
	return func(yield func(rule Rule) bool) {
		at := 0
		for {
			count := int(byteAt(rom, at))
			if count == 0 {
				return
			}
			cycles := int(byteAt(rom, at+1))
			size := (count + 1) / 2

			var data []byte
			if at+2 < len(rom) {
				data = rom[at+2 : min(at+2+size, len(rom))]
			}

			rule := Rule{
				Cycles: cycles,
				Body:   make([]Command, 0, count),
			}
			for op := range nibbles(data, count) {
				rule.Body = append(rule.Body, DecodeCommand(op))
			}

			if !yield(rule) {
				return
			}

			at += 2 + size
		}
	}
}

// Decode decodes a ROM image into a Program.
//
// Decoding is total: every byte sequence decodes to some Program. An empty
// ROM, or one that starts with a zero count byte, decodes to a Program with
// no rules.
func Decode(rom []byte) (prog *Program) {
	prog = &Program{}

	for rule := range rules(rom) {
		prog.Rules = append(prog.Rules, rule)
	}

	return
}
