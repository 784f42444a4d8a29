package io

import (
	"errors"

	"github.com/ezrec/spirovm/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrAddress = errors.New(f("invalid address"))

	// Tape errors
	ErrImageSize = errors.New(f("image too large"))
)

// ErrFault is an access of Len bytes at Addr that is outside of a ROM region.
type ErrFault struct {
	Addr uint32
	Len  int
}

func (err *ErrFault) Error() string {
	return f("0x%08x+%d: %v", err.Addr, err.Len, ErrAddress)
}

func (err *ErrFault) Unwrap() error {
	return ErrAddress
}
