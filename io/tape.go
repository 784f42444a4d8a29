package io

import (
	"io"
)

// Tape reads ROM images from a byte stream.
type Tape struct {
	Input io.Reader
	Limit int // Maximum image size, in bytes.
}

// ReadImage reads the input to its end.
// Returns ErrImageSize if the input is longer than Limit.
func (tc *Tape) ReadImage() (image []byte, err error) {
	image, err = io.ReadAll(io.LimitReader(tc.Input, int64(tc.Limit)+1))
	if err != nil {
		return
	}

	if len(image) > tc.Limit {
		image = nil
		err = ErrImageSize
		return
	}

	return
}
