package emulator

import (
	"github.com/ezrec/spirovm/translate"
)

var f = translate.From

// ErrRuntime indicates the frame at which a run stopped.
type ErrRuntime struct {
	Frame int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("frame %d %v", err.Frame, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
