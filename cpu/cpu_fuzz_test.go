package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func FuzzCpu(f *testing.F) {
	f.Add([]byte{0x02, 0x01, 0x50})
	f.Add([]byte{0x04, 0xff, 0x73, 0xc9, 0x02, 0x10, 0xbd})
	f.Add([]byte{0x01, 0xff, 0x40, 0x01, 0xff, 0x40})

	f.Fuzz(func(t *testing.T, rom []byte) {
		assert := assert.New(t)

		cpu := NewCpu()
		cpu.LoadRom(rom)
		expected := cpu.Program().Len()

		ticks := run(cpu)
		assert.Equal(expected, ticks)
		assert.True(cpu.Tick())

		x, y := cpu.Cursor()
		assert.LessOrEqual(abs(x-WIDTH/2), ticks)
		assert.LessOrEqual(abs(y-HEIGHT/2), ticks)

		fx, fy := cpu.Flip()
		assert.Equal(1, abs(fx))
		assert.Equal(1, abs(fy))

		for pt := range cpu.Lit() {
			assert.True(pt.In(Bounds))
		}
	})
}
