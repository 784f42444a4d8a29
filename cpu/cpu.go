package cpu

import (
	"fmt"
	"image"
	"iter"
	"log"
	"maps"
)

// Pixel buffer dimensions.
const (
	WIDTH  = 272
	HEIGHT = 192
)

// Palette indexes of the drawing color.
const (
	COLOR_FOREGROUND = true
	COLOR_BACKGROUND = false
)

var _cpu_defines = map[string]string{
	"WIDTH":  fmt.Sprintf("%v", WIDTH),
	"HEIGHT": fmt.Sprintf("%v", HEIGHT),
}

// Bounds is the rectangle covered by the pixel buffer.
var Bounds = image.Rect(0, 0, WIDTH, HEIGHT)

// Cpu is the simulation context of the drawing processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ticks int // Commands executed since reset.

	cursor image.Point // Drawing position. Not clamped to the buffer.
	flip   image.Point // Per-axis sign of move deltas, each +1 or -1.
	mirror bool        // Swap move dx and dy.
	draw   bool        // Moves paint the buffer.
	color  bool        // Active palette index.

	buffer  [WIDTH * HEIGHT]bool
	program Program
}

// NewCpu creates a new CPU with an empty program.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Centers the cursor.
// - Clears the pixel buffer.
// - Restores flip, mirror, draw and color to their power-on values.
// - Rewinds the loaded program.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.cursor = image.Pt(WIDTH/2, HEIGHT/2)
	cpu.flip = image.Pt(1, 1)
	cpu.mirror = false
	cpu.draw = true
	cpu.color = COLOR_FOREGROUND
	clear(cpu.buffer[:])
	cpu.Ticks = 0

	cpu.program.Reset()
}

// LoadRom decodes a ROM image and loads it as the current program.
// Drawing state is not changed.
func (cpu *Cpu) LoadRom(rom []byte) {
	cpu.LoadProgram(Decode(rom))
}

// LoadProgram loads a copy of the program, rewound to its start.
// Drawing state is not changed.
func (cpu *Cpu) LoadProgram(prog *Program) {
	cpu.program = *prog.Clone()
	cpu.program.Reset()

	if cpu.Verbose {
		log.Printf("cpu: loaded %d rules, %d commands", len(cpu.program.Rules), cpu.program.Len())
	}
}

// Clone returns an independent copy of the CPU, including its program position.
func (cpu *Cpu) Clone() *Cpu {
	clone := *cpu
	clone.program = *cpu.program.Clone()

	return &clone
}

// Program returns a copy of the loaded program, at its current position.
func (cpu *Cpu) Program() *Program {
	return cpu.program.Clone()
}

// Tick executes a single command.
// Returns true, without changing any state, if the program is exhausted.
func (cpu *Cpu) Tick() (halted bool) {
	cmd, ok := cpu.program.Next()
	if !ok {
		return true
	}

	cpu.Execute(cmd)
	cpu.Ticks++

	return false
}

// Execute applies a single command to the CPU state.
func (cpu *Cpu) Execute(cmd Command) {
	if cpu.Verbose {
		rule, pc := cpu.program.Position()
		log.Printf("cpu: %d.%d: %v", rule, pc, cmd)
	}

	switch cmd.Kind {
	case KIND_MOVE:
		delta := image.Pt(int(cmd.X), int(cmd.Y))
		if cpu.mirror {
			delta.X, delta.Y = delta.Y, delta.X
		}
		delta.X *= cpu.flip.X
		delta.Y *= cpu.flip.Y
		cpu.cursor = cpu.cursor.Add(delta)
		if cpu.draw {
			cpu.paint(cpu.cursor)
		}
	case KIND_FLIP:
		if cmd.X != 0 {
			cpu.flip.X = -cpu.flip.X
		}
		if cmd.Y != 0 {
			cpu.flip.Y = -cpu.flip.Y
		}
	case KIND_MIRROR:
		cpu.mirror = !cpu.mirror
	case KIND_COLOR:
		cpu.color = !cpu.color
	case KIND_DRAW:
		cpu.draw = !cpu.draw
	case KIND_SCALE, KIND_PUSHPOP:
		// Reserved.
	}
}

// paint sets a buffer cell to the active color. Points outside the
// buffer are dropped.
func (cpu *Cpu) paint(pt image.Point) {
	if !pt.In(Bounds) {
		return
	}

	cpu.buffer[pt.Y*WIDTH+pt.X] = cpu.color
}

// Cursor returns the current cursor position.
func (cpu *Cpu) Cursor() (x, y int) {
	return cpu.cursor.X, cpu.cursor.Y
}

// Flip returns the current per-axis sign of move deltas.
func (cpu *Cpu) Flip() (x, y int) {
	return cpu.flip.X, cpu.flip.Y
}

// Mirror returns true if move deltas are swapped.
func (cpu *Cpu) Mirror() bool {
	return cpu.mirror
}

// DrawEnabled returns true if moves paint the buffer.
func (cpu *Cpu) DrawEnabled() bool {
	return cpu.draw
}

// Color returns the active palette index.
func (cpu *Cpu) Color() bool {
	return cpu.color
}

// Pixel returns the buffer cell at x, y. Cells outside the buffer are clear.
func (cpu *Cpu) Pixel(x, y int) bool {
	if !image.Pt(x, y).In(Bounds) {
		return false
	}

	return cpu.buffer[y*WIDTH+x]
}

// Buffer returns a copy of the pixel buffer, in row-major order.
func (cpu *Cpu) Buffer() [WIDTH * HEIGHT]bool {
	return cpu.buffer
}

// Lit returns an iterator over the set cells of the pixel buffer.
func (cpu *Cpu) Lit() iter.Seq[image.Point] {
	return func(yield func(pt image.Point) bool) {
		for n, set := range cpu.buffer[:] {
			if !set {
				continue
			}
			if !yield(image.Pt(n%WIDTH, n/WIDTH)) {
				return
			}
		}
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"cursor",
		"flip",
		"mirror",
		"draw",
		"color",
		"ticks",
		"rule",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "cursor":
			strval = fmt.Sprintf("%d,%d", cpu.cursor.X, cpu.cursor.Y)
		case "flip":
			strval = fmt.Sprintf("%+d,%+d", cpu.flip.X, cpu.flip.Y)
		case "mirror":
			strval = fmt.Sprintf("%v", cpu.mirror)
		case "draw":
			strval = fmt.Sprintf("%v", cpu.draw)
		case "color":
			strval = "fg"
			if cpu.color == COLOR_BACKGROUND {
				strval = "bg"
			}
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		case "rule":
			if cpu.program.Done() {
				strval = "----"
			} else {
				rule, pc := cpu.program.Position()
				strval = fmt.Sprintf("%d.%d", rule, pc)
			}
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}
