package cpu

import (
	"fmt"
)

// Kind is the variant of a Command.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_PUSHPOP = Kind(0) // pushpop
	KIND_MOVE    = Kind(1) // move
	KIND_FLIP    = Kind(2) // flip
	KIND_MIRROR  = Kind(3) // mirror
	KIND_COLOR   = Kind(4) // color
	KIND_DRAW    = Kind(5) // draw
	KIND_SCALE   = Kind(6) // scale
)

// Command is a single decoded drawing operation.
//
// The meaning of X and Y depends on the Kind:
//   - KIND_MOVE: relative cursor displacement, each in {-1, 0, 1}.
//   - KIND_FLIP: axis toggle flags, each in {0, 1}.
//   - KIND_SCALE: X is the direction, 1 or -1.
//
// Other kinds carry no payload.
type Command struct {
	Kind Kind
	X    int8
	Y    int8
}

// MakeMove creates a cursor move command.
func MakeMove(dx, dy int8) Command {
	return Command{Kind: KIND_MOVE, X: dx, Y: dy}
}

// MakeFlip creates a flip command for the flagged axes.
func MakeFlip(fx, fy int8) Command {
	return Command{Kind: KIND_FLIP, X: fx, Y: fy}
}

// MakeScale creates a scale command.
func MakeScale(dir int8) Command {
	return Command{Kind: KIND_SCALE, X: dir}
}

// opcodeTable maps each 4-bit opcode to its command.
var opcodeTable = [16]Command{
	0x0: {Kind: KIND_PUSHPOP},
	0x1: MakeMove(1, 0),
	0x2: MakeMove(-1, 0),
	0x3: MakeFlip(1, 0),
	0x4: MakeMove(0, -1),
	0x5: MakeMove(1, -1),
	0x6: MakeMove(-1, -1),
	0x7: {Kind: KIND_MIRROR},
	0x8: MakeMove(0, 1),
	0x9: MakeMove(1, 1),
	0xa: MakeMove(-1, 1),
	0xb: MakeFlip(0, 1),
	0xc: {Kind: KIND_COLOR},
	0xd: {Kind: KIND_DRAW},
	0xe: MakeScale(1),
	0xf: MakeScale(-1),
}

// DecodeCommand maps an opcode to its command. Only the low 4 bits are used.
func DecodeCommand(op uint8) Command {
	return opcodeTable[op&0xf]
}

// Opcode returns the 4-bit encoding of the command, if it has one.
func (cmd Command) Opcode() (op uint8, ok bool) {
	for n, entry := range opcodeTable {
		if entry == cmd {
			return uint8(n), true
		}
	}

	return
}

// moveNames are the compass names of the move deltas. North is -Y.
var moveNames = map[[2]int8]string{
	{1, 0}:   "e",
	{-1, 0}:  "w",
	{0, -1}:  "n",
	{0, 1}:   "s",
	{1, -1}:  "ne",
	{-1, -1}: "nw",
	{1, 1}:   "se",
	{-1, 1}:  "sw",
}

// String returns the assembler mnemonic of the command.
func (cmd Command) String() (out string) {
	switch cmd.Kind {
	case KIND_MOVE:
		dir, ok := moveNames[[2]int8{cmd.X, cmd.Y}]
		if !ok {
			return fmt.Sprintf("%v.%d.%d", cmd.Kind, cmd.X, cmd.Y)
		}
		out = cmd.Kind.String() + "." + dir
	case KIND_FLIP:
		out = cmd.Kind.String() + "."
		if cmd.X != 0 {
			out += "x"
		}
		if cmd.Y != 0 {
			out += "y"
		}
	case KIND_SCALE:
		switch cmd.X {
		case 1:
			out = cmd.Kind.String() + ".up"
		case -1:
			out = cmd.Kind.String() + ".down"
		default:
			out = fmt.Sprintf("%v.%d", cmd.Kind, cmd.X)
		}
	default:
		out = cmd.Kind.String()
	}

	return
}

// mnemonicMap maps assembler mnemonics to their commands.
var mnemonicMap = func() map[string]Command {
	mnemonics := make(map[string]Command, len(opcodeTable))
	for _, cmd := range opcodeTable {
		mnemonics[cmd.String()] = cmd
	}
	return mnemonics
}()
