package cpu

import (
	"errors"
	"iter"
	"slices"

	"github.com/ezrec/spirovm/internal"
)

// Program is the sequence of rules decoded from a ROM.
type Program struct {
	Rules []Rule

	rulePc int // Index of the current rule.
}

// Next returns the next command of the program, advancing to the next
// rule when the current rule is exhausted.
// ok is false once every rule is exhausted.
func (prog *Program) Next() (cmd Command, ok bool) {
	for prog.rulePc < len(prog.Rules) {
		cmd, ok = prog.Rules[prog.rulePc].Next()
		if ok {
			return
		}
		prog.rulePc++
	}

	return
}

// Done returns true if the program has no further commands.
func (prog *Program) Done() bool {
	for n := prog.rulePc; n < len(prog.Rules); n++ {
		if !prog.Rules[n].Done() {
			return false
		}
	}

	return true
}

// Reset rewinds the program and all of its rules.
func (prog *Program) Reset() {
	prog.rulePc = 0
	for n := range prog.Rules {
		prog.Rules[n].Reset()
	}
}

// Position returns the current rule index, and the position within that rule.
func (prog *Program) Position() (rule int, pc int) {
	rule = prog.rulePc
	if rule < len(prog.Rules) {
		pc = prog.Rules[rule].pc
	}
	return
}

// Len returns the total number of commands in the program.
func (prog *Program) Len() (count int) {
	for n := range prog.Rules {
		count += prog.Rules[n].Len()
	}
	return
}

// Clone returns a deep copy of the program, including its position.
func (prog *Program) Clone() *Program {
	clone := &Program{
		Rules:  slices.Clone(prog.Rules),
		rulePc: prog.rulePc,
	}
	for n := range clone.Rules {
		clone.Rules[n].Body = slices.Clone(clone.Rules[n].Body)
	}

	return clone
}

// Commands returns an iterator over every command of the program, in order.
// It does not disturb the program's position.
func (prog *Program) Commands() iter.Seq[Command] {
	seqs := make([]iter.Seq[Command], len(prog.Rules))
	for n := range prog.Rules {
		seqs[n] = prog.Rules[n].Commands()
	}

	return internal.IterSeqConcat(seqs...)
}

// Binary encodes the program as a ROM image.
func (prog *Program) Binary() (rom []byte, err error) {
	for n, rule := range prog.Rules {
		if len(rule.Body) == 0 {
			err = errors.Join(ErrRule(n), ErrRuleEmpty)
			return
		}
		if len(rule.Body) > RULE_LIMIT {
			err = errors.Join(ErrRule(n), ErrRuleLength)
			return
		}
		if rule.Cycles < 0 || rule.Cycles > CYCLES_LIMIT {
			err = errors.Join(ErrRule(n), ErrCyclesRange)
			return
		}

		rom = append(rom, byte(len(rule.Body)), byte(rule.Cycles))
		packed := make([]byte, (len(rule.Body)+1)/2)
		for i, cmd := range rule.Body {
			op, ok := cmd.Opcode()
			if !ok {
				err = errors.Join(ErrRule(n), ErrCommand(cmd))
				return
			}
			if i&1 == 0 {
				op <<= 4
			}
			packed[i/2] |= op
		}
		rom = append(rom, packed...)
	}

	return
}
