package cpu

import (
	"iter"
)

const (
	RULE_LIMIT   = 255 // Maximum commands in a rule body.
	CYCLES_LIMIT = 255 // Maximum cycle count of a rule.
)

// Rule is a rule body that is repeated Cycles times.
type Rule struct {
	Cycles int       // Number of passes through the body.
	Body   []Command // Commands, in decode order.

	pc int // Position in the repeated body sequence.
}

// Len returns the number of commands the rule yields in total.
func (rule *Rule) Len() int {
	return len(rule.Body) * max(rule.Cycles, 0)
}

// Next returns the next command of the rule.
// ok is false once all cycles have been yielded.
func (rule *Rule) Next() (cmd Command, ok bool) {
	if rule.pc >= rule.Len() {
		return
	}

	cmd = rule.Body[rule.pc%len(rule.Body)]
	rule.pc++
	ok = true

	return
}

// Done returns true if the rule has no further commands.
func (rule *Rule) Done() bool {
	return rule.pc >= rule.Len()
}

// Reset rewinds the rule to its first command.
func (rule *Rule) Reset() {
	rule.pc = 0
}

// Commands returns an iterator over every command of the rule, in order.
// It does not disturb the rule's position.
func (rule *Rule) Commands() iter.Seq[Command] {
	return func(yield func(cmd Command) bool) {
		for n := range rule.Len() {
			if !yield(rule.Body[n%len(rule.Body)]) {
				return
			}
		}
	}
}
