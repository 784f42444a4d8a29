package cpu

import (
	"errors"

	"github.com/ezrec/spirovm/translate"
)

var f = translate.From

var (
	// Program encode errors
	ErrRuleEmpty   = errors.New(f("rule empty"))
	ErrRuleLength  = errors.New(f("rule too long"))
	ErrCyclesRange = errors.New(f("cycles out of range"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrMacroSyntax     = errors.New(f(".macro syntax"))
	ErrMacroNesting    = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate  = errors.New(f(".macro duplicated"))
	ErrMacroLonely     = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm = errors.New(f(".endm without .macro"))
	ErrRuleSyntax      = errors.New(f(".rule syntax"))
	ErrRuleNesting     = errors.New(f(".rule in .rule prohibited"))
	ErrRuleLonely      = errors.New(f(".rule without .endr"))
	ErrRuleLonelyEndr  = errors.New(f(".endr without .rule"))
	ErrCommandOutside  = errors.New(f("command outside of .rule"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
)

type ErrRule int

func (er ErrRule) Error() string {
	return f("rule %d", int(er))
}

type ErrCommand Command

func (ec ErrCommand) Error() string {
	return f("command %v has no opcode", Command(ec).String())
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
