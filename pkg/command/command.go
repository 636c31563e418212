package command

import (
	"github.com/askiada/go-lineedit/pkg/address"
)

// Action is what a command does to the lines it applies to.
type Action uint8

const (
	// Delete empties the contents of the line.
	Delete Action = iota + 1
	// Print emits the contents of the line without changing it.
	Print
)

const (
	deleteName = "delete"
	printName  = "print"
)

func (a Action) String() string {
	switch a {
	case Delete:
		return deleteName
	case Print:
		return printName
	default:
		return "unknown"
	}
}

// ParseAction returns the action named name.
func ParseAction(name string) (Action, bool) {
	switch name {
	case deleteName:
		return Delete, true
	case printName:
		return Print, true
	default:
		return 0, false
	}
}

// Emitter receives the contents printed by a command.
type Emitter func(contents string)

// Command is an action and the condition deciding which lines it applies to.
type Command struct {
	action Action
	cond   *address.Condition
}

// New creates a command. A nil condition applies the command to every line.
func New(action Action, cond *address.Condition) Command {
	cmd := Command{action: action}
	if cond != nil {
		c := *cond
		cmd.cond = &c
	}

	return cmd
}

// Action returns the action of the command.
func (c Command) Action() Action { return c.action }

// Condition returns the condition of the command and whether there is one.
func (c Command) Condition() (address.Condition, bool) {
	if c.cond == nil {
		return address.Condition{}, false
	}

	return *c.cond, true
}

// ShouldRun reports whether the command applies to addr.
func (c Command) ShouldRun(addr address.Address) bool {
	if c.cond == nil {
		return true
	}

	return c.cond.Applies(addr)
}

// Run applies the command to line and returns the resulting line. A line the command does not apply to is returned
// unchanged. Print sends the contents to emit, which may be nil.
func (c Command) Run(line Line, emit Emitter) Line {
	if !c.ShouldRun(line.Addr) {
		return line
	}

	switch c.action {
	case Delete:
		return Line{Addr: line.Addr}
	case Print:
		if emit != nil {
			emit(line.Contents)
		}

		return line
	default:
		return line
	}
}

func (c Command) String() string {
	if c.cond == nil {
		return c.action.String()
	}

	return c.action.String() + " " + c.cond.String()
}
