package command

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-lineedit/pkg/address"
)

// Parse builds a command from its tokens: the action name and an optional address condition.
func Parse(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return Command{}, ErrEmptyCommand
	}

	action, ok := ParseAction(tokens[0])
	if !ok {
		return Command{}, errors.Wrapf(ErrInvalidCommandName, "%q", tokens[0])
	}

	switch len(tokens) {
	case 1:
		return New(action, nil), nil
	case 2:
		cond, err := address.Parse(tokens[1])
		if err != nil {
			return Command{}, errors.Wrapf(err, "unable to parse %s condition", action)
		}

		return New(action, &cond), nil
	default:
		return Command{}, errors.Wrapf(ErrInvalidArgCount, "%s got %d arguments", action, len(tokens)-1)
	}
}

// ParseScript splits args into commands and parses them. Every action name starts a new command and may be followed
// by a single address condition, so `delete [0] print (2..4)` holds two commands.
func ParseScript(args []string) ([]Command, error) {
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}

	groups := [][]string{}

	for i, arg := range args {
		if _, ok := ParseAction(arg); ok {
			groups = append(groups, []string{arg})

			continue
		}

		if len(groups) == 0 {
			return nil, errors.Wrapf(ErrInvalidCommandName, "argument %d: %q", i, arg)
		}

		last := len(groups) - 1
		groups[last] = append(groups[last], arg)
	}

	cmds := make([]Command, len(groups))

	for i, tokens := range groups {
		cmd, err := Parse(tokens)
		if err != nil {
			return nil, errors.Wrapf(err, "command %d", i)
		}

		cmds[i] = cmd
	}

	return cmds, nil
}
