package command

import "github.com/pkg/errors"

var (
	ErrEmptyCommand       = errors.New("command is empty")
	ErrInvalidCommandName = errors.New("invalid command name")
	ErrInvalidArgCount    = errors.New("command takes at most one address condition")
)
