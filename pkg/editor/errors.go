package editor

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/askiada/go-lineedit/pkg/address"
)

var ErrAddressOverflow = errors.New("too many lines to address")

// SourceError is returned when a line cannot be read from the input.
type SourceError struct {
	// Addr is the address the line would have had.
	Addr address.Address
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("unable to read line %d: %v", e.Addr, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// SinkError is returned when a record cannot be written to the output.
type SinkError struct {
	Record Record
	Err    error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("unable to write %s record of line %d: %v", e.Record.Kind, e.Record.Addr, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }
