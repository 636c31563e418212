package editor

import "github.com/askiada/go-lineedit/pkg/address"

// RecordKind tells a line from a print emission.
type RecordKind uint8

const (
	// LineRecord carries the contents of a line after all the commands ran.
	LineRecord RecordKind = iota + 1
	// PrintRecord carries the contents emitted by a print command.
	PrintRecord
)

func (k RecordKind) String() string {
	switch k {
	case LineRecord:
		return "line"
	case PrintRecord:
		return "print"
	default:
		return "unknown"
	}
}

// Record is an element of the output stream.
type Record struct {
	Kind RecordKind
	Addr address.Address
	Text string
}
