package address

import (
	"strconv"

	"github.com/pkg/errors"
)

// Address is the zero-based position of a line in the stream.
type Address uint32

// ParseAddress parses a base-10 unsigned address. Signs and surrounding spaces are rejected.
func ParseAddress(s string) (Address, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAddressNumber, "%q", s)
	}

	return Address(n), nil
}

func (a Address) String() string {
	return strconv.FormatUint(uint64(a), 10)
}
