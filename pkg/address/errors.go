package address

import "github.com/pkg/errors"

var (
	ErrArgEmpty             = errors.New("address condition is empty")
	ErrMissingClosures      = errors.New("address condition must start with [ or ( and end with ] or )")
	ErrInvalidRangeClosure  = errors.New("invalid address condition closure")
	ErrInvalidAddressNumber = errors.New("invalid address number")
	ErrInvalidAddressCount  = errors.New("address condition must hold 1 to 3 addresses")
	ErrInvalidStep          = errors.New("step must be greater than 0")
)
