package address

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	inclusiveLower = '['
	exclusiveLower = '('
	inclusiveUpper = ']'
	exclusiveUpper = ')'
	rangeDelim     = ".."
	maxSegments    = 3
)

// Parse parses the textual form of a condition.
//
// A spec made only of digits is accepted as a line number. Otherwise the closures are checked before any address
// is parsed, so "abc" fails with ErrMissingClosures. The closures of a single address do not change its meaning:
// "[5]", "(5)", "[5)" and "(5]" all match line 5 only.
func Parse(spec string) (Condition, error) {
	if spec == "" {
		return Condition{}, ErrArgEmpty
	}

	if isDigits(spec) {
		n, err := ParseAddress(spec)
		if err != nil {
			return Condition{}, err
		}

		return LineNumber(n), nil
	}

	minInclusive, maxInclusive, err := parseClosures(spec)
	if err != nil {
		return Condition{}, errors.Wrapf(err, "%q", spec)
	}

	segments, err := splitBody(spec[1 : len(spec)-1])
	if err != nil {
		return Condition{}, errors.Wrapf(err, "%q", spec)
	}

	addrs := make([]Address, len(segments))
	for i, segment := range segments {
		addrs[i], err = ParseAddress(segment)
		if err != nil {
			return Condition{}, errors.Wrapf(err, "segment %d of %q", i+1, spec)
		}
	}

	switch len(addrs) {
	case 1:
		return LineNumber(addrs[0]), nil
	case 2:
		return Range(addrs[0], addrs[1], minInclusive, maxInclusive), nil
	default:
		cond, err := StepRange(addrs[0], addrs[1], addrs[2], minInclusive, maxInclusive)
		if err != nil {
			return Condition{}, errors.Wrapf(err, "%q", spec)
		}

		return cond, nil
	}
}

// MustParse is like Parse but panics on error.
func MustParse(spec string) Condition {
	cond, err := Parse(spec)
	if err != nil {
		panic(err)
	}

	return cond
}

func parseClosures(spec string) (minInclusive, maxInclusive bool, err error) {
	if len(spec) < 2 {
		return false, false, ErrMissingClosures
	}

	minInclusive, err = closure(rune(spec[0]), inclusiveLower, exclusiveLower)
	if err != nil {
		return false, false, errors.Wrap(err, "lower bound")
	}

	maxInclusive, err = closure(rune(spec[len(spec)-1]), inclusiveUpper, exclusiveUpper)
	if err != nil {
		return false, false, errors.Wrap(err, "upper bound")
	}

	return minInclusive, maxInclusive, nil
}

// closure reports whether c is the inclusive closure. A letter or digit means the closure was left out, anything
// else is a wrong closure.
func closure(c, inclusive, exclusive rune) (bool, error) {
	switch {
	case c == inclusive:
		return true, nil
	case c == exclusive:
		return false, nil
	case unicode.IsLetter(c) || unicode.IsDigit(c):
		return false, ErrMissingClosures
	default:
		return false, errors.Wrapf(ErrInvalidRangeClosure, "%q", c)
	}
}

func splitBody(body string) ([]string, error) {
	if body == "" {
		return nil, ErrInvalidAddressCount
	}

	segments := strings.Split(body, rangeDelim)
	if len(segments) > maxSegments {
		return nil, errors.Wrapf(ErrInvalidAddressCount, "got %d", len(segments))
	}

	return segments, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
