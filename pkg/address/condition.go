package address

import "strings"

// Kind identifies the shape of a Condition.
type Kind uint8

const (
	// LineNumberKind matches a single address.
	LineNumberKind Kind = iota + 1
	// RangeKind matches the addresses between two bounds.
	RangeKind
	// StepRangeKind matches every step-th address between two bounds, counting from the lower bound.
	StepRangeKind
)

func (k Kind) String() string {
	switch k {
	case LineNumberKind:
		return "line number"
	case RangeKind:
		return "range"
	case StepRangeKind:
		return "step range"
	default:
		return "unknown"
	}
}

// Condition decides whether a command applies to a line address.
// The zero value matches no address.
type Condition struct {
	kind         Kind
	min, max     Address
	minInclusive bool
	maxInclusive bool
	step         Address
}

// LineNumber returns a condition matching only n.
func LineNumber(n Address) Condition {
	return Condition{
		kind:         LineNumberKind,
		min:          n,
		max:          n,
		minInclusive: true,
		maxInclusive: true,
	}
}

// Range returns a condition matching the addresses between min and max. A range where min is greater than max is
// valid and matches nothing.
func Range(min, max Address, minInclusive, maxInclusive bool) Condition {
	return Condition{
		kind:         RangeKind,
		min:          min,
		max:          max,
		minInclusive: minInclusive,
		maxInclusive: maxInclusive,
	}
}

// StepRange returns a condition matching the addresses of the range whose distance to min is a multiple of step.
func StepRange(min, step, max Address, minInclusive, maxInclusive bool) (Condition, error) {
	if step == 0 {
		return Condition{}, ErrInvalidStep
	}

	return Condition{
		kind:         StepRangeKind,
		min:          min,
		max:          max,
		minInclusive: minInclusive,
		maxInclusive: maxInclusive,
		step:         step,
	}, nil
}

// Applies reports whether addr satisfies the condition.
func (c Condition) Applies(addr Address) bool {
	switch c.kind {
	case LineNumberKind:
		return addr == c.min
	case RangeKind:
		return c.inRange(addr)
	case StepRangeKind:
		// inRange guarantees addr >= min, so the subtraction cannot wrap.
		return c.inRange(addr) && (addr-c.min)%c.step == 0
	default:
		return false
	}
}

// inRange checks the lower bound first and only then the upper bound.
func (c Condition) inRange(addr Address) bool {
	if !c.checkMin(addr) {
		return false
	}

	return c.checkMax(addr)
}

func (c Condition) checkMin(addr Address) bool {
	if c.minInclusive {
		return addr >= c.min
	}

	return addr > c.min
}

func (c Condition) checkMax(addr Address) bool {
	if c.maxInclusive {
		return addr <= c.max
	}

	return addr < c.max
}

// Kind returns the shape of the condition.
func (c Condition) Kind() Kind { return c.kind }

// Min returns the lower bound, or the line number of a LineNumber condition.
func (c Condition) Min() Address { return c.min }

// Max returns the upper bound, or the line number of a LineNumber condition.
func (c Condition) Max() Address { return c.max }

// MinInclusive reports whether the lower bound is part of the range.
func (c Condition) MinInclusive() bool { return c.minInclusive }

// MaxInclusive reports whether the upper bound is part of the range.
func (c Condition) MaxInclusive() bool { return c.maxInclusive }

// Step returns the step of a StepRange condition and 0 otherwise.
func (c Condition) Step() Address { return c.step }

// String returns the textual form of the condition, as accepted by Parse.
func (c Condition) String() string {
	if c.kind == 0 {
		return ""
	}

	var sb strings.Builder

	if c.minInclusive {
		sb.WriteByte(inclusiveLower)
	} else {
		sb.WriteByte(exclusiveLower)
	}

	sb.WriteString(c.min.String())

	switch c.kind {
	case RangeKind:
		sb.WriteString(rangeDelim + c.max.String())
	case StepRangeKind:
		sb.WriteString(rangeDelim + c.step.String() + rangeDelim + c.max.String())
	}

	if c.maxInclusive {
		sb.WriteByte(inclusiveUpper)
	} else {
		sb.WriteByte(exclusiveUpper)
	}

	return sb.String()
}
