package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-lineedit/pkg/address"
)

func mustStepRange(t *testing.T, min, step, max address.Address, minInclusive, maxInclusive bool) address.Condition {
	t.Helper()

	cond, err := address.StepRange(min, step, max, minInclusive, maxInclusive)
	require.NoError(t, err)

	return cond
}

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		input    string
		expected address.Condition
	}{
		{input: "[10]", expected: address.LineNumber(10)},
		{input: "(10)", expected: address.LineNumber(10)},
		{input: "[10)", expected: address.LineNumber(10)},
		{input: "10", expected: address.LineNumber(10)},
		{input: "0", expected: address.LineNumber(0)},
		{input: "[1]", expected: address.LineNumber(1)},
		{input: "[11]", expected: address.LineNumber(11)},
		{input: "[5..10]", expected: address.Range(5, 10, true, true)},
		{input: "[5..10)", expected: address.Range(5, 10, true, false)},
		{input: "(5..10]", expected: address.Range(5, 10, false, true)},
		{input: "(5..10)", expected: address.Range(5, 10, false, false)},
		{input: "[10..5]", expected: address.Range(10, 5, true, true)},
		{input: "[0..2..6)", expected: mustStepRange(t, 0, 2, 6, true, false)},
		{input: "(1..3..9]", expected: mustStepRange(t, 1, 3, 9, false, true)},
		{input: "[007..1]", expected: address.Range(7, 1, true, true)},
		{input: "[4294967295]", expected: address.LineNumber(4294967295)},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := address.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		input    string
		expected error
	}{
		{input: "", expected: address.ErrArgEmpty},
		{input: "abc", expected: address.ErrMissingClosures},
		{input: "[", expected: address.ErrMissingClosures},
		{input: "[1", expected: address.ErrMissingClosures},
		{input: "1]", expected: address.ErrMissingClosures},
		{input: "a1]", expected: address.ErrMissingClosures},
		{input: "{1}", expected: address.ErrInvalidRangeClosure},
		{input: "[1}", expected: address.ErrInvalidRangeClosure},
		{input: "]1[", expected: address.ErrInvalidRangeClosure},
		{input: "[]", expected: address.ErrInvalidAddressCount},
		{input: "()", expected: address.ErrInvalidAddressCount},
		{input: "[1..2..3..4]", expected: address.ErrInvalidAddressCount},
		{input: "[a]", expected: address.ErrInvalidAddressNumber},
		{input: "[-1]", expected: address.ErrInvalidAddressNumber},
		{input: "[+1]", expected: address.ErrInvalidAddressNumber},
		{input: "[ 1]", expected: address.ErrInvalidAddressNumber},
		{input: "[..]", expected: address.ErrInvalidAddressNumber},
		{input: "[1..]", expected: address.ErrInvalidAddressNumber},
		{input: "[1...2]", expected: address.ErrInvalidAddressNumber},
		{input: "[4294967296]", expected: address.ErrInvalidAddressNumber},
		{input: "4294967296", expected: address.ErrInvalidAddressNumber},
		{input: "[0..0..6]", expected: address.ErrInvalidStep},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			_, err := address.Parse(tc.input)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"[0..2..6)", "(3)", "abc", "[1..2..3..4]"} {
		cond1, err1 := address.Parse(input)
		cond2, err2 := address.Parse(input)
		assert.Equal(t, cond1, cond2, input)
		assert.Equal(t, err1 == nil, err2 == nil, input)

		if err1 != nil {
			assert.Equal(t, err1.Error(), err2.Error(), input)
		}
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"[3]", "(3)", "9", "[5..10)", "(5..10]", "(0..4..20)", "[2..3..2]"} {
		cond := address.MustParse(input)
		again, err := address.Parse(cond.String())
		require.NoError(t, err, input)
		assert.Equal(t, cond, again, input)
	}
}

func TestParseSinglePointClosures(t *testing.T) {
	t.Parallel()

	inclusive := address.MustParse("[4]")
	exclusive := address.MustParse("(4)")

	for addr := address.Address(0); addr < 10; addr++ {
		assert.Equal(t, addr == 4, inclusive.Applies(addr), "[4] at %d", addr)
		assert.Equal(t, addr == 4, exclusive.Applies(addr), "(4) at %d", addr)
	}
}

func TestParseDocumentedExamples(t *testing.T) {
	t.Parallel()

	rng := address.MustParse("[5..10)")
	assert.False(t, rng.Applies(4))
	assert.True(t, rng.Applies(5))
	assert.True(t, rng.Applies(9))
	assert.False(t, rng.Applies(10))

	step := address.MustParse("[0..2..6)")
	for _, addr := range []address.Address{0, 2, 4} {
		assert.True(t, step.Applies(addr), "address %d", addr)
	}

	for _, addr := range []address.Address{1, 3, 5, 6} {
		assert.False(t, step.Applies(addr), "address %d", addr)
	}
}

func TestMustParsePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { address.MustParse("abc") })
}
