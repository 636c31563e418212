package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-lineedit/pkg/address"
	"github.com/askiada/go-lineedit/pkg/command"
)

func createLines(t *testing.T, input []string) []command.Line {
	t.Helper()

	lines := make([]command.Line, len(input))
	for i, s := range input {
		lines[i] = command.Line{Addr: address.Address(i), Contents: s}
	}

	return lines
}

func condPtr(t *testing.T, spec string) *address.Condition {
	t.Helper()

	cond, err := address.Parse(spec)
	require.NoError(t, err)

	return &cond
}

func TestDelete(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		cond     *address.Condition
		input    []string
		expected []string
	}{
		"deleting first line works": {
			cond:     condPtr(t, "[0]"),
			input:    []string{"hello", "world"},
			expected: []string{"", "world"},
		},
		"address out of bounds deletes nothing": {
			cond:     condPtr(t, "[2]"),
			input:    []string{"hello", "world"},
			expected: []string{"hello", "world"},
		},
		"no address always applies": {
			input:    []string{"hello", "world"},
			expected: []string{"", ""},
		},
		"range deletes the middle": {
			cond:     condPtr(t, "(0..3)"),
			input:    []string{"a", "b", "c", "d"},
			expected: []string{"a", "", "", "d"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cmd := command.New(command.Delete, tc.cond)
			got := []command.Line{}

			for _, line := range createLines(t, tc.input) {
				got = append(got, cmd.Run(line, nil))
			}

			assert.Equal(t, createLines(t, tc.expected), got)
		})
	}
}

func TestDeleteKeepsAddress(t *testing.T) {
	t.Parallel()

	cmd := command.New(command.Delete, nil)
	got := cmd.Run(command.Line{Addr: 42, Contents: "text"}, nil)
	assert.Equal(t, command.Line{Addr: 42}, got)
}

func TestRunIdentityWhenNotApplicable(t *testing.T) {
	t.Parallel()

	printed := []string{}
	emit := func(s string) { printed = append(printed, s) }

	for _, action := range []command.Action{command.Delete, command.Print} {
		cmd := command.New(action, condPtr(t, "[5..10)"))
		line := command.Line{Addr: 3, Contents: "keep me"}
		assert.Equal(t, line, cmd.Run(line, emit), action.String())
	}

	assert.Empty(t, printed)
}

func TestPrint(t *testing.T) {
	t.Parallel()

	printed := []string{}
	emit := func(s string) { printed = append(printed, s) }
	cmd := command.New(command.Print, condPtr(t, "[0..2..4]"))

	lines := createLines(t, []string{"a", "b", "c", "d", "e"})
	for _, line := range lines {
		assert.Equal(t, line, cmd.Run(line, emit))
	}

	assert.Equal(t, []string{"a", "c", "e"}, printed)
}

func TestPrintNilEmitter(t *testing.T) {
	t.Parallel()

	cmd := command.New(command.Print, nil)
	line := command.Line{Addr: 1, Contents: "x"}
	assert.Equal(t, line, cmd.Run(line, nil))
}

func TestShouldRun(t *testing.T) {
	t.Parallel()

	always := command.New(command.Delete, nil)
	only := command.New(command.Delete, condPtr(t, "(7)"))

	for addr := address.Address(0); addr < 10; addr++ {
		assert.True(t, always.ShouldRun(addr))
		assert.Equal(t, addr == 7, only.ShouldRun(addr))
		assert.Equal(t, only.ShouldRun(addr), only.ShouldRun(addr))
	}
}

func TestNewCopiesCondition(t *testing.T) {
	t.Parallel()

	cond := address.LineNumber(1)
	cmd := command.New(command.Delete, &cond)
	cond = address.LineNumber(2)

	got, ok := cmd.Condition()
	require.True(t, ok)
	assert.Equal(t, address.LineNumber(1), got)
	assert.True(t, cmd.ShouldRun(1))
	assert.False(t, cmd.ShouldRun(2))
}

func TestCommandString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "print", command.New(command.Print, nil).String())
	assert.Equal(t, "delete [1..3)", command.New(command.Delete, condPtr(t, "[1..3)")).String())
}

func TestActionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "delete", command.Delete.String())
	assert.Equal(t, "print", command.Print.String())
	assert.Equal(t, "unknown", command.Action(0).String())
}
