package editor_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-lineedit/pkg/editor"
)

// writerFunc is a writer whose dynamic type cannot be compared.
type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func TestWriterSink(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	sink := editor.NewWriterSink(&out)
	require.NoError(t, sink.WritePrint("a"))
	require.NoError(t, sink.WriteLine("a"))
	require.NoError(t, sink.WriteLine(""))
	assert.Empty(t, out.String())

	require.NoError(t, sink.Flush())
	assert.Equal(t, "a\na\n\n", out.String())
}

func TestSplitWriterSink(t *testing.T) {
	t.Parallel()

	var lines, prints bytes.Buffer

	sink := editor.NewSplitWriterSink(&lines, &prints)
	require.NoError(t, sink.WritePrint("p"))
	require.NoError(t, sink.WriteLine("l"))
	require.NoError(t, sink.Flush())

	assert.Equal(t, "l\n", lines.String())
	assert.Equal(t, "p\n", prints.String())
}

func TestWriterSinkUncomparableWriter(t *testing.T) {
	t.Parallel()

	var got []byte

	collect := writerFunc(func(p []byte) (int, error) {
		got = append(got, p...)

		return len(p), nil
	})

	assert.NotPanics(t, func() {
		sink := editor.NewWriterSink(collect)
		require.NoError(t, sink.WriteLine("x"))
		require.NoError(t, sink.Flush())
	})
	assert.Equal(t, "x\n", string(got))

	got = nil

	assert.NotPanics(t, func() {
		sink := editor.NewSplitWriterSink(collect, collect)
		require.NoError(t, sink.WriteLine("l"))
		require.NoError(t, sink.WritePrint("p"))
		require.NoError(t, sink.Flush())
	})
	assert.Equal(t, "l\np\n", string(got))
}
