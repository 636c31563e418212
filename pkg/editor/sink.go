package editor

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Sink receives the output of the editor.
type Sink interface {
	// WriteLine writes the final contents of a line.
	WriteLine(contents string) error
	// WritePrint writes the contents emitted by a print command.
	WritePrint(contents string) error
	// Flush is called once every record was written.
	Flush() error
}

// WriterSink writes every record on its own line.
type WriterSink struct {
	lines  *bufio.Writer
	prints *bufio.Writer
}

// NewWriterSink creates a sink writing lines and print emissions to w, in stream order.
func NewWriterSink(w io.Writer) *WriterSink {
	buf := bufio.NewWriter(w)

	return &WriterSink{lines: buf, prints: buf}
}

// NewSplitWriterSink creates a sink writing lines to lines and print emissions to prints. Each writer has its own
// buffer, so passing the same writer twice does not keep the stream order: use NewWriterSink instead.
func NewSplitWriterSink(lines, prints io.Writer) *WriterSink {
	return &WriterSink{lines: bufio.NewWriter(lines), prints: bufio.NewWriter(prints)}
}

func (s *WriterSink) WriteLine(contents string) error {
	return writeLine(s.lines, contents)
}

func (s *WriterSink) WritePrint(contents string) error {
	return writeLine(s.prints, contents)
}

func (s *WriterSink) Flush() error {
	err := s.lines.Flush()
	if err != nil {
		return errors.Wrap(err, "unable to flush lines")
	}

	if s.prints != s.lines {
		err = s.prints.Flush()
		if err != nil {
			return errors.Wrap(err, "unable to flush prints")
		}
	}

	return nil
}

func writeLine(w *bufio.Writer, contents string) error {
	_, err := w.WriteString(contents)
	if err != nil {
		return err
	}

	return w.WriteByte('\n')
}

var _ Sink = (*WriterSink)(nil)
