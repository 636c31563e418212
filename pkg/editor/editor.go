package editor

import (
	"bufio"
	"context"
	"io"
	"iter"
	"math"

	"github.com/pkg/errors"

	"github.com/askiada/go-lineedit/internal/ctxlog"
	"github.com/askiada/go-lineedit/pkg/address"
	"github.com/askiada/go-lineedit/pkg/command"
	"github.com/askiada/go-lineedit/pkg/pipeline"
	"github.com/askiada/go-lineedit/pkg/pipeline/model"
)

// DefaultMaxLineSize is the longest line Run accepts by default, in bytes.
const DefaultMaxLineSize = 1 << 20

const (
	readStepName  = "read"
	editStepName  = "edit"
	writeStepName = "write"
)

// Editor applies a sequence of commands to streamed lines. It holds no state between lines, so the same Editor can
// run several streams, one after the other or concurrently.
type Editor struct {
	commands    []command.Command
	maxLineSize int
	lastAddress uint64
	opts        []model.PipelineOption
}

// Option configures an Editor.
type Option func(e *Editor)

// WithMaxLineSize sets the longest line Run accepts, in bytes. A longer line stops the run with a SourceError.
func WithMaxLineSize(size int) Option {
	return func(e *Editor) {
		e.maxLineSize = size
	}
}

// WithPipelineOptions adds options, such as measure or drawer options, to the pipeline built by Run. A pipeline
// option can only observe a single run.
func WithPipelineOptions(opts ...model.PipelineOption) Option {
	return func(e *Editor) {
		e.opts = append(e.opts, opts...)
	}
}

// New creates an editor running commands in order.
func New(commands []command.Command, opts ...Option) *Editor {
	e := &Editor{
		commands:    append([]command.Command(nil), commands...),
		maxLineSize: DefaultMaxLineSize,
		lastAddress: math.MaxUint32,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.maxLineSize < 1 {
		e.maxLineSize = DefaultMaxLineSize
	}

	return e
}

// Apply runs every command on line and returns the records to forward: one PrintRecord per print emission, in
// command order, then the LineRecord holding the final contents.
func (e *Editor) Apply(line command.Line) []Record {
	addr := line.Addr
	records := []Record{}
	emit := func(contents string) {
		records = append(records, Record{Kind: PrintRecord, Addr: addr, Text: contents})
	}

	for _, cmd := range e.commands {
		line = cmd.Run(line, emit)
	}

	return append(records, Record{Kind: LineRecord, Addr: addr, Text: line.Contents})
}

// Transform returns the records of lines, computed as the sequence is consumed. The sequence stops with
// ErrAddressOverflow if lines holds more lines than there are addresses.
func (e *Editor) Transform(lines iter.Seq[string]) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		var next uint64

		for contents := range lines {
			if next > e.lastAddress {
				yield(Record{}, ErrAddressOverflow)

				return
			}

			for _, rec := range e.Apply(command.Line{Addr: address.Address(next), Contents: contents}) {
				if !yield(rec, nil) {
					return
				}
			}

			next++
		}
	}
}

// Run reads the lines of src, applies the commands and writes the records to dst. It stops on the first read or
// write error and when ctx is done, and returns once nothing writes to dst anymore.
//
// The lines read before a read error are still edited and written. dst is flushed in every case, so the records
// written before an error reach the output.
func (e *Editor) Run(ctx context.Context, src io.Reader, dst Sink) error {
	logger := ctxlog.FromContext(ctx)

	for i, cmd := range e.commands {
		logger.DebugContext(ctx, "command", "index", i, "command", cmd.String())
	}

	pipe, err := pipeline.New(e.opts...)
	if err != nil {
		return errors.Wrap(err, "unable to create pipeline")
	}

	var (
		read, written uint64
		readErr       error
	)

	lines, err := pipeline.AddRootStep(pipe, readStepName, e.readLines(src, &read, &readErr))
	if err != nil {
		return errors.Wrap(err, "unable to add read step")
	}

	records, err := pipeline.AddStepOneToMany(pipe, editStepName, lines, func(_ context.Context, line command.Line) ([]Record, error) {
		return e.Apply(line), nil
	})
	if err != nil {
		return errors.Wrap(err, "unable to add edit step")
	}

	err = pipeline.AddSink(pipe, writeStepName, records, func(_ context.Context, rec Record) error {
		err := writeRecord(dst, rec)
		if err != nil {
			return &SinkError{Record: rec, Err: err}
		}

		written++

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "unable to add write step")
	}

	runErr := pipe.Run(ctx)
	if runErr == nil && readErr != nil {
		runErr = errors.Wrap(readErr, readStepName)
	}

	err = dst.Flush()
	if err != nil {
		if runErr == nil {
			return &SinkError{Err: err}
		}

		logger.WarnContext(ctx, "unable to flush output", "error", err)
	}

	if runErr != nil {
		return runErr
	}

	logger.InfoContext(ctx, "edit finished", "lines", read, "records", written)

	return nil
}

// readLines returns the read step. A read error ends the step without an error and is stored in readErr, so the
// lines already read go through the rest of the pipeline.
func (e *Editor) readLines(src io.Reader, read *uint64, readErr *error) func(context.Context, chan<- command.Line) error {
	return func(ctx context.Context, rootChan chan<- command.Line) error {
		scanner := bufio.NewScanner(src)
		scanner.Buffer(make([]byte, 0, min(bufio.MaxScanTokenSize, e.maxLineSize)), e.maxLineSize)

		var next uint64

		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			if !scanner.Scan() {
				break
			}

			if next > e.lastAddress {
				*readErr = errors.Wrapf(ErrAddressOverflow, "line %d", next)

				return nil
			}

			line := command.Line{Addr: address.Address(next), Contents: scanner.Text()}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case rootChan <- line:
			}

			next++
			*read = next
		}

		err := scanner.Err()
		if err != nil {
			*readErr = &SourceError{Addr: address.Address(next), Err: err}
		}

		return nil
	}
}

func writeRecord(dst Sink, rec Record) error {
	if rec.Kind == PrintRecord {
		return dst.WritePrint(rec.Text)
	}

	return dst.WriteLine(rec.Text)
}
