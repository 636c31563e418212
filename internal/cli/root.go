// Package cli holds the lineedit command.
package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-lineedit/internal/config"
	"github.com/askiada/go-lineedit/internal/ctxlog"
	"github.com/askiada/go-lineedit/internal/report"
	"github.com/askiada/go-lineedit/pkg/command"
	"github.com/askiada/go-lineedit/pkg/editor"
	"github.com/askiada/go-lineedit/pkg/pipeline/drawer"
	"github.com/askiada/go-lineedit/pkg/pipeline/measure"
	"github.com/askiada/go-lineedit/pkg/pipeline/model"
)

const longDesc = `lineedit reads lines from stdin and writes them to stdout after running a list of commands on each of them.

A command is a name, delete or print, optionally followed by an address condition:

  [n]           line n
  [a..b)        lines a to b, each end inclusive with [ ] or exclusive with ( )
  [a..s..b]     every s-th line from a to b

Lines are numbered from 0. A deleted line is written as an empty line and print writes the line once more.`

type flags struct {
	script      string
	measure     bool
	graph       string
	verbose     bool
	maxLineSize int
}

// Root returns the lineedit command.
func Root() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "lineedit [command [address]]...",
		Short:         "Delete or print lines of a stream by address",
		Long:          longDesc,
		Example:       "  lineedit delete '[0..2]' print '(5)' < input.txt\n  lineedit -f script.yaml --measure < input.txt",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	root.Flags().StringVarP(&f.script, "script", "f", "", "YAML edit script, its commands run before the positional ones")
	root.Flags().BoolVar(&f.measure, "measure", false, "print a table of step timings on stderr")
	root.Flags().StringVar(&f.graph, "graph", "", "write the pipeline graph to this DOT file")
	root.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug messages on stderr")
	root.Flags().IntVar(&f.maxLineSize, "max-line-size", editor.DefaultMaxLineSize, "longest accepted line, in bytes")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	return root
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	logger := ctxlog.New(cmd.ErrOrStderr(), f.verbose)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	logger.DebugContext(ctx, "arguments", "args", args)

	cmds, err := f.commands(cmd, args)
	if err != nil {
		return &usageError{err}
	}

	var (
		msr  measure.Measure
		opts []model.PipelineOption
	)

	if f.measure || f.graph != "" {
		msr = measure.NewDefaultMeasure()
		opts = append(opts, measure.PipelineMeasure(msr))
	}

	if f.graph != "" {
		opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(f.graph), msr))
	}

	ed := editor.New(cmds, editor.WithMaxLineSize(f.maxLineSize), editor.WithPipelineOptions(opts...))
	err = ed.Run(ctx, cmd.InOrStdin(), editor.NewWriterSink(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	if f.measure {
		report.WriteMetrics(cmd.ErrOrStderr(), msr)
	}

	return nil
}

// commands returns the commands of the script followed by the positional ones. Script settings apply unless the
// matching flag was set.
func (f *flags) commands(cmd *cobra.Command, args []string) ([]command.Command, error) {
	var cmds []command.Command

	if f.script != "" {
		script, err := config.LoadFile(f.script)
		if err != nil {
			return nil, err
		}

		cmds, err = script.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "script %s", f.script)
		}

		if !cmd.Flags().Changed("measure") {
			f.measure = script.Measure
		}

		if !cmd.Flags().Changed("graph") {
			f.graph = script.Graph
		}
	}

	if len(args) > 0 {
		positional, err := command.ParseScript(args)
		if err != nil {
			return nil, err
		}

		cmds = append(cmds, positional...)
	}

	return cmds, nil
}
