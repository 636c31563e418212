package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-lineedit/pkg/pipeline/model"
)

// Pipeline is a pipeline of steps.
type Pipeline struct {
	errcList  *errorChans
	opts      []model.PipelineOption
	startTime time.Time
	goFn      []func(ctx context.Context)
}

// New creates a new pipeline.
func New(opts ...model.PipelineOption) (*Pipeline, error) {
	pipe := &Pipeline{
		errcList:  &errorChans{},
		startTime: time.Now(),
		opts:      opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// waitForPipeline waits for all error channels to be closed and returns the first error.
// cancel is called as soon as an error is received so the other steps stop.
func waitForPipeline(cancel context.CancelFunc, errs ...*errorChan) error {
	var first error

	for err := range mergeErrors(errs...) {
		if err != nil && first == nil {
			first = err

			cancel()
		}
	}

	return first
}

// Run starts the pipeline and waits for every step to return. Every step stops as soon as ctx is done.
// On the first error, the remaining steps are cancelled and the error is returned once they all returned.
func (p *Pipeline) Run(ctx context.Context) error {
	dCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.startTime = time.Now()

	for _, fn := range p.goFn {
		go fn(dCtx)
	}

	err := waitForPipeline(cancel, p.errcList.list...)
	if err != nil {
		return err
	}

	return p.finishRun()
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}

func (p *Pipeline) prepareStep(parentStep, step *model.StepInfo) error {
	for _, opt := range p.opts {
		err := opt.PrepareStep(parentStep, step)
		if err != nil {
			return errors.Wrap(err, "unable to run before step function")
		}
	}

	return nil
}

func (p *Pipeline) onStepOutput(parentStep, step *model.StepInfo, iterationDuration, computationDuration time.Duration) error {
	for _, opt := range p.opts {
		err := opt.OnStepOutput(parentStep, step, iterationDuration, computationDuration)
		if err != nil {
			return errors.Wrap(err, "unable to run on step output function")
		}
	}

	return nil
}

func (p *Pipeline) prepareSink(parentStep, step *model.StepInfo) error {
	for _, opt := range p.opts {
		err := opt.PrepareSink(parentStep, step)
		if err != nil {
			return errors.Wrap(err, "unable to run before sink function")
		}
	}

	return nil
}

func (p *Pipeline) onSinkOutput(parentStep, step *model.StepInfo, iterationDuration, computationDuration time.Duration) error {
	for _, opt := range p.opts {
		err := opt.OnSinkOutput(parentStep, step, iterationDuration, computationDuration)
		if err != nil {
			return errors.Wrap(err, "unable to run on sink output function")
		}
	}

	return nil
}

func (p *Pipeline) afterSink(step *model.StepInfo) error {
	total := time.Since(p.startTime)

	for _, opt := range p.opts {
		err := opt.AfterSink(step, total)
		if err != nil {
			return errors.Wrap(err, "unable to run after sink function")
		}
	}

	return nil
}

// parentDetails returns the details of an input step. A step built outside the pipeline, from a plain channel,
// hangs off the start step.
func parentDetails[I any](input *model.Step[I]) *model.StepInfo {
	if input.Details == nil {
		return model.StartStep
	}

	return input.Details
}
