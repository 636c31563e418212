package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-lineedit/pkg/pipeline/model"
)

func sequentialOneToManyFn[I any, O any](ctx context.Context, pipe *Pipeline, goIdx int, input *model.Step[I], output *model.Step[O], oneToManyFn func(context.Context, I) ([]O, error)) error {
	parent := parentDetails(input)

	for {
		start := time.Now()
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "go routine %d", goIdx)
		case in, ok := <-input.Output:
			if !ok {
				return nil
			}

			startFn := time.Now()

			outs, err := oneToManyFn(ctx, in)
			if err != nil {
				return errors.Wrapf(err, "go routine %d", goIdx)
			}

			endFn := time.Since(startFn)

			for _, out := range outs {
				// we check the context again to make sure all go routines currently running
				// stop to add new elements to the pipeline
				select {
				case <-ctx.Done():
					return errors.Wrapf(ctx.Err(), "go routine %d", goIdx)
				case output.Output <- out:
				}
			}

			err = pipe.onStepOutput(parent, output.Details, time.Since(start)-endFn, endFn)
			if err != nil {
				return errors.Wrapf(err, "go routine %d", goIdx)
			}
		}
	}
}

func concurrentOneToManyFn[I any, O any](ctx context.Context, pipe *Pipeline, input *model.Step[I], output *model.Step[O], oneToManyFn func(context.Context, I) ([]O, error)) error {
	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(output.Details.Concurrent)
	// starts many consumers concurrently
	// each consumer stops as soon as an error happens
	for goIdx := 0; goIdx < output.Details.Concurrent; goIdx++ {
		errGrp.Go(func() error {
			return sequentialOneToManyFn(dCtx, pipe, goIdx, input, output, oneToManyFn)
		})
	}

	return errGrp.Wait()
}

func oneToMany[I any, O any](ctx context.Context, pipe *Pipeline, input *model.Step[I], output *model.Step[O], oneToManyFn func(context.Context, I) ([]O, error)) error {
	if output.Details.Concurrent <= 1 {
		return sequentialOneToManyFn(ctx, pipe, 0, input, output, oneToManyFn)
	}

	return concurrentOneToManyFn(ctx, pipe, input, output, oneToManyFn)
}

func addStep[I any, O any](p *Pipeline, name string, input *model.Step[I], oneToManyFn func(context.Context, I) ([]O, error), opts ...StepOption[O]) (*model.Step[O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	if input == nil {
		return nil, ErrInputMustBeSet
	}

	step := &model.Step[O]{
		Details: &model.StepInfo{
			Type:       model.NormalStepType,
			Name:       name,
			Concurrent: 1,
		},
		Output: make(chan O),
	}

	for _, opt := range opts {
		opt(step)
	}

	if step.Details.Concurrent < 1 {
		step.Details.Concurrent = 1
	}

	err := p.prepareStep(parentDetails(input), step.Details)
	if err != nil {
		return nil, err
	}

	errC := make(chan error, 1)
	p.errcList.add(newErrorChan(name, errC))

	p.goFn = append(p.goFn, func(ctx context.Context) {
		defer func() {
			close(step.Output)
			close(errC)
		}()

		err := oneToMany(ctx, p, input, step, oneToManyFn)
		if err != nil {
			errC <- err
		}
	})

	return step, nil
}

// AddStepOneToOne adds a step producing exactly one output element for each input element.
func AddStepOneToOne[I any, O any](p *Pipeline, name string, input *model.Step[I], oneToOneFn func(context.Context, I) (O, error), opts ...StepOption[O]) (*model.Step[O], error) {
	return addStep(p, name, input, func(ctx context.Context, in I) ([]O, error) {
		out, err := oneToOneFn(ctx, in)
		if err != nil {
			return nil, err
		}

		return []O{out}, nil
	}, opts...)
}

// AddStepOneToMany adds a step producing any number of output elements for each input element. With a single
// goroutine, the elements are sent downstream in order.
func AddStepOneToMany[I any, O any](p *Pipeline, name string, input *model.Step[I], oneToManyFn func(context.Context, I) ([]O, error), opts ...StepOption[O]) (*model.Step[O], error) {
	return addStep(p, name, input, oneToManyFn, opts...)
}
