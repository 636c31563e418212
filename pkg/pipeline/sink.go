package pipeline

import (
	"context"
	"time"

	"github.com/askiada/go-lineedit/pkg/pipeline/model"
)

// AddSink adds the last step of a branch of the pipeline. sinkFn is called for every element of input, in order.
func AddSink[I any](pipe *Pipeline, name string, input *model.Step[I], sinkFn func(ctx context.Context, input I) error) error {
	if pipe == nil {
		return ErrPipelineMustBeSet
	}

	if input == nil {
		return ErrInputMustBeSet
	}

	step := &model.StepInfo{
		Type:       model.SinkStepType,
		Name:       name,
		Concurrent: 1,
	}
	parent := parentDetails(input)

	err := pipe.prepareSink(parent, step)
	if err != nil {
		return err
	}

	errC := make(chan error, 1)
	pipe.errcList.add(newErrorChan(name, errC))

	pipe.goFn = append(pipe.goFn, func(ctx context.Context) {
		defer close(errC)

		err := runSink(ctx, pipe, parent, step, input, sinkFn)
		if err != nil {
			errC <- err

			return
		}

		err = pipe.afterSink(step)
		if err != nil {
			errC <- err
		}
	})

	return nil
}

func runSink[I any](ctx context.Context, pipe *Pipeline, parent, step *model.StepInfo, input *model.Step[I], sinkFn func(ctx context.Context, input I) error) error {
	for {
		startInputChan := time.Now()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-input.Output:
			if !ok {
				return nil
			}

			endInputChan := time.Since(startInputChan)
			startFn := time.Now()

			err := sinkFn(ctx, in)
			if err != nil {
				return err
			}

			err = pipe.onSinkOutput(parent, step, endInputChan, time.Since(startFn))
			if err != nil {
				return err
			}
		}
	}
}
