package pipeline

import (
	"context"

	"github.com/askiada/go-lineedit/pkg/pipeline/model"
)

// AddRootStep adds a step producing the elements of the pipeline. stepFn must stop sending once ctx is done; the
// output channel is closed when stepFn returns.
func AddRootStep[O any](p *Pipeline, name string, stepFn func(ctx context.Context, rootChan chan<- O) error, opts ...StepOption[O]) (*model.Step[O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	step := &model.Step[O]{
		Details: &model.StepInfo{
			Type:       model.RootStepType,
			Name:       name,
			Concurrent: 1,
		},
		Output: make(chan O),
	}

	for _, opt := range opts {
		opt(step)
	}

	err := p.prepareStep(model.StartStep, step.Details)
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

		err := stepFn(ctx, step.Output)
		if err != nil {
			errC <- err
		}
	})

	return step, nil
}
