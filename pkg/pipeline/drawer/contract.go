package drawer

import (
	"github.com/askiada/go-lineedit/pkg/pipeline/measure"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddStep adds a step to the pipeline drawer.
	AddStep(stepName string) error
	// AddLink adds a link between parent and child steps.
	AddLink(parentStepName, childStepName string) error
	// AddMeasure annotates the steps and links with the measured durations.
	AddMeasure(msr measure.Measure) error
	// Draw writes the pipeline graph.
	Draw() error
}
