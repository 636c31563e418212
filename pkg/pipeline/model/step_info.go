package model

// StepType identifies the role of a step in the pipeline.
type StepType string

const (
	RootStepType   StepType = "root"
	NormalStepType StepType = "step"
	SinkStepType   StepType = "sink"
)

// StepInfo describes a step to the pipeline options.
type StepInfo struct {
	Type       StepType
	Name       string
	Concurrent int
}

var (
	// StartStep is the virtual parent of every root step.
	StartStep = &StepInfo{Name: "start"}
	// EndStep is the virtual child of every sink.
	EndStep = &StepInfo{Name: "end"}
)

// Step is a step of the pipeline. Output is closed once the step is done.
type Step[O any] struct {
	Output  chan O
	Details *StepInfo
}
