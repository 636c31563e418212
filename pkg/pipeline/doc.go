// Package pipeline provides a pipeline for processing data.
//
// The pipeline package offers a convenient way to process data using a series of steps. A root step produces the
// elements, each following step performs a specific operation on them and passes the result to the next step, and a
// sink consumes the final elements.
//
// Steps are connected with unbuffered channels, so each step holds at most one element at a time and the memory used
// by a pipeline does not depend on the number of elements. A step runs in a single goroutine unless configured with
// StepConcurrency, in which case the order of its elements is not preserved.
//
// The pipeline stops on the first error and returns it prefixed with the name of the failing step.
//
// Pipeline options, such as the measure and drawer packages, observe the steps as they are added and run.
package pipeline
