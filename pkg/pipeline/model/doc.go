// Package model provides the data structures shared by the pipeline package and its options:
// the steps, their description and the interface a pipeline option implements.
package model
