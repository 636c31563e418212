// Package config loads edit scripts from YAML.
package config

import (
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/askiada/go-lineedit/pkg/command"
)

var ErrEmptyScript = errors.New("script is empty")

var validate = validator.New(validator.WithRequiredStructEnabled())

// CommandSpec is a command as written in a script. Address is optional.
type CommandSpec struct {
	Name    string `yaml:"name"              validate:"required"`
	Address string `yaml:"address,omitempty"`
}

// Script is an edit script.
//
//	commands:
//	  - name: delete
//	    address: "[0..2]"
//	  - name: print
//	measure: true
//	graph: edit.dot
type Script struct {
	Commands []CommandSpec `yaml:"commands"          validate:"required,min=1,dive"`
	Measure  bool          `yaml:"measure,omitempty"`
	Graph    string        `yaml:"graph,omitempty"   validate:"omitempty,endswith=.dot"`
}

// Load decodes and validates a script. Unknown fields are rejected.
func Load(r io.Reader) (*Script, error) {
	script := &Script{}

	err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(script)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}

		return nil, errors.Wrap(err, "unable to decode script")
	}

	err = validate.Struct(script)
	if err != nil {
		return nil, errors.Wrap(err, "invalid script")
	}

	return script, nil
}

// LoadFile loads the script stored at path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open script")
	}
	defer f.Close()

	script, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "script %s", path)
	}

	return script, nil
}

// Build parses the commands of the script, in order.
func (s *Script) Build() ([]command.Command, error) {
	cmds := make([]command.Command, 0, len(s.Commands))

	for i, spec := range s.Commands {
		tokens := []string{spec.Name}
		if spec.Address != "" {
			tokens = append(tokens, spec.Address)
		}

		cmd, err := command.Parse(tokens)
		if err != nil {
			return nil, errors.Wrapf(err, "command %d", i)
		}

		cmds = append(cmds, cmd)
	}

	return cmds, nil
}
