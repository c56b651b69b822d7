package plugin

import (
	"context"
)

// ParamType is the wire-level kind of an operation parameter.
type ParamType string

const (
	ParamNumber  ParamType = "number"
	ParamInteger ParamType = "integer"
	ParamNumbers ParamType = "number[]"
	ParamPoint   ParamType = "point"
)

// ResultType is the wire-level kind of an operation result.
type ResultType string

const (
	ResultNumber ResultType = "number"
	ResultBool   ResultType = "boolean"
	ResultPoint  ResultType = "point"
)

// InvokeFunc runs an operation with arguments keyed by parameter name.
type InvokeFunc func(ctx context.Context, args map[string]any) (any, error)

// Param describes one named argument of an Operation.
type Param struct {
	Name        string    `json:"name" yaml:"name" mapstructure:"name"`
	Type        ParamType `json:"type" yaml:"type" mapstructure:"type"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Optional    bool      `json:"optional,omitempty" yaml:"optional,omitempty" mapstructure:"optional"`
}

// Operation is one entry in a plugin's callable catalog.
type Operation struct {
	Name        string     `json:"name" yaml:"name" mapstructure:"name"`
	Description string     `json:"description" yaml:"description" mapstructure:"description"`
	Params      []Param    `json:"params" yaml:"params" mapstructure:"params"`
	Returns     ResultType `json:"returns" yaml:"returns" mapstructure:"returns"`
	Invoke      InvokeFunc `json:"-" yaml:"-" mapstructure:"-"`
}

// Find returns the operation called name from ops.
func Find(ops []Operation, name string) (Operation, bool) {
	for _, op := range ops {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}
