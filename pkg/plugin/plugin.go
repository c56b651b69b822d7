package plugin

import (
	"context"
)

// Metadata describes a plugin to its host.
type Metadata struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Version     string `json:"version" yaml:"version" mapstructure:"version"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
	Author      string `json:"author" yaml:"author" mapstructure:"author"`
}

// Describable is implemented by plugins that expose Metadata.
type Describable interface {
	Metadata() Metadata
}

// Attachable is implemented by plugins that want lifecycle callbacks.
// Neither callback returns anything the host must act on.
type Attachable interface {
	// OnAttach is called once the host has registered the plugin.
	OnAttach(ctx context.Context)

	// OnDetach is called when the host removes the plugin.
	OnDetach(ctx context.Context)
}

// Invokable is implemented by plugins whose functions can be called by name.
type Invokable interface {
	Operations() []Operation
}

// Plugin is what a host accepts for registration. Hosts discover Invokable
// with a type assertion.
type Plugin interface {
	Describable
	Attachable
}
