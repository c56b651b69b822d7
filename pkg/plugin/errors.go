package plugin

import "errors"

// ErrAlreadyRegistered is returned when a plugin ID is registered twice.
var ErrAlreadyRegistered = errors.New("plugin already registered")

// ErrPluginNotFound is returned when no plugin is registered under an ID.
var ErrPluginNotFound = errors.New("plugin not found")

// ErrOperationNotFound is returned when a plugin has no operation with the requested name.
var ErrOperationNotFound = errors.New("operation not found")

// ErrInvalidArguments is returned when call arguments cannot be decoded into an operation's parameters.
var ErrInvalidArguments = errors.New("invalid arguments")
