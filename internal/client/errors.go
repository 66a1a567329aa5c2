package client

import "errors"

var (
	// ErrUnknownCommand is returned for a command name the client does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command gets missing or malformed arguments.
	ErrUsage = errors.New("invalid usage")
)
