package main

import "errors"

// Error definitions for the pinit commands.
var (
	ErrFailedToLoadConfig = errors.New("failed to load configuration")
	ErrFailedToSetupLog   = errors.New("failed to set up logging")
)
