package config

import "time"

var Version = "v0.4.0"

const (
	DefaultLogLevel = "info"

	// ProgressRate is how often the interactive progress line is redrawn.
	ProgressRate = 33 * time.Millisecond
)
