//go:build !windows

package main

import "errors"

// On non-Windows systems, process priority is set by the caller with nice.
var errPriorityUnsupported = errors.New("raising priority is only supported on Windows; use nice instead")

func raisePriority() error {
	return errPriorityUnsupported
}
