//go:build windows

package main

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	processPowerThrottling               = 4
	processPowerThrottlingExecutionSpeed = 0x1
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procSetProcessInformation = kernel32.NewProc("SetProcessInformation")
)

type processPowerThrottlingState struct {
	Version     uint32
	ControlMask uint32
	StateMask   uint32
}

func setPriorityClass(class uint32) error {
	return windows.SetPriorityClass(windows.CurrentProcess(), class)
}

// disablePowerThrottling turns off Efficiency Mode (Windows 10 1709+) so lanes keep full clock speed.
func disablePowerThrottling() error {
	state := processPowerThrottlingState{
		Version:     1,
		ControlMask: processPowerThrottlingExecutionSpeed,
		StateMask:   0, // 0 = disable throttling
	}

	ret, _, err := procSetProcessInformation.Call(
		uintptr(windows.CurrentProcess()),
		processPowerThrottling,
		uintptr(unsafe.Pointer(&state)),
		unsafe.Sizeof(state),
	)
	if ret == 0 {
		return err
	}
	return nil
}

// raisePriority moves the process to high priority, falling back to above
// normal, and disables power throttling. Not REALTIME: that can freeze the system.
func raisePriority() error {
	if err := setPriorityClass(windows.HIGH_PRIORITY_CLASS); err != nil {
		if err := setPriorityClass(windows.ABOVE_NORMAL_PRIORITY_CLASS); err != nil {
			return err
		}
	}
	return disablePowerThrottling()
}
