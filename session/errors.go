package session

import "fmt"

// BusyError rejects an operation issued while another one is in flight.
type BusyError struct {
	Op string
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("session busy, %s rejected", e.Op)
}

type NotConfiguredError struct{}

func (*NotConfiguredError) Error() string {
	return "no capture device configured"
}

type StartedAlreadyError struct{}

func (*StartedAlreadyError) Error() string {
	return "capture session started already"
}

type NotStartedError struct{}

func (*NotStartedError) Error() string {
	return "capture session not started"
}

type RecordingAlreadyError struct{}

func (*RecordingAlreadyError) Error() string {
	return "recording in progress already"
}

type NotRecordingError struct{}

func (*NotRecordingError) Error() string {
	return "not recording"
}

// DeviceRefusedError reports that the capture device did not perform Op.
type DeviceRefusedError struct {
	Op string
}

func (e *DeviceRefusedError) Error() string {
	return fmt.Sprintf("capture device refused to %s", e.Op)
}
