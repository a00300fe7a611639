package app

import "fmt"

// NoDeviceError reports that no capture device is attached or it has not been queried.
type NoDeviceError struct{}

func (*NoDeviceError) Error() string {
	return "no capture device available"
}

// UnresolvableError reports a display mode or video style unknown to the device catalog.
type UnresolvableError struct {
	What string
}

func (e *UnresolvableError) Error() string {
	return fmt.Sprintf("%s is not supported by the capture device", e.What)
}
