package session

import (
	"fmt"
	"time"

	"github.com/ugparu/recdl/utils/lifecycle"
)

// NoLimit records until stopped.
const NoLimit time.Duration = -1

// StopLimit bounds a requested recording length by the maximum duration in minutes. A
// maximum of zero or less yields a zero limit.
func StopLimit(requestedSeconds, maxDurationMinutes int) time.Duration {
	limit := maxDurationMinutes * 60 //nolint:mnd
	if limit > requestedSeconds {
		limit = requestedSeconds
	}
	return time.Duration(max(limit, 0)) * time.Second
}

// stopTimer fires once after limit unless closed first.
type stopTimer struct {
	limit time.Duration
	gen   uint64
	clock *time.Timer
	fire  func(gen uint64)
}

func (st *stopTimer) Step(stopChan <-chan struct{}) error {
	select {
	case <-stopChan:
	case <-st.clock.C:
		go st.fire(st.gen)
	}
	return &lifecycle.BreakError{}
}

func (st *stopTimer) Release() {
	if st.clock != nil {
		st.clock.Stop()
	}
}

func (st *stopTimer) String() string {
	return fmt.Sprintf("STOP_TIMER gen=%d", st.gen)
}
