package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ugparu/recdl/utils/lifecycle"
)

// Status is a point in time view of the session.
type Status struct {
	SessionID uuid.UUID     `json:"sessionId"`
	Running   bool          `json:"running"`
	Recording bool          `json:"recording"`
	Path      string        `json:"path,omitempty"`
	Since     time.Time     `json:"since,omitzero"`
	Remaining time.Duration `json:"remaining,omitempty"`
	Limited   bool          `json:"limited"`
}

const minuteDisplayThreshold = 120 * time.Second

// Text renders the status line shown while recording. It is empty when idle.
func (st Status) Text() string {
	switch {
	case !st.Recording:
		return ""
	case !st.Limited:
		return "Recording..."
	case st.Remaining > minuteDisplayThreshold:
		return fmt.Sprintf("Recording remains %d minute(s)...", int(st.Remaining/time.Minute))
	default:
		return fmt.Sprintf("Recording remains %d second(s)...", int(st.Remaining/time.Second))
	}
}

// statusPoller republishes the session status on every tick.
type statusPoller struct {
	interval time.Duration
	ticker   *time.Ticker
	publish  func()
}

func (sp *statusPoller) Step(stopChan <-chan struct{}) error {
	select {
	case <-stopChan:
		return &lifecycle.BreakError{}
	case <-sp.ticker.C:
		sp.publish()
	}
	return nil
}

func (sp *statusPoller) Release() {
	if sp.ticker != nil {
		sp.ticker.Stop()
	}
}

func (sp *statusPoller) String() string {
	return "STATUS_POLLER"
}
