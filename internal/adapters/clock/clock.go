// Package clock provides the wall clock used for migration timestamps.
package clock

import (
	"time"

	"github.com/example/modgen/internal/ports/secondary"
)

// System reads the local wall clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Ensure System implements the interface
var _ secondary.Clock = System{}
