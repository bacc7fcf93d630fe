package domain

import "github.com/rakshdevstudio/JCB/pkg/types"

// TimeSlot is a candidate appointment start time. Ephemeral, derived at
// render time, never persisted.
type TimeSlot struct {
	StartTime types.TimeString
	Available bool
}
