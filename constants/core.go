package constants

import "time"

// Grid dimensions, fixed for the lifetime of the process
const (
	// Cols is the number of addressable columns in a frame
	Cols = 40

	// Rows is the number of addressable rows in a frame
	Rows = 20
)

// Simulation & Render Pipeline
const (
	// TickInterval is the minimal sleep between simulation ticks (caps the loop near 1000 ticks/s)
	TickInterval = 1 * time.Millisecond

	// FrameQueueSize is the hand-off buffer between the simulation and render goroutines
	FrameQueueSize = 1024
)
