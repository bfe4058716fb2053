// Package series provides per-tick snapshot recording for external
// reporting. This package has no dependencies on sim/ — it stores pure data
// types consumed by display and analysis collaborators.
package series

// Record captures the observable system state at one tick.
type Record struct {
	Clock        float64
	Health       float64
	MachineState string
	QueueLength  int

	TechsIdle       int
	TechsDispatched int
	TechsRepairing  int

	PartsCompleted int
}
