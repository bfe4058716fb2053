package sim

import "fmt"

// TechnicianState represents the statechart state of a technician
type TechnicianState string

const (
	TechIdle       TechnicianState = "idle"
	TechDispatched TechnicianState = "dispatched"
	TechRepairing  TechnicianState = "repairing"
)

// Technician is an autonomous maintenance agent driven as a finite-state
// machine: idle → dispatched → repairing → idle. The orchestrator steps every
// technician once per tick; transitions fire when their timers elapse.
type Technician struct {
	ID    int
	State TechnicianState

	// Target is the machine this technician is assigned to. Valid while
	// dispatched or repairing; nil otherwise.
	Target *Machine

	// ArrivalTime is when travel ends. Valid only while dispatched.
	ArrivalTime float64

	// RepairDeadline is when the repair finishes. Valid only while repairing.
	RepairDeadline float64
}

// NewTechnician creates an idle technician.
func NewTechnician(id int) *Technician {
	return &Technician{
		ID:    id,
		State: TechIdle,
	}
}

// Dispatch assigns this technician to repair target. The technician travels
// for travelDelay (which may be zero) before repairing starts.
// Dispatching a non-idle technician is a programming error.
func (t *Technician) Dispatch(now float64, target *Machine, travelDelay float64) {
	if t.State != TechIdle {
		panic(fmt.Sprintf("Dispatch: technician %d is %q, want idle", t.ID, t.State))
	}
	if target == nil {
		panic(fmt.Sprintf("Dispatch: technician %d dispatched with nil target", t.ID))
	}
	t.State = TechDispatched
	t.Target = target
	t.ArrivalTime = now + travelDelay
}

// Step advances the technician state machine one tick. sampleRepair is drawn
// exactly once, at the dispatched → repairing transition. When a repair
// finished during this step, Step returns the repaired machine and the
// technician goes idle; the caller applies the machine side effects
// synchronously. Returns nil otherwise.
func (t *Technician) Step(now float64, sampleRepair func() float64) *Machine {
	if t.State == TechDispatched && now >= t.ArrivalTime {
		t.State = TechRepairing
		t.RepairDeadline = now + sampleRepair()
	}
	if t.State == TechRepairing && now >= t.RepairDeadline {
		repaired := t.Target
		t.State = TechIdle
		t.Target = nil
		return repaired
	}
	return nil
}
