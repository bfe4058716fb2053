package sim

import "fmt"

// MachineState represents machine availability
type MachineState string

const (
	MachineIdle   MachineState = "idle"
	MachineBusy   MachineState = "busy"
	MachineBroken MachineState = "broken"
)

// Machine is the single-capacity resource of the production line.
// State is the single source of truth for availability; no component keeps a
// shadow copy. Transitions are role-split: the production line moves the
// machine between idle and busy, the orchestrator between broken and idle.
// An invalid transition means two writers disagreed about ownership and is a
// programming error, so it panics.
type Machine struct {
	State  MachineState
	Health float64 // in [0, 100]
}

// NewMachine creates an idle machine at the given health.
func NewMachine(initialHealth float64) *Machine {
	return &Machine{
		State:  MachineIdle,
		Health: initialHealth,
	}
}

// StartService transitions idle → busy. Production-line writer.
func (m *Machine) StartService() {
	if m.State != MachineIdle {
		panic(fmt.Sprintf("StartService: machine must be idle, got %q", m.State))
	}
	m.State = MachineBusy
}

// FinishService transitions busy → idle. Production-line writer.
func (m *Machine) FinishService() {
	if m.State != MachineBusy {
		panic(fmt.Sprintf("FinishService: machine must be busy, got %q", m.State))
	}
	m.State = MachineIdle
}

// MarkBroken transitions idle|busy → broken. Orchestrator writer, invoked on
// a threshold breach.
func (m *Machine) MarkBroken() {
	if m.State == MachineBroken {
		panic("MarkBroken: machine already broken")
	}
	if m.State != MachineIdle && m.State != MachineBusy {
		panic(fmt.Sprintf("MarkBroken: machine state uninitialized: %q", m.State))
	}
	m.State = MachineBroken
}

// CompleteRepair transitions broken → idle and restores full health.
// Orchestrator writer, invoked as a repair-completion side effect.
func (m *Machine) CompleteRepair() {
	if m.State != MachineBroken {
		panic(fmt.Sprintf("CompleteRepair: machine must be broken, got %q", m.State))
	}
	m.State = MachineIdle
	m.Health = FullHealth
}
