// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/factory-sim/factory-sim/sim/series"
)

// Simulator is the core object that holds simulation time, system state, and
// the event loop. It owns the authoritative machine state: the production
// line moves the machine between idle and busy, the periodic tick applies
// breakdown and repair-completion transitions. Each Simulator is fully
// self-contained, so independent replications never share state.
type Simulator struct {
	Config Config

	Clock      float64
	EventQueue *EventHeap

	WaitQ       *WaitQueue
	Machine     *Machine
	Technicians []*Technician

	Metrics *Metrics
	Series  *series.Series
	RNG     *PartitionedRNG

	// Duration samplers, supplied by the caller
	arrival DurationSampler
	service DurationSampler
	repair  DurationSampler

	health HealthParams

	// Per-simulator event counter for deterministic tie-breaking
	nextEventID uint64
	nextPartID  int

	// Service slot: at most one part, guarded by the attempt token.
	// A breakdown bumps the token, so the completion event scheduled for the
	// cancelled attempt no longer matches and becomes a no-op.
	inService      *Part
	serviceAttempt uint64

	// Repair coordination: at most one technician assigned to the machine,
	// at most one outstanding dispatch.
	assigned        *Technician
	pendingDispatch bool
	brokenAt        float64

	started bool
}

// NewSimulator validates the configuration and assembles a simulator.
// The three samplers feed interarrival, service, and repair durations.
func NewSimulator(cfg Config, arrival, service, repair DurationSampler) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if arrival == nil || service == nil || repair == nil {
		return nil, fmt.Errorf("all duration samplers must be non-nil")
	}

	s := &Simulator{
		Config:      cfg,
		EventQueue:  NewEventHeap(),
		WaitQ:       &WaitQueue{},
		Machine:     NewMachine(cfg.InitialHealth),
		Technicians: make([]*Technician, 0, cfg.NumTechnicians),
		Metrics:     NewMetrics(),
		Series:      series.New(),
		RNG:         NewPartitionedRNG(cfg.Seed),
		arrival:     arrival,
		service:     service,
		repair:      repair,
		health:      cfg.healthParams(),
	}
	for i := 0; i < cfg.NumTechnicians; i++ {
		s.Technicians = append(s.Technicians, NewTechnician(i))
		s.Metrics.RepairTicks[i] = 0
	}
	return s, nil
}

// newEventID generates the next event ID for this simulator.
func (s *Simulator) newEventID() uint64 {
	s.nextEventID++
	return s.nextEventID
}

// Schedule adds an event to the simulator's event queue.
func (s *Simulator) Schedule(e Event) {
	s.EventQueue.Schedule(e)
}

func (s *Simulator) scheduleTick(at float64) {
	s.Schedule(NewTickEvent(at, s.newEventID()))
}

func (s *Simulator) scheduleArrival(at float64) {
	s.Schedule(NewPartArrivalEvent(at, s.newEventID()))
}

func (s *Simulator) scheduleServiceAttempt(at float64) {
	s.Schedule(NewServiceAttemptEvent(at, s.newEventID()))
}

func (s *Simulator) scheduleCompletion(at float64, part *Part, attempt uint64) {
	s.Schedule(NewServiceCompletionEvent(at, s.newEventID(), part, attempt))
}

// Run executes the simulation up to the configured horizon.
func (s *Simulator) Run() {
	s.RunUntil(s.Config.Horizon)
}

// RunUntil repeatedly pops the earliest event, advances the clock, and
// executes it, until no event remains at or before horizon. Events beyond
// horizon stay queued, so RunUntil may be called again with a later horizon.
func (s *Simulator) RunUntil(horizon float64) {
	if !s.started {
		s.started = true
		s.scheduleArrival(s.Clock)
		s.scheduleTick(s.Clock + s.Config.Dt)
	}

	for s.EventQueue.Len() > 0 {
		if s.EventQueue.Peek().Timestamp() > horizon {
			break
		}
		ev := s.EventQueue.PopNext()
		if ev.Timestamp() < s.Clock {
			panic(fmt.Sprintf("clock went backwards: %v < %v", ev.Timestamp(), s.Clock))
		}
		s.Clock = ev.Timestamp()
		logrus.Debugf("[t=%.2f] executing %T", s.Clock, ev)
		ev.Execute(s)
	}

	if horizon > s.Metrics.EndTime {
		s.Metrics.EndTime = horizon
	}
	logrus.Infof("[t=%.2f] simulation ended", s.Clock)
}

// handleTick runs one orchestrator step in strict internal order:
// (1) advance health, (2) threshold check and dispatch, (3) step every
// technician. The fixed order prevents a part from completing against an
// already-below-threshold health value.
func (s *Simulator) handleTick(e *TickEvent) {
	now := e.Timestamp()

	// (1) Health dynamics
	repairing := 0
	for _, t := range s.Technicians {
		if t.State == TechRepairing && t.Target == s.Machine {
			repairing++
		}
	}
	if repairing > 1 {
		panic(fmt.Sprintf("%d technicians repairing one machine", repairing))
	}
	busy := s.Machine.State == MachineBusy
	health, breached := s.health.Step(s.Machine.Health, s.Config.Dt, busy, repairing)
	s.Machine.Health = health

	// (2) Threshold check, then dispatch
	if breached && s.Machine.State != MachineBroken {
		logrus.Infof("[t=%.2f] machine health critical (%.1f), production halted", now, health)
		s.Machine.MarkBroken()
		s.brokenAt = now
		s.Metrics.Breakdowns++
		s.interruptService(now)
		if s.pendingDispatch || s.assigned != nil {
			panic("breakdown while a dispatch is already outstanding")
		}
		s.pendingDispatch = true
	}
	if s.pendingDispatch {
		s.tryDispatch(now)
	}

	// (3) Step technicians in identity order, applying repair-completion
	// side effects synchronously
	for _, t := range s.Technicians {
		if t.State == TechRepairing {
			s.Metrics.RepairTicks[t.ID]++
		}
		repaired := t.Step(now, func() float64 {
			return s.repair.Sample(s.RNG.ForSubsystem(SubsystemRepair))
		})
		if repaired != nil && repaired == s.Machine {
			s.completeRepair(now, t)
		}
	}

	s.recordTick(now)
	s.scheduleTick(now + s.Config.Dt)
}

// tryDispatch assigns the first idle technician in identity order. If none
// is idle the dispatch stays pending and is retried next tick.
func (s *Simulator) tryDispatch(now float64) {
	if s.assigned != nil {
		panic("tryDispatch: duplicate outstanding dispatch")
	}
	for _, t := range s.Technicians {
		if t.State == TechIdle {
			t.Dispatch(now, s.Machine, s.Config.TravelDelay)
			s.assigned = t
			s.pendingDispatch = false
			logrus.Infof("[t=%.2f] technician %d dispatched", now, t.ID)
			return
		}
	}
	logrus.Debugf("[t=%.2f] no idle technician, dispatch pending", now)
}

// completeRepair applies the repair-completion side effects: the machine
// returns to idle at full health and the production line resumes.
func (s *Simulator) completeRepair(now float64, t *Technician) {
	if s.assigned != t {
		panic(fmt.Sprintf("repair completed by unassigned technician %d", t.ID))
	}
	s.Machine.CompleteRepair()
	s.assigned = nil
	s.Metrics.BreakdownDurations = append(s.Metrics.BreakdownDurations, now-s.brokenAt)

	logrus.Infof("[t=%.2f] technician %d finished repair, machine back in service", now, t.ID)

	s.scheduleServiceAttempt(now)
}

// Snapshot is the read-only per-tick view exposed to external collaborators.
type Snapshot struct {
	Clock          float64
	MachineState   MachineState
	Health         float64
	QueueLength    int
	TechStates     []TechnicianState
	PartsCreated   int
	PartsCompleted int
}

// Snapshot returns the current observable system state.
func (s *Simulator) Snapshot() Snapshot {
	states := make([]TechnicianState, len(s.Technicians))
	for i, t := range s.Technicians {
		states[i] = t.State
	}
	return Snapshot{
		Clock:          s.Clock,
		MachineState:   s.Machine.State,
		Health:         s.Machine.Health,
		QueueLength:    s.WaitQ.Len(),
		TechStates:     states,
		PartsCreated:   s.Metrics.PartsCreated,
		PartsCompleted: s.Metrics.PartsCompleted,
	}
}

// recordTick appends the per-tick record to the time series.
func (s *Simulator) recordTick(now float64) {
	var idle, dispatched, repairing int
	for _, t := range s.Technicians {
		switch t.State {
		case TechIdle:
			idle++
		case TechDispatched:
			dispatched++
		case TechRepairing:
			repairing++
		}
	}
	s.Series.Append(series.Record{
		Clock:           now,
		Health:          s.Machine.Health,
		MachineState:    string(s.Machine.State),
		QueueLength:     s.WaitQ.Len(),
		TechsIdle:       idle,
		TechsDispatched: dispatched,
		TechsRepairing:  repairing,
		PartsCompleted:  s.Metrics.PartsCompleted,
	})
}
