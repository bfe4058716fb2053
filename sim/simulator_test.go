package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T, cfg Config, arrival, service, repair DurationSampler) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg, arrival, service, repair)
	require.NoError(t, err)
	return s
}

// TestSimulator_BreakdownCycle walks the full cross-paradigm loop: busy
// degradation → threshold breach → same-tick dispatch → timed repair →
// restoration → service restart with a fresh duration.
func TestSimulator_BreakdownCycle(t *testing.T) {
	cfg := Config{
		Seed:               1,
		Horizon:            100,
		Dt:                 1.0,
		InitialHealth:      100,
		BreakdownThreshold: 20,
		RateBusy:           2.0,
		RateIdle:           0,
		RateRepair:         10,
		NumTechnicians:     1,
		TravelDelay:        0,
	}
	// One part arrives at t=0 and would occupy the machine far beyond the
	// horizon, so the machine degrades at the busy rate throughout.
	s := newTestSimulator(t, cfg,
		NewConstantSampler(1000), NewConstantSampler(1000), NewConstantSampler(4))

	s.RunUntil(50)

	// health = 100 - 2*t stays >= 20 through t=40 and breaches at t=41
	assert.Equal(t, 1, s.Metrics.Breakdowns)
	assert.Equal(t, 1, s.Metrics.Interruptions)

	var brokenRec, repairedRec bool
	for _, r := range s.Series.Records {
		switch r.Clock {
		case 41.0:
			assert.Equal(t, string(MachineBroken), r.MachineState)
			assert.Equal(t, 1, r.TechsRepairing, "dispatch and repair start on the breach tick")
			brokenRec = true
		case 45.0:
			// repair takes 4 ticks; completion restores full health
			assert.Equal(t, string(MachineIdle), r.MachineState)
			assert.Equal(t, FullHealth, r.Health)
			repairedRec = true
		}
	}
	assert.True(t, brokenRec, "missing series record for the breach tick")
	assert.True(t, repairedRec, "missing series record for the repair tick")

	require.Len(t, s.Metrics.BreakdownDurations, 1)
	assert.Equal(t, 4.0, s.Metrics.BreakdownDurations[0])

	// The interrupted part restarted with a fresh duration right after the
	// repair and is still in service at the horizon.
	require.NotNil(t, s.inService)
	assert.Equal(t, 1, s.inService.ID)
	assert.Equal(t, MachineBusy, s.Machine.State)
	assert.InDelta(t, 90.0, s.Machine.Health, 1e-9) // 5 busy ticks since restoration
}

// TestSimulator_BreakdownBeatsSameInstantCompletion pins the ordering
// guarantee end to end: when the breach tick and a completion land on the
// same instant, the breakdown wins and the part is requeued, not completed.
func TestSimulator_BreakdownBeatsSameInstantCompletion(t *testing.T) {
	cfg := Config{
		Seed:               1,
		Horizon:            100,
		Dt:                 1.0,
		InitialHealth:      100,
		BreakdownThreshold: 15,
		RateBusy:           9.0,
		RateIdle:           0,
		RateRepair:         10,
		NumTechnicians:     1,
		TravelDelay:        0,
	}
	// Service would complete at exactly t=10, the same instant health hits
	// 100 - 9*10 = 10 < 15.
	s := newTestSimulator(t, cfg,
		NewConstantSampler(1000), NewConstantSampler(10), NewConstantSampler(100))

	s.RunUntil(10)

	assert.Equal(t, 0, s.Metrics.PartsCompleted)
	assert.Equal(t, 1, s.Metrics.Interruptions)
	assert.Equal(t, MachineBroken, s.Machine.State)
	assert.Nil(t, s.inService)
	assert.Equal(t, 1, s.WaitQ.Len())
}

// TestSimulator_PendingDispatchRetries covers the no-idle-technician path:
// the dispatch stays pending each tick until a technician frees up, then
// fires on the very next tick.
func TestSimulator_PendingDispatchRetries(t *testing.T) {
	cfg := Config{
		Seed:               1,
		Horizon:            20,
		Dt:                 1.0,
		InitialHealth:      100,
		BreakdownThreshold: 20,
		RateBusy:           30,
		RateIdle:           30,
		RateRepair:         50,
		NumTechnicians:     1,
		TravelDelay:        0,
	}
	s := newTestSimulator(t, cfg,
		NewConstantSampler(10000), NewConstantSampler(10000), NewConstantSampler(2))

	// The only technician is occupied elsewhere until t=5.5.
	s.Technicians[0].State = TechRepairing
	s.Technicians[0].RepairDeadline = 5.5

	// Health breaches at t=3; the dispatch cannot be served yet.
	s.RunUntil(6)
	assert.Equal(t, MachineBroken, s.Machine.State)
	assert.True(t, s.pendingDispatch)
	assert.Equal(t, TechIdle, s.Technicians[0].State, "technician frees up on the t=6 step")

	// Next tick the pending dispatch is served.
	s.RunUntil(7)
	assert.False(t, s.pendingDispatch)
	assert.Equal(t, TechRepairing, s.Technicians[0].State)
	assert.Equal(t, s.Technicians[0], s.assigned)

	// Repair finishes at t=9: machine restored, downtime covers t=3..9.
	s.RunUntil(9)
	assert.Equal(t, FullHealth, s.Machine.Health)
	require.Len(t, s.Metrics.BreakdownDurations, 1)
	assert.Equal(t, 6.0, s.Metrics.BreakdownDurations[0])
}

// TestSimulator_HealthBoundsAndExactlyOnceCompletion runs a stochastic shift
// and checks the standing invariants.
func TestSimulator_HealthBoundsAndExactlyOnceCompletion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Horizon = 200
	s := newTestSimulator(t, cfg,
		NewGaussianSampler(5.0, 2.0, 0.1),
		NewUniformSampler(2.0, 4.0),
		NewGaussianSampler(15.0, 5.0, 1.0))

	s.Run()

	for _, r := range s.Series.Records {
		assert.GreaterOrEqual(t, r.Health, 0.0)
		assert.LessOrEqual(t, r.Health, FullHealth)
	}

	// Every part completed at most once; the rest are still pending.
	seen := make(map[int]bool)
	for _, rec := range s.Metrics.Completions {
		assert.False(t, seen[rec.PartID], "part %d completed twice", rec.PartID)
		seen[rec.PartID] = true
		assert.LessOrEqual(t, rec.ArrivalTime, rec.ServiceStartTime)
		assert.Less(t, rec.ServiceStartTime, rec.CompletionTime)
	}

	pending := s.WaitQ.Len()
	if s.inService != nil {
		pending++
	}
	assert.Equal(t, s.Metrics.PartsCreated, s.Metrics.PartsCompleted+pending)
	assert.Greater(t, s.Metrics.PartsCompleted, 0)
}

func TestSimulator_Snapshot(t *testing.T) {
	cfg := DefaultConfig()
	s := newTestSimulator(t, cfg,
		NewConstantSampler(5), NewConstantSampler(3), NewConstantSampler(15))

	s.RunUntil(10)

	snap := s.Snapshot()
	assert.Equal(t, s.Clock, snap.Clock)
	assert.Equal(t, s.Machine.State, snap.MachineState)
	assert.Equal(t, s.Machine.Health, snap.Health)
	assert.Equal(t, s.WaitQ.Len(), snap.QueueLength)
	assert.Equal(t, s.Metrics.PartsCreated, snap.PartsCreated)
	assert.Equal(t, s.Metrics.PartsCompleted, snap.PartsCompleted)
	require.Len(t, snap.TechStates, cfg.NumTechnicians)
}
