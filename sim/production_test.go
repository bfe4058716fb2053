package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quietHealth returns a config whose machine never degrades, isolating the
// production flow from breakdown behavior.
func quietHealth() Config {
	cfg := DefaultConfig()
	cfg.Dt = 1.0
	cfg.RateBusy = 0
	cfg.RateIdle = 0
	return cfg
}

func TestProduction_ArrivalStartsServiceImmediately(t *testing.T) {
	s := newTestSimulator(t, quietHealth(),
		NewConstantSampler(5), NewConstantSampler(3), NewConstantSampler(15))

	s.RunUntil(0)

	assert.Equal(t, 1, s.Metrics.PartsCreated)
	assert.Equal(t, MachineBusy, s.Machine.State)
	require.NotNil(t, s.inService)
	assert.Equal(t, 1, s.inService.ID)
	assert.Equal(t, 0, s.WaitQ.Len())
}

func TestProduction_CompletionStartsNextQueuedPart(t *testing.T) {
	// Arrivals every 0.5 outpace a 2.0 service, so a queue builds up.
	s := newTestSimulator(t, quietHealth(),
		NewConstantSampler(0.5), NewConstantSampler(2.0), NewConstantSampler(15))

	s.RunUntil(2.0)

	assert.Equal(t, 1, s.Metrics.PartsCompleted)
	require.NotNil(t, s.inService)
	assert.Equal(t, 2, s.inService.ID, "queue head starts right after the completion")
	assert.Equal(t, 2.0, s.inService.ServiceStartTime)
}

// TestProduction_InterruptedPartServedBeforeLaterArrivals covers the requeue
// ordering property and the stale-completion no-op.
func TestProduction_InterruptedPartServedBeforeLaterArrivals(t *testing.T) {
	cfg := quietHealth()
	cfg.BreakdownThreshold = 20
	cfg.RateBusy = 45 // breach on the second busy tick
	cfg.RateRepair = 10
	cfg.NumTechnicians = 1

	s := newTestSimulator(t, cfg,
		NewConstantSampler(2.0), NewConstantSampler(3.0), NewConstantSampler(2.0))

	// t=2: health 100-90 = 10 < 20 → breakdown interrupts part 1 just as
	// part 2 arrives. The interrupted part must sit ahead of it.
	s.RunUntil(2)
	assert.Equal(t, MachineBroken, s.Machine.State)
	require.Equal(t, 2, s.WaitQ.Len())
	assert.Equal(t, 1, s.WaitQ.Peek().ID)

	// t=3: the original completion for part 1 fires but its attempt token
	// is stale; nothing completes.
	s.RunUntil(3)
	assert.Equal(t, 0, s.Metrics.PartsCompleted)

	// t=4: repair done, the interrupted part re-enters service first.
	s.RunUntil(4)
	assert.Equal(t, MachineBusy, s.Machine.State)
	require.NotNil(t, s.inService)
	assert.Equal(t, 1, s.inService.ID)
	assert.Equal(t, 2, s.WaitQ.Peek().ID)
}

func TestProduction_AttemptIsNoOpWhileBroken(t *testing.T) {
	cfg := quietHealth()
	s := newTestSimulator(t, cfg,
		NewConstantSampler(100), NewConstantSampler(3), NewConstantSampler(15))

	s.RunUntil(0) // part 1 in service
	s.interruptService(0)
	s.Machine.MarkBroken()

	s.handleServiceAttempt(NewServiceAttemptEvent(1.0, s.newEventID()))

	assert.Nil(t, s.inService)
	assert.Equal(t, 1, s.WaitQ.Len())
}
