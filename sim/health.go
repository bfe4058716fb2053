package sim

// FullHealth is the upper bound of the machine health stock. Repairs restore
// health to this value.
const FullHealth = 100.0

// HealthParams holds the continuous-dynamics coefficients for the machine
// health stock.
type HealthParams struct {
	RateBusy   float64 // health loss per time unit while the machine is busy
	RateIdle   float64 // health loss per time unit while the machine is idle or broken
	RateRepair float64 // health gain per time unit per repairing technician
	Threshold  float64 // below this, the orchestrator forces the machine broken
}

// Step advances the health stock by dt and reports whether the new value is
// below the breakdown threshold. It is a pure function: it never touches
// machine availability. The orchestrator owns that transition and applies it
// on the breach signal, which keeps availability single-writer.
func (p HealthParams) Step(health float64, dt float64, busy bool, repairing int) (float64, bool) {
	degradation := p.RateIdle * dt
	if busy {
		degradation = p.RateBusy * dt
	}
	inflow := float64(repairing) * p.RateRepair * dt

	health += inflow - degradation
	if health < 0 {
		health = 0
	}
	if health > FullHealth {
		health = FullHealth
	}
	return health, health < p.Threshold
}
