package series

import "gonum.org/v1/gonum/stat"

// Summary condenses a recorded series into end-of-run aggregates.
type Summary struct {
	Ticks int

	MeanHealth float64
	MinHealth  float64

	MeanQueueLength float64
	PeakQueueLength int

	BrokenTicks      int
	DowntimeSegments []float64 // durations of maximal broken stretches
	Availability     float64   // fraction of observed time not broken
}

// Summarize computes aggregates over a series. dt is the tick interval; the
// final downtime segment is closed at the last record plus dt if the run
// ended while broken.
func Summarize(s *Series, dt float64) Summary {
	sum := Summary{MinHealth: 100.0, Availability: 1.0}
	if s == nil || len(s.Records) == 0 {
		sum.MinHealth = 0
		return sum
	}
	sum.Ticks = len(s.Records)

	healths := make([]float64, 0, len(s.Records))
	queueLens := make([]float64, 0, len(s.Records))

	brokenStart := 0.0
	wasBroken := false

	for _, r := range s.Records {
		healths = append(healths, r.Health)
		queueLens = append(queueLens, float64(r.QueueLength))

		if r.Health < sum.MinHealth {
			sum.MinHealth = r.Health
		}
		if r.QueueLength > sum.PeakQueueLength {
			sum.PeakQueueLength = r.QueueLength
		}

		broken := r.MachineState == "broken"
		if broken {
			sum.BrokenTicks++
		}
		if broken && !wasBroken {
			brokenStart = r.Clock
			wasBroken = true
		} else if !broken && wasBroken {
			sum.DowntimeSegments = append(sum.DowntimeSegments, r.Clock-brokenStart)
			wasBroken = false
		}
	}
	if wasBroken {
		last := s.Records[len(s.Records)-1]
		sum.DowntimeSegments = append(sum.DowntimeSegments, last.Clock+dt-brokenStart)
	}

	sum.MeanHealth = stat.Mean(healths, nil)
	sum.MeanQueueLength = stat.Mean(queueLens, nil)

	observed := float64(sum.Ticks) * dt
	if observed > 0 {
		downtime := 0.0
		for _, d := range sum.DowntimeSegments {
			downtime += d
		}
		sum.Availability = 1.0 - downtime/observed
		if sum.Availability < 0 {
			sum.Availability = 0
		}
	}
	return sum
}
