// Tracks simulation-wide and per-part performance metrics.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// PartRecord is the per-part completion record exposed to external
// collaborators (reporting, plotting).
type PartRecord struct {
	PartID           int
	ArrivalTime      float64
	ServiceStartTime float64
	CompletionTime   float64
}

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for evaluating line throughput and debugging breakdown behavior
// over time.
type Metrics struct {
	PartsCreated   int // parts that arrived
	PartsCompleted int // parts that finished service
	Interruptions  int // service attempts cancelled by a breakdown

	Breakdowns         int       // threshold breaches
	BreakdownDurations []float64 // completed downtime segments

	WaitTimes    []float64 // per completed part: service start - arrival
	ServiceTimes []float64 // per completed part: completion - service start

	Completions []PartRecord // one record per completed part

	RepairTicks map[int]int // technician ID -> ticks spent repairing

	EndTime float64 // simulated time at which the run stopped
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		RepairTicks: make(map[int]int),
	}
}

// TotalDowntime returns the summed duration of completed downtime segments.
func (m *Metrics) TotalDowntime() float64 {
	total := 0.0
	for _, d := range m.BreakdownDurations {
		total += d
	}
	return total
}

// Availability returns the fraction of the run the machine was not broken.
func (m *Metrics) Availability() float64 {
	if m.EndTime <= 0 {
		return 1.0
	}
	return 1.0 - m.TotalDowntime()/m.EndTime
}

// MeanWaitTime returns the mean queue wait across completed parts.
func (m *Metrics) MeanWaitTime() float64 {
	if len(m.WaitTimes) == 0 {
		return 0
	}
	return stat.Mean(m.WaitTimes, nil)
}

// MeanServiceTime returns the mean service duration across completed parts.
func (m *Metrics) MeanServiceTime() float64 {
	if len(m.ServiceTimes) == 0 {
		return 0
	}
	return stat.Mean(m.ServiceTimes, nil)
}

// WaitTimeQuantile returns the p-th quantile (p in [0,1]) of queue waits.
func (m *Metrics) WaitTimeQuantile(p float64) float64 {
	if len(m.WaitTimes) == 0 {
		return 0
	}
	sorted := make([]float64, len(m.WaitTimes))
	copy(sorted, m.WaitTimes)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// MeanDowntime returns the mean duration of completed downtime segments.
func (m *Metrics) MeanDowntime() float64 {
	if len(m.BreakdownDurations) == 0 {
		return 0
	}
	return stat.Mean(m.BreakdownDurations, nil)
}

// TechnicianUtilization returns, per technician, the fraction of the run
// spent repairing. dt is the tick interval the repair ticks were counted at.
func (m *Metrics) TechnicianUtilization(dt float64) map[int]float64 {
	util := make(map[int]float64, len(m.RepairTicks))
	if m.EndTime <= 0 {
		return util
	}
	for id, ticks := range m.RepairTicks {
		util[id] = float64(ticks) * dt / m.EndTime
	}
	return util
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(dt float64) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Parts created        : %d\n", m.PartsCreated)
	fmt.Printf("Parts completed      : %d\n", m.PartsCompleted)
	fmt.Printf("Service interruptions: %d\n", m.Interruptions)
	if m.PartsCompleted > 0 {
		fmt.Printf("Average wait time    : %.2f\n", m.MeanWaitTime())
		fmt.Printf("P95 wait time        : %.2f\n", m.WaitTimeQuantile(0.95))
		fmt.Printf("Average service time : %.2f\n", m.MeanServiceTime())
	}
	fmt.Printf("Machine breakdowns   : %d\n", m.Breakdowns)
	if m.Breakdowns > 0 {
		fmt.Printf("Average downtime     : %.2f\n", m.MeanDowntime())
		fmt.Printf("Total downtime       : %.2f\n", m.TotalDowntime())
	}
	fmt.Printf("Availability         : %.1f%%\n", m.Availability()*100)
	ids := make([]int, 0, len(m.RepairTicks))
	for id := range m.RepairTicks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	util := m.TechnicianUtilization(dt)
	for _, id := range ids {
		fmt.Printf("Technician %d utilization: %.1f%%\n", id, util[id]*100)
	}
}
