package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Series accumulates per-tick records during a simulation run.
type Series struct {
	Records []Record
}

// New creates a Series ready for recording.
func New() *Series {
	return &Series{
		Records: make([]Record, 0),
	}
}

// Append adds a record to the series.
func (s *Series) Append(r Record) {
	s.Records = append(s.Records, r)
}

// Len returns the number of recorded ticks.
func (s *Series) Len() int {
	return len(s.Records)
}

// Last returns the most recent record, or a zero Record if none exist.
func (s *Series) Last() Record {
	if len(s.Records) == 0 {
		return Record{}
	}
	return s.Records[len(s.Records)-1]
}

// WriteCSV writes the series as CSV with a header row.
func (s *Series) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"time", "health", "machine_state", "queue_length",
		"techs_idle", "techs_dispatched", "techs_repairing", "parts_completed"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range s.Records {
		row := []string{
			strconv.FormatFloat(r.Clock, 'f', -1, 64),
			strconv.FormatFloat(r.Health, 'f', -1, 64),
			r.MachineState,
			strconv.Itoa(r.QueueLength),
			strconv.Itoa(r.TechsIdle),
			strconv.Itoa(r.TechsDispatched),
			strconv.Itoa(r.TechsRepairing),
			strconv.Itoa(r.PartsCompleted),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
