package sim

// PartState represents the lifecycle state of a part
type PartState string

const (
	PartStateQueued    PartState = "queued"
	PartStateInService PartState = "in_service"
	PartStateCompleted PartState = "completed"
)

// Part is the work item flowing through the production line. It is owned by
// exactly one of the wait queue or the service slot at any time; it is
// created on arrival and leaves the system on completion.
type Part struct {
	ID int

	// Timing
	ArrivalTime      float64
	ServiceStartTime float64 // start of the attempt that (eventually) completed
	CompletionTime   float64

	State PartState
}

// NewPart creates a part in the queued state.
func NewPart(id int, arrivalTime float64) *Part {
	return &Part{
		ID:          id,
		ArrivalTime: arrivalTime,
		State:       PartStateQueued,
	}
}
