package sim

// Event represents a simulation event
type Event interface {
	Timestamp() float64
	EventID() uint64
	Type() EventType
	Execute(sim *Simulator)
}

// EventType identifies the kind of a simulation event
type EventType string

const (
	EventTypeTick              EventType = "Tick"
	EventTypePartArrival       EventType = "PartArrival"
	EventTypeServiceAttempt    EventType = "ServiceAttempt"
	EventTypeServiceCompletion EventType = "ServiceCompletion"
)

// EventTypePriority defines ordering for simultaneous events.
// Lower values are processed first. The periodic tick outranks everything
// scheduled for the same instant, so a breakdown is always detected before a
// same-timestamp completion is reported. All other types share one priority
// and fall through to event-ID order, which preserves FIFO scheduling order.
var EventTypePriority = map[EventType]int{
	EventTypeTick:              1,
	EventTypePartArrival:       2,
	EventTypeServiceAttempt:    2,
	EventTypeServiceCompletion: 2,
}

// BaseEvent provides common event fields
type BaseEvent struct {
	timestamp float64
	eventID   uint64
	eventType EventType
}

func newBaseEvent(timestamp float64, eventID uint64, eventType EventType) BaseEvent {
	return BaseEvent{
		timestamp: timestamp,
		eventID:   eventID,
		eventType: eventType,
	}
}

func (e *BaseEvent) Timestamp() float64 {
	return e.timestamp
}

func (e *BaseEvent) EventID() uint64 {
	return e.eventID
}

func (e *BaseEvent) Type() EventType {
	return e.eventType
}

// TickEvent drives the periodic orchestrator step: health dynamics,
// threshold/dispatch handling, and technician state machines.
type TickEvent struct {
	BaseEvent
}

func NewTickEvent(timestamp float64, eventID uint64) *TickEvent {
	return &TickEvent{
		BaseEvent: newBaseEvent(timestamp, eventID, EventTypeTick),
	}
}

func (e *TickEvent) Execute(sim *Simulator) {
	sim.handleTick(e)
}

// PartArrivalEvent represents a new part arriving at the production line
type PartArrivalEvent struct {
	BaseEvent
}

func NewPartArrivalEvent(timestamp float64, eventID uint64) *PartArrivalEvent {
	return &PartArrivalEvent{
		BaseEvent: newBaseEvent(timestamp, eventID, EventTypePartArrival),
	}
}

func (e *PartArrivalEvent) Execute(sim *Simulator) {
	sim.handlePartArrival(e)
}

// ServiceAttemptEvent asks the machine to begin servicing the queue head.
// It is a no-op when the machine is busy or broken; whoever frees the
// machine schedules the next attempt.
type ServiceAttemptEvent struct {
	BaseEvent
}

func NewServiceAttemptEvent(timestamp float64, eventID uint64) *ServiceAttemptEvent {
	return &ServiceAttemptEvent{
		BaseEvent: newBaseEvent(timestamp, eventID, EventTypeServiceAttempt),
	}
}

func (e *ServiceAttemptEvent) Execute(sim *Simulator) {
	sim.handleServiceAttempt(e)
}

// ServiceCompletionEvent marks the end of a service attempt. Attempt carries
// the token issued when service started; a breakdown invalidates the token,
// turning the event into a no-op when it eventually fires.
type ServiceCompletionEvent struct {
	BaseEvent
	Part    *Part
	Attempt uint64
}

func NewServiceCompletionEvent(timestamp float64, eventID uint64, part *Part, attempt uint64) *ServiceCompletionEvent {
	return &ServiceCompletionEvent{
		BaseEvent: newBaseEvent(timestamp, eventID, EventTypeServiceCompletion),
		Part:      part,
		Attempt:   attempt,
	}
}

func (e *ServiceCompletionEvent) Execute(sim *Simulator) {
	sim.handleServiceCompletion(e)
}
