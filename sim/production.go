// Production line process logic: part arrivals and the machine service
// state machine (AwaitingMachine → InService → Completed|Interrupted),
// driven by scheduler callback re-entry rather than native suspension.

package sim

import "github.com/sirupsen/logrus"

// handlePartArrival creates the arriving part, queues it, triggers an
// immediate service attempt, and schedules the next arrival.
func (s *Simulator) handlePartArrival(e *PartArrivalEvent) {
	now := e.Timestamp()

	s.nextPartID++
	part := NewPart(s.nextPartID, now)
	s.Metrics.PartsCreated++
	s.WaitQ.PushBack(part)

	logrus.Infof("[t=%.2f] part %d arrived (queue: %d)", now, part.ID, s.WaitQ.Len())

	s.scheduleServiceAttempt(now)

	interarrival := s.arrival.Sample(s.RNG.ForSubsystem(SubsystemArrivals))
	s.scheduleArrival(now + interarrival)
}

// handleServiceAttempt seizes the machine for the queue head if it is free.
// When the machine is busy or broken the attempt is a no-op: whichever event
// frees the machine (completion or repair) schedules the next attempt, so a
// waiting part is never lost.
func (s *Simulator) handleServiceAttempt(e *ServiceAttemptEvent) {
	now := e.Timestamp()

	if s.Machine.State == "" {
		panic("handleServiceAttempt: machine state uninitialized")
	}
	if s.Machine.State != MachineIdle || s.inService != nil {
		return
	}

	part := s.WaitQ.PopFront()
	if part == nil {
		return
	}

	s.Machine.StartService()
	part.State = PartStateInService
	part.ServiceStartTime = now
	s.inService = part
	s.serviceAttempt++

	duration := s.service.Sample(s.RNG.ForSubsystem(SubsystemService))
	logrus.Infof("[t=%.2f] part %d service started (duration: %.2f)", now, part.ID, duration)

	s.scheduleCompletion(now+duration, part, s.serviceAttempt)
}

// handleServiceCompletion finishes the in-flight service attempt. A stale
// attempt token means the attempt was interrupted by a breakdown after this
// event was scheduled; the event is then a no-op and the part is already
// back at the queue head.
func (s *Simulator) handleServiceCompletion(e *ServiceCompletionEvent) {
	if e.Attempt != s.serviceAttempt || e.Part != s.inService {
		return
	}
	now := e.Timestamp()
	part := e.Part

	part.State = PartStateCompleted
	part.CompletionTime = now
	s.inService = nil
	s.Machine.FinishService()

	s.Metrics.PartsCompleted++
	s.Metrics.WaitTimes = append(s.Metrics.WaitTimes, part.ServiceStartTime-part.ArrivalTime)
	s.Metrics.ServiceTimes = append(s.Metrics.ServiceTimes, now-part.ServiceStartTime)
	s.Metrics.Completions = append(s.Metrics.Completions, PartRecord{
		PartID:           part.ID,
		ArrivalTime:      part.ArrivalTime,
		ServiceStartTime: part.ServiceStartTime,
		CompletionTime:   now,
	})

	logrus.Infof("[t=%.2f] part %d completed (total: %d)", now, part.ID, s.Metrics.PartsCompleted)

	if s.WaitQ.Len() > 0 {
		s.scheduleServiceAttempt(now)
	}
}

// interruptService cancels the in-flight attempt after a breakdown: partial
// progress is discarded and the part returns to the queue head, ahead of
// later arrivals. The restarted attempt samples a fresh duration.
func (s *Simulator) interruptService(now float64) {
	if s.inService == nil {
		return
	}
	part := s.inService
	s.inService = nil
	s.serviceAttempt++ // invalidates the outstanding completion event

	part.State = PartStateQueued
	s.WaitQ.PushFront(part)
	s.Metrics.Interruptions++

	logrus.Warnf("[t=%.2f] part %d service interrupted", now, part.ID)
}
