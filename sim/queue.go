// Implements the WaitQueue, which holds all parts waiting for the machine.
// Parts are enqueued on arrival.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue is a FIFO queue of parts waiting for the machine to become
// available. An interrupted part re-enters at the head, ahead of parts that
// arrived after it.
type WaitQueue struct {
	queue []*Part // FIFO queue of parts
}

// PushBack adds a part to the back of the wait queue.
func (wq *WaitQueue) PushBack(p *Part) {
	wq.queue = append(wq.queue, p)
}

// PushFront inserts a part at the front of the queue.
// Used for interruption: a part evicted from the service slot by a breakdown
// is placed back at the head for rescheduling before later arrivals.
func (wq *WaitQueue) PushFront(p *Part) {
	if p == nil {
		panic("PushFront: part must not be nil")
	}
	wq.queue = append([]*Part{p}, wq.queue...)
}

// PopFront removes and returns the part at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) PopFront() *Part {
	if len(wq.queue) == 0 {
		return nil
	}
	p := wq.queue[0]
	wq.queue = wq.queue[1:]
	return p
}

// Peek returns the part at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Part {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Len returns the number of parts in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range wq.queue {
		sb.WriteString(fmt.Sprintf("Part(%d)", p.ID))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
