// Package sim implements a hybrid factory simulation core that couples three
// execution models on one deterministic event loop:
//
//   - a discrete-event production line (part arrival, FIFO queueing, single
//     machine service with mid-service interruption),
//   - continuous machine health degradation advanced on a fixed step,
//   - autonomous technician agents that repair the machine when it breaks.
//
// All processes are resumable units multiplexed onto a single logical thread
// by the event heap; ordering, not locking, is the correctness mechanism.
// Identical seeds and configuration produce bit-for-bit identical runs.
package sim
