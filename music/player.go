package music

// SequencePlayer schedules notes and callbacks on a beat timeline and later
// plays them back in timeline order.
//
// Scheduling is two-phase: Play methods and callbacks add work with
// ScheduleNote and ScheduleCallback, and a single call to Start drives the
// clock. Implementations fire events in non-decreasing beat order, breaking
// ties by scheduling order, and run callbacks one at a time, never
// concurrently with each other. Both schedule methods remain usable from
// inside a running callback, which is how endless loops stay pending
// without unbounded queues.
type SequencePlayer interface {
	// ScheduleNote schedules pitch to sound on instrument from startBeat
	// for numBeats beats.
	ScheduleNote(instrument Instrument, pitch Pitch, startBeat, numBeats float64)

	// ScheduleCallback registers fn to run exactly once when the playback
	// clock reaches atBeat.
	ScheduleCallback(atBeat float64, fn func())

	// Start plays the scheduled events in timeline order and blocks until
	// no pending work remains. It returns the first error the underlying
	// sink reported, if any.
	Start() error
}
