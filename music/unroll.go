package music

import "sort"

// ScheduledNote is one note event produced by unrolling a piece of music.
type ScheduledNote struct {
	Instrument Instrument
	Pitch      Pitch
	StartBeat  float64
	NumBeats   float64
}

// Unroll expands m into the note events that start strictly before horizon
// beats, sorted by start beat with scheduling order breaking ties. Endless
// loops are expanded pass by pass only as far as the horizon, so a finite
// horizon always terminates. Events at or past the horizon are dropped; a
// note that starts before the horizon keeps its full length even when it
// rings past it.
func Unroll(m Music, horizon float64) []ScheduledNote {
	checkPiece(m)
	u := &unroller{horizon: horizon}
	m.Play(u, 0)
	u.run()
	sort.SliceStable(u.notes, func(i, j int) bool {
		return u.notes[i].StartBeat < u.notes[j].StartBeat
	})
	return u.notes
}

// unroller is an in-memory SequencePlayer with a virtual clock. Callbacks
// run immediately in beat order instead of against wall time, and anything
// scheduled at or past the horizon is discarded.
type unroller struct {
	horizon float64
	notes   []ScheduledNote
	pending []pendingCallback
	seq     int
}

type pendingCallback struct {
	beat float64
	seq  int
	fn   func()
}

func (u *unroller) ScheduleNote(instrument Instrument, pitch Pitch, startBeat, numBeats float64) {
	if startBeat >= u.horizon {
		return
	}
	u.notes = append(u.notes, ScheduledNote{
		Instrument: instrument,
		Pitch:      pitch,
		StartBeat:  startBeat,
		NumBeats:   numBeats,
	})
}

func (u *unroller) ScheduleCallback(atBeat float64, fn func()) {
	if atBeat >= u.horizon {
		return
	}
	u.seq++
	u.pending = append(u.pending, pendingCallback{beat: atBeat, seq: u.seq, fn: fn})
}

func (u *unroller) Start() error {
	u.run()
	return nil
}

// run drains pending callbacks in beat order, scheduling order breaking
// ties. Callbacks may schedule further callbacks; the loop ends when the
// horizon has cut off every continuation.
func (u *unroller) run() {
	for {
		next := -1
		for i, cb := range u.pending {
			if next < 0 || cb.beat < u.pending[next].beat ||
				(cb.beat == u.pending[next].beat && cb.seq < u.pending[next].seq) {
				next = i
			}
		}
		if next < 0 {
			return
		}
		cb := u.pending[next]
		u.pending = append(u.pending[:next], u.pending[next+1:]...)
		cb.fn()
	}
}
