package midi

import (
	"container/heap"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"

	"go-canon/debug"
	"go-canon/music"
)

// DefaultBPM is the tempo used when none is configured.
const DefaultBPM = 120

// velocity for every note; the language has no dynamics.
const velocity = 100

// percussionChannel is reserved by General MIDI for drums and never
// assigned to an instrument.
const percussionChannel = 9

const maxChannel = 15

type eventKind uint8

const (
	noteOn eventKind = iota
	noteOff
	callback
)

// event is one pending action on the beat timeline.
type event struct {
	beat    float64
	seq     uint64
	kind    eventKind
	channel uint8
	key     uint8
	fn      func()
}

// eventQueue is a min-heap ordered by beat, scheduling order breaking ties.
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].beat != q[j].beat {
		return q[i].beat < q[j].beat
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(*event)) }

func (q *eventQueue) Pop() any {
	old := *q
	x := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return x
}

// Player schedules notes and callbacks on a beat timeline and plays them
// against the wall clock through a MIDI sender. It implements
// music.SequencePlayer.
//
// Notes and callbacks may be scheduled before Start and, from any
// goroutine, while the clock is running. Events fire in non-decreasing
// beat order, scheduling order breaking ties, and callbacks run one at a
// time on the goroutine that called Start.
type Player struct {
	send func(gomidi.Message) error
	bpm  int

	mu          sync.Mutex
	queue       eventQueue
	seq         uint64
	channels    map[music.Instrument]uint8
	nextChannel uint8
	sounding    map[[2]uint8]int
	t0          time.Time
	playing     bool
	started     bool
	err         error

	wake     chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	updates  chan struct{}
}

// NewPlayer returns a player that emits MIDI through send at bpm beats per
// minute. bpm <= 0 selects DefaultBPM.
func NewPlayer(send func(gomidi.Message) error, bpm int) *Player {
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	return &Player{
		send:     send,
		bpm:      bpm,
		channels: make(map[music.Instrument]uint8),
		sounding: make(map[[2]uint8]int),
		wake:     make(chan struct{}, 1),
		stopChan: make(chan struct{}),
		updates:  make(chan struct{}, 1),
	}
}

// BPM returns the playback tempo.
func (p *Player) BPM() int {
	return p.bpm
}

// ScheduleNote schedules pitch to sound on instrument from startBeat for
// numBeats beats. A start beat of +Inf, which sequencing anything after an
// endless loop produces, never arrives and schedules nothing.
func (p *Player) ScheduleNote(instrument music.Instrument, pitch music.Pitch, startBeat, numBeats float64) {
	if math.IsInf(startBeat, 1) {
		return
	}
	p.mu.Lock()
	ch, err := p.channelFor(instrument)
	if err != nil {
		p.fail(err)
		p.mu.Unlock()
		p.kick()
		return
	}
	key, ok := midiKey(pitch)
	if !ok {
		p.fail(fmt.Errorf("midi: pitch %v is outside the 0-127 key range", pitch))
		p.mu.Unlock()
		p.kick()
		return
	}
	p.push(&event{beat: startBeat, kind: noteOn, channel: ch, key: key})
	if off := startBeat + numBeats; !math.IsInf(off, 1) {
		p.push(&event{beat: off, kind: noteOff, channel: ch, key: key})
	}
	p.mu.Unlock()
	p.kick()
}

// ScheduleCallback registers fn to run once when the clock reaches atBeat.
// A beat of +Inf never arrives and schedules nothing.
func (p *Player) ScheduleCallback(atBeat float64, fn func()) {
	if math.IsInf(atBeat, 1) {
		return
	}
	p.mu.Lock()
	p.push(&event{beat: atBeat, kind: callback, fn: fn})
	p.mu.Unlock()
	p.kick()
}

// Start drives the clock until every scheduled note and callback has fired,
// which for music containing a live endless loop is never. Stop ends
// playback early, and so does a recorded error: sounding notes are released
// and the first recorded error is returned. It blocks the calling
// goroutine. A player can only be started once.
func (p *Player) Start() error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return fmt.Errorf("midi: player already started")
	}
	p.started = true
	p.playing = true
	p.t0 = time.Now()
	p.mu.Unlock()
	p.notify()
	defer p.finish()

	// Keep dispatch timing on one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case <-p.stopChan:
			return p.silence()
		default:
		}

		p.mu.Lock()
		if p.err != nil {
			p.mu.Unlock()
			return p.silence()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return nil
		}
		due := p.beatTime(p.queue[0].beat)
		p.mu.Unlock()

		if wait := due.Sub(time.Now()); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-p.stopChan:
				timer.Stop()
				return p.silence()
			case <-p.wake:
				// Something earlier may have been scheduled; re-peek.
				timer.Stop()
				continue
			case <-timer.C:
			}
		}

		p.dispatch()
		p.notify()
	}
}

// dispatch pops and fires the earliest event.
func (p *Player) dispatch() {
	p.mu.Lock()
	if len(p.queue) == 0 {
		p.mu.Unlock()
		return
	}
	e := heap.Pop(&p.queue).(*event)
	switch e.kind {
	case noteOn:
		p.sounding[[2]uint8{e.channel, e.key}]++
		p.sendLocked(gomidi.NoteOn(e.channel, e.key, velocity))
		p.mu.Unlock()
		debug.Log("dispatch", "note on ch=%d key=%d beat=%.3f", e.channel, e.key, e.beat)
	case noteOff:
		k := [2]uint8{e.channel, e.key}
		if p.sounding[k] > 0 {
			p.sounding[k]--
			if p.sounding[k] == 0 {
				delete(p.sounding, k)
			}
		}
		p.sendLocked(gomidi.NoteOff(e.channel, e.key))
		p.mu.Unlock()
		debug.Log("dispatch", "note off ch=%d key=%d beat=%.3f", e.channel, e.key, e.beat)
	case callback:
		p.mu.Unlock()
		debug.Log("dispatch", "callback beat=%.3f", e.beat)
		e.fn()
	}
}

// Stop ends playback: pending events are abandoned, sounding notes are
// released, and Start returns. Safe to call from any goroutine, more than
// once.
func (p *Player) Stop() {
	p.stopOnce.Do(func() { close(p.stopChan) })
}

// Playing reports whether Start is currently driving the clock.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Pending reports how many notes and callbacks are waiting to fire.
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// NowBeat reports the clock position in beats since Start.
func (p *Player) NowBeat() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return 0
	}
	return float64(time.Since(p.t0)) / float64(p.beatLen())
}

// Updates delivers a coalesced notification each time the player changes
// state or dispatches an event, for driving UIs.
func (p *Player) Updates() <-chan struct{} {
	return p.updates
}

// Err returns the first error the player recorded, if any.
func (p *Player) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// push adds an event to the queue. Lock held.
func (p *Player) push(e *event) {
	e.seq = p.seq
	p.seq++
	heap.Push(&p.queue, e)
}

// channelFor returns the MIDI channel assigned to instrument, allocating
// the next free one and patching its program on first use. Lock held.
func (p *Player) channelFor(instrument music.Instrument) (uint8, error) {
	if ch, ok := p.channels[instrument]; ok {
		return ch, nil
	}
	if p.nextChannel == percussionChannel {
		p.nextChannel++
	}
	if p.nextChannel > maxChannel {
		return 0, fmt.Errorf("midi: out of channels for instrument %v", instrument)
	}
	ch := p.nextChannel
	p.nextChannel++
	p.channels[instrument] = ch
	p.sendLocked(gomidi.ProgramChange(ch, uint8(instrument)))
	debug.Log("channel", "instrument %q -> channel %d", instrument, ch)
	return ch, nil
}

// sendLocked emits one message, recording the first send failure. Lock held.
func (p *Player) sendLocked(msg gomidi.Message) {
	if err := p.send(msg); err != nil {
		p.fail(fmt.Errorf("midi: send: %w", err))
	}
}

// fail records the first error. Lock held.
func (p *Player) fail(err error) {
	if p.err == nil {
		p.err = err
		debug.Log("error", "%v", err)
	}
}

// silence releases every sounding note and reports the recorded error.
func (p *Player) silence() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k := range p.sounding {
		p.sendLocked(gomidi.NoteOff(k[0], k[1]))
	}
	p.sounding = make(map[[2]uint8]int)
	return p.err
}

func (p *Player) finish() {
	p.mu.Lock()
	p.playing = false
	p.mu.Unlock()
	p.notify()
}

// kick nudges a waiting clock loop to reconsider its wait.
func (p *Player) kick() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Player) notify() {
	select {
	case p.updates <- struct{}{}:
	default:
	}
}

// beatLen returns the wall-clock length of one beat.
func (p *Player) beatLen() time.Duration {
	return time.Duration(float64(time.Minute) / float64(p.bpm))
}

// beatTime converts a beat position to wall time. Lock held.
func (p *Player) beatTime(beat float64) time.Time {
	return p.t0.Add(time.Duration(beat * float64(p.beatLen())))
}

// midiKey maps a pitch to its MIDI key number, middle C = 60.
func midiKey(pitch music.Pitch) (uint8, bool) {
	key := pitch.Difference(music.MiddleC) + 60
	if key < 0 || key > 127 {
		return 0, false
	}
	return uint8(key), true
}
