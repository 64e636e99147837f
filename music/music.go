package music

import (
	"fmt"
	"math"
	"strconv"
)

// Music is one piece of music: a single note, a silence, or a combination
// of smaller pieces played in sequence, simultaneously, or in an endless
// loop. Values are immutable, and pieces built from the same parts in the
// same shape compare equal with ==, so they can serve as map keys.
type Music interface {
	// Duration returns the total length of the piece in beats. An endless
	// loop reports +Inf.
	Duration() float64

	// Transpose returns the piece with every note raised by semitones,
	// or lowered if negative. Rests are unaffected.
	Transpose(semitones int) Music

	// Play schedules every note of the piece on player, with the piece
	// starting at atBeat.
	Play(player SequencePlayer, atBeat float64)

	// String renders the piece in a notation-like form.
	String() string

	// sealed restricts Music to the variants defined in this package.
	sealed()
}

// checkBeats panics unless beats is a usable finite duration.
func checkBeats(beats float64) {
	if beats < 0 || math.IsInf(beats, 0) || math.IsNaN(beats) {
		panic(fmt.Sprintf("music: invalid duration %v beats", beats))
	}
}

// checkPiece panics on a nil piece, which the combinators never accept.
func checkPiece(m Music) {
	if m == nil {
		panic("music: nil piece")
	}
}

func formatBeats(beats float64) string {
	return strconv.FormatFloat(beats, 'g', -1, 64)
}

// note is a single pitch sounded by an instrument.
type note struct {
	beats      float64
	pitch      Pitch
	instrument Instrument
}

// Note returns pitch sounded by instrument for beats beats.
// Panics if beats is negative, infinite, or NaN.
func Note(beats float64, pitch Pitch, instrument Instrument) Music {
	checkBeats(beats)
	return note{beats: beats, pitch: pitch, instrument: instrument}
}

func (n note) Duration() float64 {
	return n.beats
}

func (n note) Transpose(semitones int) Music {
	n.pitch = n.pitch.Transpose(semitones)
	return n
}

func (n note) Play(player SequencePlayer, atBeat float64) {
	player.ScheduleNote(n.instrument, n.pitch, atBeat, n.beats)
}

func (n note) String() string {
	return n.pitch.String() + formatBeats(n.beats)
}

func (note) sealed() {}

// rest is a silence.
type rest struct {
	beats float64
}

// Rest returns a silence lasting beats beats.
// Panics if beats is negative, infinite, or NaN.
func Rest(beats float64) Music {
	checkBeats(beats)
	return rest{beats: beats}
}

func (r rest) Duration() float64 {
	return r.beats
}

func (r rest) Transpose(semitones int) Music {
	return r
}

func (r rest) Play(player SequencePlayer, atBeat float64) {}

func (r rest) String() string {
	return "." + formatBeats(r.beats)
}

func (rest) sealed() {}

// concat is two pieces played one after the other.
type concat struct {
	first  Music
	second Music
}

// Concat returns m1 followed immediately by m2.
func Concat(m1, m2 Music) Music {
	checkPiece(m1)
	checkPiece(m2)
	return concat{first: m1, second: m2}
}

func (c concat) Duration() float64 {
	return c.first.Duration() + c.second.Duration()
}

func (c concat) Transpose(semitones int) Music {
	return concat{first: c.first.Transpose(semitones), second: c.second.Transpose(semitones)}
}

func (c concat) Play(player SequencePlayer, atBeat float64) {
	c.first.Play(player, atBeat)
	c.second.Play(player, atBeat+c.first.Duration())
}

func (c concat) String() string {
	return c.first.String() + " " + c.second.String()
}

func (concat) sealed() {}

// together is two pieces started at the same instant.
type together struct {
	top    Music
	bottom Music
}

// Together returns m1 and m2 played simultaneously, both starting at the
// same instant. The combined piece lasts as long as the longer of the two.
func Together(m1, m2 Music) Music {
	checkPiece(m1)
	checkPiece(m2)
	return together{top: m1, bottom: m2}
}

func (t together) Duration() float64 {
	return math.Max(t.top.Duration(), t.bottom.Duration())
}

func (t together) Transpose(semitones int) Music {
	return together{top: t.top.Transpose(semitones), bottom: t.bottom.Transpose(semitones)}
}

func (t together) Play(player SequencePlayer, atBeat float64) {
	t.top.Play(player, atBeat)
	t.bottom.Play(player, atBeat)
}

func (t together) String() string {
	return "together(" + t.top.String() + " |||| " + t.bottom.String() + ")"
}

func (together) sealed() {}

// forever is a piece looping endlessly.
type forever struct {
	body Music
}

// Forever returns m repeated in an endless loop.
func Forever(m Music) Music {
	checkPiece(m)
	return forever{body: m}
}

func (f forever) Duration() float64 {
	return math.Inf(1)
}

func (f forever) Transpose(semitones int) Music {
	return forever{body: f.body.Transpose(semitones)}
}

// Play schedules one pass of the body and a callback that plays the loop
// again when the clock reaches the end of that pass, so only one pass is
// pending at a time. A zero-duration body would re-enter at the same beat
// without end, so it schedules nothing.
func (f forever) Play(player SequencePlayer, atBeat float64) {
	beats := f.body.Duration()
	if beats == 0 {
		return
	}
	f.body.Play(player, atBeat)
	next := atBeat + beats
	player.ScheduleCallback(next, func() {
		f.Play(player, next)
	})
}

func (f forever) String() string {
	return "forever(" + f.body.String() + ")"
}

func (forever) sealed() {}
