package music

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelay(t *testing.T) {
	m := Note(1, NewPitch('C'), Piano)
	delayed := Delay(m, 2)
	assert.Equal(t, Concat(Rest(2), m), delayed)
	assert.Equal(t, 3.0, delayed.Duration())
}

func TestSeriesSingleTermIsInitial(t *testing.T) {
	m := Note(1, NewPitch('C'), Piano)
	assert.Equal(t, m, Series(m, Together, Transposer(5), 1))
	assert.Equal(t, m, Round(m, 3, 1))
	assert.Equal(t, m, Repeat(m, 1))
	assert.Equal(t, m, Counterpoint(m, Transposer(5), 1))
}

func TestSeriesFoldsRightward(t *testing.T) {
	got := Series("a", func(x, y string) string { return "(" + x + "+" + y + ")" },
		func(s string) string { return s + "'" }, 3)
	assert.Equal(t, "(a+(a'+a''))", got)
}

func TestSeriesLargeCount(t *testing.T) {
	// A count in the hundreds of thousands must not exhaust the stack.
	n := 200000
	total := Series(1, func(x, y int) int { return x + y }, func(x int) int { return x }, n)
	assert.Equal(t, n, total)

	piece := Repeat(Rest(1), n)
	assert.Equal(t, float64(n), piece.Duration())
}

func TestSeriesPanicsBelowOne(t *testing.T) {
	assert.Panics(t, func() { Series(1, func(x, y int) int { return x + y }, func(x int) int { return x }, 0) })
	assert.Panics(t, func() { Repeat(Rest(1), -1) })
}

func TestRepeat(t *testing.T) {
	m := Note(1, NewPitch('C'), Piano)
	assert.Equal(t, Concat(m, Concat(m, m)), Repeat(m, 3))
	assert.Equal(t, 3.0, Repeat(m, 3).Duration())
}

func TestRepeatWithTransposer(t *testing.T) {
	m := Note(1, NewPitch('C'), Piano)
	rising := RepeatWith(m, Transposer(Octave), 3)

	notes := Unroll(rising, math.Inf(1))
	require.Len(t, notes, 3)
	assert.Equal(t, NewPitch('C'), notes[0].Pitch)
	assert.Equal(t, NewPitch('C').Transpose(Octave), notes[1].Pitch)
	assert.Equal(t, NewPitch('C').Transpose(2*Octave), notes[2].Pitch)
	assert.Equal(t, []float64{0, 1, 2}, []float64{notes[0].StartBeat, notes[1].StartBeat, notes[2].StartBeat})
}

func TestCounterpointStartsVoicesTogether(t *testing.T) {
	m := Note(2, NewPitch('C'), Piano)
	duet := Counterpoint(m, Transposer(7), 2)

	assert.Equal(t, Together(m, m.Transpose(7)), duet)
	assert.Equal(t, 2.0, duet.Duration())
}

func TestCanonAccumulatesDelays(t *testing.T) {
	m := Note(1, NewPitch('C'), Piano)
	three := Canon(m, 2, Identity, 3)

	notes := Unroll(three, math.Inf(1))
	require.Len(t, notes, 3)
	assert.Equal(t, 0.0, notes[0].StartBeat)
	assert.Equal(t, 2.0, notes[1].StartBeat)
	assert.Equal(t, 4.0, notes[2].StartBeat)
}

func TestCanonAppliesTransformPerVoice(t *testing.T) {
	m := Note(1, NewPitch('C'), Piano)
	notes := Unroll(Canon(m, 1, Transposer(Octave), 3), math.Inf(1))

	require.Len(t, notes, 3)
	assert.Equal(t, NewPitch('C'), notes[0].Pitch)
	assert.Equal(t, NewPitch('C').Transpose(Octave), notes[1].Pitch)
	assert.Equal(t, NewPitch('C').Transpose(2*Octave), notes[2].Pitch)
}

func TestRoundVoicesAreIdentical(t *testing.T) {
	m, err := Notes("C D E", Piano)
	require.NoError(t, err)
	round := Round(m, 1, 2)

	notes := Unroll(round, math.Inf(1))
	want := []ScheduledNote{
		{Piano, NewPitch('C'), 0, 1},
		{Piano, NewPitch('D'), 1, 1},
		{Piano, NewPitch('E'), 2, 1},
		{Piano, NewPitch('C'), 1, 1},
		{Piano, NewPitch('D'), 2, 1},
		{Piano, NewPitch('E'), 3, 1},
	}
	assert.ElementsMatch(t, want, notes)
	assert.Equal(t, 4.0, round.Duration())
}

func TestAccompanyRepeatsShorterEvenRatio(t *testing.T) {
	longer := Rest(8)
	shorter := Note(2, NewPitch('C'), Piano)

	m := Accompany(longer, shorter)
	assert.Equal(t, Together(longer, Repeat(shorter, 4)), m)
	assert.Equal(t, 8.0, m.Duration())
}

func TestAccompanyRoundsRepeatCount(t *testing.T) {
	longer := Rest(8)
	shorter := Note(3, NewPitch('C'), Piano)

	// 8/3 rounds to 3 repeats, so the accompaniment runs a beat long.
	m := Accompany(longer, shorter)
	assert.Equal(t, Together(longer, Repeat(shorter, 3)), m)
	assert.Equal(t, 9.0, m.Duration())
}

func TestAccompanyOrderIndependent(t *testing.T) {
	longer := Rest(8)
	shorter := Note(2, NewPitch('C'), Piano)
	assert.Equal(t, Accompany(longer, shorter), Accompany(shorter, longer))
}

func TestAccompanyEndless(t *testing.T) {
	loop := Forever(Note(1, NewPitch('C'), Piano))
	riff := Note(2, NewPitch('E'), Piano)

	// A finite piece against an endless one loops forever itself.
	assert.Equal(t, Together(loop, Forever(riff)), Accompany(loop, riff))
	// Two endless pieces just play together.
	other := Forever(Rest(4))
	assert.Equal(t, Together(loop, other), Accompany(loop, other))
}

func TestAccompanyZeroDurationShorter(t *testing.T) {
	longer := Rest(4)
	empty := Rest(0)
	assert.Equal(t, Together(longer, empty), Accompany(longer, empty))
	assert.Equal(t, Together(longer, empty), Accompany(empty, longer))
}

func TestTransposerAndDelayer(t *testing.T) {
	m := Note(1, NewPitch('C'), Piano)
	assert.Equal(t, m.Transpose(3), Transposer(3)(m))
	assert.Equal(t, Concat(Rest(2), m), Delayer(2)(m))
	assert.Equal(t, m, Identity(m))
}
