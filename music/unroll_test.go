package music

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnrollScaleInOrder(t *testing.T) {
	m, err := Notes("C D E F G A B C'", Piano)
	require.NoError(t, err)

	notes := Unroll(m, math.Inf(1))
	require.Len(t, notes, 8)
	for i, n := range notes {
		assert.Equal(t, float64(i), n.StartBeat)
		assert.Equal(t, 1.0, n.NumBeats)
	}
	assert.Equal(t, NewPitch('C'), notes[0].Pitch)
	assert.Equal(t, NewPitch('C').Transpose(Octave), notes[7].Pitch)
}

func TestUnrollConcatOffsetsSecondPart(t *testing.T) {
	first, err := Notes("C D", Piano)
	require.NoError(t, err)
	second, err := Notes("E", Piano)
	require.NoError(t, err)

	notes := Unroll(Concat(first, second), math.Inf(1))
	require.Len(t, notes, 3)
	assert.Equal(t, 2.0, notes[2].StartBeat)
}

func TestUnrollTogetherSharesStart(t *testing.T) {
	low, err := Notes("C E G", Piano)
	require.NoError(t, err)
	chordal := Together(low, low.Transpose(Octave))

	notes := Unroll(chordal, math.Inf(1))
	require.Len(t, notes, 6)
	byBeat := map[float64]int{}
	for _, n := range notes {
		byBeat[n.StartBeat]++
	}
	assert.Equal(t, map[float64]int{0: 2, 1: 2, 2: 2}, byBeat)
}

func TestUnrollForeverStopsAtHorizon(t *testing.T) {
	bar, err := Notes("C D", Piano)
	require.NoError(t, err)
	loop := Forever(bar)

	notes := Unroll(loop, 6)
	require.Len(t, notes, 6)
	for i, n := range notes {
		assert.Equal(t, float64(i), n.StartBeat)
		if i%2 == 0 {
			assert.Equal(t, NewPitch('C'), n.Pitch)
		} else {
			assert.Equal(t, NewPitch('D'), n.Pitch)
		}
	}
}

func TestUnrollForeverMidPassHorizon(t *testing.T) {
	bar, err := Notes("C D E F", Piano)
	require.NoError(t, err)

	// The horizon lands inside the second pass; notes at or past it drop.
	notes := Unroll(Forever(bar), 6)
	require.Len(t, notes, 6)
	assert.Equal(t, 5.0, notes[5].StartBeat)
	assert.Equal(t, NewPitch('D'), notes[5].Pitch)
}

func TestUnrollZeroDurationLoopIsSilent(t *testing.T) {
	assert.Empty(t, Unroll(Forever(Rest(0)), 100))
	assert.Empty(t, Unroll(Forever(Concat(Rest(0), Rest(0))), 100))
}

func TestUnrollAfterForeverNeverPlays(t *testing.T) {
	loop := Forever(Note(1, NewPitch('C'), Piano))
	tail := Note(1, NewPitch('G'), Piano)

	notes := Unroll(Concat(loop, tail), 5)
	require.Len(t, notes, 5)
	for _, n := range notes {
		assert.Equal(t, NewPitch('C'), n.Pitch)
	}
}

func TestUnrollParallelForevers(t *testing.T) {
	inner := Forever(Note(1, NewPitch('C'), Piano))
	piece := Together(inner, Forever(Note(2, NewPitch('G'), Piano)))

	notes := Unroll(piece, 4)
	cs, gs := 0, 0
	for _, n := range notes {
		switch n.Pitch {
		case NewPitch('C'):
			cs++
		case NewPitch('G'):
			gs++
		}
	}
	assert.Equal(t, 4, cs)
	assert.Equal(t, 2, gs)
}

func TestUnrollForeverOfForever(t *testing.T) {
	// The outer loop never reaches a second pass; the inner one carries on.
	notes := Unroll(Forever(Forever(Note(1, NewPitch('C'), Piano))), 3)
	require.Len(t, notes, 3)
	for i, n := range notes {
		assert.Equal(t, float64(i), n.StartBeat)
	}
}

func TestUnrollDropsNotesAtHorizon(t *testing.T) {
	m, err := Notes("C D E", Piano)
	require.NoError(t, err)
	assert.Len(t, Unroll(m, 2), 2)
	assert.Len(t, Unroll(m, 2.5), 3)
	assert.Empty(t, Unroll(m, 0))
}

func TestUnrollMatchesRepeatWithinHorizon(t *testing.T) {
	bar, err := Notes("C D E", Piano)
	require.NoError(t, err)

	// Within the horizon an endless loop and a long finite repeat agree.
	horizon := 12.0
	assert.Equal(t, Unroll(Repeat(bar, 10), horizon), Unroll(Forever(bar), horizon))
}
