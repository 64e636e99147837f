package music

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	c := NewPitch('C')
	tests := []struct {
		name  string
		piece Music
		want  float64
	}{
		{"note", Note(1.5, c, Piano), 1.5},
		{"zero note", Note(0, c, Piano), 0},
		{"rest", Rest(2), 2},
		{"concat adds", Concat(Note(1, c, Piano), Rest(0.5)), 1.5},
		{"together takes longer", Together(Note(1, c, Piano), Rest(3)), 3},
		{"nested", Concat(Together(Rest(2), Rest(4)), Rest(1)), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.piece.Duration())
		})
	}
}

func TestForeverDurationIsInfinite(t *testing.T) {
	loop := Forever(Note(1, NewPitch('C'), Piano))
	assert.True(t, math.IsInf(loop.Duration(), 1))

	held := Concat(Rest(2), loop)
	assert.True(t, math.IsInf(held.Duration(), 1))
	assert.True(t, math.IsInf(Together(Rest(1), loop).Duration(), 1))
}

func TestTranspose(t *testing.T) {
	c := NewPitch('C')
	piece := Concat(Note(1, c, Piano), Together(Rest(1), Note(1, NewPitch('E'), Violin)))
	up := piece.Transpose(Octave)

	want := Concat(
		Note(1, c.Transpose(Octave), Piano),
		Together(Rest(1), Note(1, NewPitch('E').Transpose(Octave), Violin)),
	)
	assert.Equal(t, want, up)
	assert.Equal(t, piece, up.Transpose(-Octave))
}

func TestTransposeKeepsOriginal(t *testing.T) {
	original := Note(1, NewPitch('C'), Piano)
	_ = original.Transpose(5)
	assert.Equal(t, Note(1, NewPitch('C'), Piano), original)
}

func TestTransposeForever(t *testing.T) {
	loop := Forever(Note(1, NewPitch('C'), Piano))
	assert.Equal(t, Forever(Note(1, NewPitch('D'), Piano)), loop.Transpose(2))
}

func TestStructuralEquality(t *testing.T) {
	c := NewPitch('C')
	d := NewPitch('D')

	assert.True(t, Note(1, c, Piano) == Note(1, c, Piano))
	assert.False(t, Note(1, c, Piano) == Note(1, d, Piano))
	assert.False(t, Note(1, c, Piano) == Note(2, c, Piano))
	assert.False(t, Note(1, c, Piano) == Note(1, c, Violin))
	assert.False(t, Note(1, c, Piano) == Rest(1))

	// Order matters for both sequential and simultaneous combination.
	ab := Concat(Note(1, c, Piano), Note(1, d, Piano))
	ba := Concat(Note(1, d, Piano), Note(1, c, Piano))
	assert.True(t, ab == Concat(Note(1, c, Piano), Note(1, d, Piano)))
	assert.False(t, ab == ba)

	chord := Together(Note(1, c, Piano), Note(1, d, Piano))
	assert.True(t, chord == Together(Note(1, c, Piano), Note(1, d, Piano)))
	assert.False(t, chord == Together(Note(1, d, Piano), Note(1, c, Piano)))

	assert.True(t, Forever(ab) == Forever(ab))
	assert.False(t, Forever(ab) == Forever(ba))
}

func TestMusicAsMapKey(t *testing.T) {
	c := NewPitch('C')
	seen := map[Music]int{}
	seen[Concat(Note(1, c, Piano), Rest(1))]++
	seen[Concat(Note(1, c, Piano), Rest(1))]++
	seen[Rest(1)]++

	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[Concat(Note(1, c, Piano), Rest(1))])
}

func TestConstructorPanics(t *testing.T) {
	c := NewPitch('C')
	assert.Panics(t, func() { Note(-1, c, Piano) })
	assert.Panics(t, func() { Note(math.Inf(1), c, Piano) })
	assert.Panics(t, func() { Note(math.NaN(), c, Piano) })
	assert.Panics(t, func() { Rest(-0.25) })
	assert.Panics(t, func() { Concat(nil, Rest(1)) })
	assert.Panics(t, func() { Concat(Rest(1), nil) })
	assert.Panics(t, func() { Together(nil, nil) })
	assert.Panics(t, func() { Forever(nil) })
	assert.Panics(t, func() { Transpose(nil, 2) })
}

func TestString(t *testing.T) {
	c := NewPitch('C')
	tests := []struct {
		name  string
		piece Music
		want  string
	}{
		{"note", Note(1, c, Piano), "C1"},
		{"fractional note", Note(0.75, NewPitch('E'), Piano), "E0.75"},
		{"rest", Rest(2), ".2"},
		{"concat", Concat(Note(1, c, Piano), Rest(1)), "C1 .1"},
		{"together", Together(Note(1, c, Piano), Note(1, NewPitch('E'), Piano)), "together(C1 |||| E1)"},
		{"forever", Forever(Note(1, c, Piano)), "forever(C1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.piece.String())
		})
	}
}
