package music

import (
	"fmt"
	"math"
)

// Transform maps one piece of music to another.
type Transform func(Music) Music

// Identity returns its argument unchanged.
func Identity(m Music) Music {
	return m
}

// Transposer returns a Transform that transposes by semitones.
func Transposer(semitones int) Transform {
	return func(m Music) Music {
		return m.Transpose(semitones)
	}
}

// Delayer returns a Transform that delays by beats.
func Delayer(beats float64) Transform {
	return func(m Music) Music {
		return Delay(m, beats)
	}
}

// Delay returns m postponed by beats beats of silence.
func Delay(m Music, beats float64) Music {
	return Concat(Rest(beats), m)
}

// Transpose returns m with every note raised by semitones.
func Transpose(m Music, semitones int) Music {
	checkPiece(m)
	return m.Transpose(semitones)
}

// Series combines n terms, where the first term is initial and each later
// term is change applied to the term before it:
//
//	combine(initial, combine(change(initial), combine(..., change^(n-1)(initial))))
//
// The fold associates to the right, and n == 1 returns initial itself.
// Terms are materialized iteratively, so n can be large without growing the
// call stack. Panics if n < 1.
func Series[T any](initial T, combine func(T, T) T, change func(T) T, n int) T {
	if n < 1 {
		panic(fmt.Sprintf("music: series needs at least one term, got %d", n))
	}
	terms := make([]T, n)
	terms[0] = initial
	for i := 1; i < n; i++ {
		terms[i] = change(terms[i-1])
	}
	acc := terms[n-1]
	for i := n - 2; i >= 0; i-- {
		acc = combine(terms[i], acc)
	}
	return acc
}

// Counterpoint overlays n simultaneous voices, where the first voice is m
// and each later voice is f applied to the voice before it.
func Counterpoint(m Music, f Transform, n int) Music {
	checkPiece(m)
	return Series(m, Together, f, n)
}

// Canon overlays n voices entering delay beats apart, each voice derived
// from the previous one by f.
func Canon(m Music, delay float64, f Transform, n int) Music {
	checkPiece(m)
	return Counterpoint(m, func(v Music) Music { return f(Delay(v, delay)) }, n)
}

// Round is a canon whose voices are identical apart from their entry delay.
func Round(m Music, delay float64, n int) Music {
	return Canon(m, delay, Identity, n)
}

// RepeatWith plays n repetitions of m one after another, where the first
// repetition is m and each later one is f applied to the one before it.
func RepeatWith(m Music, f Transform, n int) Music {
	checkPiece(m)
	return Series(m, Concat, f, n)
}

// Repeat plays m n times in a row.
func Repeat(m Music, n int) Music {
	return RepeatWith(m, Identity, n)
}

// Accompany plays m1 and m2 simultaneously, starting together and ending
// as nearly together as possible: the shorter piece is repeated for the
// life of the longer one, with the repeat count rounded to the nearest
// whole number when the duration ratio is not integral. If either piece is
// endless the other plays (or loops) against it unchanged, and a
// zero-duration piece accompanies without repeating at all.
func Accompany(m1, m2 Music) Music {
	checkPiece(m1)
	checkPiece(m2)
	longer, shorter := m1, m2
	if longer.Duration() < shorter.Duration() {
		longer, shorter = shorter, longer
	}
	switch {
	case math.IsInf(shorter.Duration(), 1):
		return Together(longer, shorter)
	case math.IsInf(longer.Duration(), 1):
		return Together(longer, Forever(shorter))
	case shorter.Duration() == 0:
		return Together(longer, shorter)
	default:
		times := int(math.Round(longer.Duration() / shorter.Duration()))
		return Together(longer, Repeat(shorter, times))
	}
}
