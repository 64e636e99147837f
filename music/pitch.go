package music

import (
	"fmt"
	"strings"
)

// Pitch is a note identity measured in semitones relative to middle C.
// Pitches compare and hash by semitone value, so they work as map keys.
type Pitch int

// Octave is the number of semitones in an octave.
const Octave = 12

// MiddleC is the reference pitch, semitone value 0.
const MiddleC Pitch = 0

// Semitone offsets of the natural letters within the octave that starts at
// middle C (12-tone equal temperament).
var letterOffsets = map[rune]int{
	'A': 9,
	'B': 11,
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
}

// NewPitch returns the natural pitch named by letter (A-G) in the octave
// starting at middle C. Panics on any other rune.
func NewPitch(letter rune) Pitch {
	offset, ok := letterOffsets[letter]
	if !ok {
		panic(fmt.Sprintf("music: no pitch named %q", letter))
	}
	return Pitch(offset)
}

// Transpose returns the pitch semitones higher, or lower if negative.
func (p Pitch) Transpose(semitones int) Pitch {
	return p + Pitch(semitones)
}

// Difference returns the number of semitones from o up to p.
func (p Pitch) Difference(o Pitch) int {
	return int(p - o)
}

// Names within one octave; sharps spelled with the notation's ^ prefix.
var pitchNames = [Octave]string{"C", "^C", "D", "^D", "E", "F", "^F", "G", "^G", "A", "^A", "B"}

// String renders the pitch in notation form: the name within the middle
// octave plus one trailing ' per octave up or , per octave down.
func (p Pitch) String() string {
	v := int(p)
	var marks strings.Builder
	for v < 0 {
		v += Octave
		marks.WriteByte(',')
	}
	for v >= Octave {
		v -= Octave
		marks.WriteByte('\'')
	}
	return pitchNames[v] + marks.String()
}
