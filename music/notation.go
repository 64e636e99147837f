package music

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// symbolPattern splits one symbol into its pitch or rest text, an optional
// whole-number duration, and an optional /divisor.
var symbolPattern = regexp.MustCompile(`^([^/0-9]*)([0-9]+)?(/([0-9]+))?$`)

// Notes parses simplified notation into a sequence of notes and rests all
// sounded by instrument.
//
// Symbols are separated by spaces, and | bar lines may be mixed in for
// readability; they carry no meaning. Each symbol is a pitch or a rest,
// followed by an optional duration:
//
//	C          middle C, one beat
//	C2         middle C, two beats
//	C/2        middle C, half a beat
//	C3/4       middle C, three quarters of a beat
//	.          rest, one beat (durations apply as for notes)
//
// A pitch is a letter A-G, raised an octave per trailing ', lowered an
// octave per trailing comma, sharped by a leading ^, or flatted by a
// leading _. Marks may stack, for example ^F' or _B,,.
//
// An empty notation string parses to an empty piece of zero duration. A
// symbol that fits none of the above fails the whole parse.
func Notes(notation string, instrument Instrument) (Music, error) {
	piece := Rest(0)
	for _, symbol := range splitSymbols(notation) {
		m, err := parseSymbol(symbol, instrument)
		if err != nil {
			return nil, err
		}
		piece = Concat(piece, m)
	}
	return piece, nil
}

func splitSymbols(notation string) []string {
	return strings.FieldsFunc(notation, func(r rune) bool {
		return unicode.IsSpace(r) || r == '|'
	})
}

func parseSymbol(symbol string, instrument Instrument) (Music, error) {
	groups := symbolPattern.FindStringSubmatch(symbol)
	if groups == nil {
		return nil, fmt.Errorf("music: cannot understand %q", symbol)
	}
	beats := 1.0
	if groups[2] != "" {
		numerator, err := strconv.Atoi(groups[2])
		if err != nil {
			return nil, fmt.Errorf("music: cannot understand %q: %v", symbol, err)
		}
		beats *= float64(numerator)
	}
	if groups[4] != "" {
		divisor, err := strconv.Atoi(groups[4])
		if err != nil || divisor == 0 {
			return nil, fmt.Errorf("music: cannot understand %q: bad divisor", symbol)
		}
		beats /= float64(divisor)
	}
	if groups[1] == "." {
		return Rest(beats), nil
	}
	pitch, err := parsePitch(groups[1])
	if err != nil {
		return nil, fmt.Errorf("music: cannot understand %q: %v", symbol, err)
	}
	return Note(beats, pitch, instrument), nil
}

// parsePitch strips octave marks and accidentals from the outside in until
// a bare letter remains.
func parsePitch(s string) (Pitch, error) {
	switch {
	case strings.HasSuffix(s, "'"):
		pitch, err := parsePitch(strings.TrimSuffix(s, "'"))
		if err != nil {
			return 0, err
		}
		return pitch.Transpose(Octave), nil
	case strings.HasSuffix(s, ","):
		pitch, err := parsePitch(strings.TrimSuffix(s, ","))
		if err != nil {
			return 0, err
		}
		return pitch.Transpose(-Octave), nil
	case strings.HasPrefix(s, "^"):
		pitch, err := parsePitch(strings.TrimPrefix(s, "^"))
		if err != nil {
			return 0, err
		}
		return pitch.Transpose(1), nil
	case strings.HasPrefix(s, "_"):
		pitch, err := parsePitch(strings.TrimPrefix(s, "_"))
		if err != nil {
			return 0, err
		}
		return pitch.Transpose(-1), nil
	}
	if len(s) == 1 {
		if _, ok := letterOffsets[rune(s[0])]; ok {
			return NewPitch(rune(s[0])), nil
		}
	}
	return 0, fmt.Errorf("no pitch %q", s)
}
