package songbook

// Builtins returns the tunes compiled into the binary.
func Builtins() []Entry {
	return []Entry{
		{
			Name:  "scale",
			Title: "One-octave scale, up and down",
			Parts: []string{"C D E F G A B C' B A G F E D C"},
		},
		{
			Name:  "row-your-boat",
			Title: "Row, Row, Row Your Boat",
			Parts: []string{
				"C C C3/4 D/4 E |",
				"E3/4 D/4 E3/4 F/4 G2 |",
				"C'/3 C'/3 C'/3 G/3 G/3 G/3 E/3 E/3 E/3 C/3 C/3 C/3 |",
				"G3/4 F/4 E3/4 D/4 C2",
			},
		},
		{
			Name:  "row-round",
			Title: "Row Your Boat as an endless four-voice round",
			Parts: []string{
				"C C C3/4 D/4 E |",
				"E3/4 D/4 E3/4 F/4 G2 |",
				"C'/3 C'/3 C'/3 G/3 G/3 G/3 E/3 E/3 E/3 C/3 C/3 C/3 |",
				"G3/4 F/4 E3/4 D/4 C2",
			},
			Arrange: &Arrangement{
				Voices:     4,
				DelayBeats: 4,
				Transpose:  12,
				Endless:    true,
			},
		},
		{
			Name:  "frere-jacques",
			Title: "Frère Jacques as a four-voice round",
			Parts: []string{
				"C D E C | C D E C |",
				"E F G2 | E F G2 |",
				"G/2 A/2 G/2 F/2 E C | G/2 A/2 G/2 F/2 E C |",
				"C G, C2 | C G, C2",
			},
			Arrange: &Arrangement{
				Voices:     4,
				DelayBeats: 8,
			},
		},
	}
}
