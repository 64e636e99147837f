package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstrumentString(t *testing.T) {
	assert.Equal(t, "Acoustic Grand Piano", Piano.String())
	assert.Equal(t, "Cello", Cello.String())
	assert.Equal(t, "Gunshot", Gunshot.String())
}

func TestInstrumentByName(t *testing.T) {
	tests := []struct {
		name string
		want Instrument
	}{
		{"Acoustic Grand Piano", AcousticGrandPiano},
		{"acoustic grand piano", AcousticGrandPiano},
		{"AcousticGrandPiano", AcousticGrandPiano},
		{"electric guitar (jazz)", ElectricGuitarJazz},
		{"synth bass 1", SynthBass1},
		{"FX 8 (sci-fi)", FX8SciFi},
		{"piano", AcousticGrandPiano},
		{"Music Box", MusicBox},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InstrumentByName(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInstrumentByNameUnknown(t *testing.T) {
	for _, name := range []string{"", "kazoo ensemble", "piano2"} {
		_, ok := InstrumentByName(name)
		assert.False(t, ok, "name %q", name)
	}
}
