package commands

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-canon/music"
)

func TestDemoPiecesBuild(t *testing.T) {
	want := map[string]float64{
		"scale":       15,
		"row":         16,
		"row-twice":   20,
		"row-forever": math.Inf(1),
		"pachelbel":   math.Inf(1),
	}
	require.Len(t, demoPieces, len(want))
	for _, d := range demoPieces {
		t.Run(d.name, func(t *testing.T) {
			duration, ok := want[d.name]
			require.True(t, ok, "unexpected demo %q", d.name)
			m := d.build()
			if math.IsInf(duration, 1) {
				assert.True(t, math.IsInf(m.Duration(), 1))
			} else {
				assert.InDelta(t, duration, m.Duration(), 1e-9)
			}
		})
	}
}

func TestDescribeDuration(t *testing.T) {
	assert.Equal(t, "4 beats", describeDuration(mustNotes("C D E F", music.Piano)))
	assert.Equal(t, "endless", describeDuration(music.Forever(mustNotes("C", music.Piano))))
}
