package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"go-canon/music"
)

const rowYourBoatNotation = "C C C3/4 D/4 E |" +
	" E3/4 D/4 E3/4 F/4 G2 |" +
	" C'/3 C'/3 C'/3 G/3 G/3 G/3 E/3 E/3 E/3 C/3 C/3 C/3 |" +
	" G3/4 F/4 E3/4 D/4 C2"

const pachelbelBassNotation = "D,2 A,,2 | B,,2 ^F,,2 | G,,2 D,,2 | G,,2 A,,2"

// Opening section of the canon's violin line.
const pachelbelMelodyNotation = "^F'2 E'2 | D'2 ^C'2 | B2 A2 | B2 ^C'2 |" +
	" D'2 ^C'2 | B2 A2 | G2 ^F2 | G2 E2 |" +
	" D ^F A G | ^F D ^F E | D B, D A | G B A G |" +
	" ^F D E ^C' | D' ^F' A' A | B G A ^F | D D' D3/2 .1/2"

type demoPiece struct {
	name  string
	title string
	build func() music.Music
}

var demoPieces = []demoPiece{
	{
		name:  "scale",
		title: "Octave scale",
		build: func() music.Music {
			return mustNotes("C D E F G A B C' B A G F E D C", music.Piano)
		},
	},
	{
		name:  "row",
		title: "Row Your Boat",
		build: func() music.Music {
			return mustNotes(rowYourBoatNotation, music.Piano)
		},
	},
	{
		name:  "row-twice",
		title: "Row Your Boat, second voice after 4 beats",
		build: func() music.Music {
			row := mustNotes(rowYourBoatNotation, music.Piano)
			return music.Together(row, music.Delay(row, 4))
		},
	},
	{
		name:  "row-forever",
		title: "Row Your Boat, endless round",
		build: func() music.Music {
			row := mustNotes(rowYourBoatNotation, music.Piano)
			voices := 4
			delay := row.Duration() / float64(voices)
			return music.Canon(music.Forever(row), delay, music.Transposer(music.Octave), voices)
		},
	},
	{
		name:  "pachelbel",
		title: "Pachelbel's Canon",
		build: func() music.Music {
			bass := mustNotes(pachelbelBassNotation, music.Cello)
			melody := mustNotes(pachelbelMelodyNotation, music.Violin)
			round := music.Canon(music.Forever(melody), 16, music.Identity, 3)
			return music.Concat(bass, music.Accompany(round, bass))
		},
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Play a built-in demo piece",
	Long: `Play one of the built-in demo pieces. With no arguments, list the
available demos.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "print the schedule instead of playing")
	demoCmd.Flags().Float64Var(&horizonFlag, "horizon", 0, "beats of an endless piece to include in --dry-run")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		w := cmd.OutOrStdout()
		for _, d := range demoPieces {
			fmt.Fprintf(w, "%-12s %-42s %s\n", d.name, d.title, describeDuration(d.build()))
		}
		return nil
	}

	for _, d := range demoPieces {
		if d.name == args[0] {
			m := d.build()
			if dryRunFlag {
				return printSchedule(cmd, m, d.title)
			}
			return runPlayback(d.title, m, playbackTempo(0))
		}
	}
	return fmt.Errorf("no demo named %q (try: go-canon demo)", args[0])
}

func describeDuration(m music.Music) string {
	if math.IsInf(m.Duration(), 1) {
		return "endless"
	}
	return fmt.Sprintf("%g beats", m.Duration())
}

// mustNotes parses notation known to be valid at compile time.
func mustNotes(notation string, instrument music.Instrument) music.Music {
	m, err := music.Notes(notation, instrument)
	if err != nil {
		panic(err)
	}
	return m
}
