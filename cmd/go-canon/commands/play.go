package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"go-canon/music"
	"go-canon/songbook"
)

var (
	notesFlag      string
	instrumentFlag string
	dryRunFlag     bool
	horizonFlag    float64
)

// dryRunHorizon bounds the schedule listing for endless pieces.
const dryRunHorizon = 32.0

var playCmd = &cobra.Command{
	Use:   "play [tune]",
	Short: "Play a songbook tune or ad-hoc notation",
	Long: `Play a tune from the songbook by name, or pass --notes to play notation
directly. --dry-run prints the note schedule instead of playing; for an
endless piece it lists the opening beats.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&notesFlag, "notes", "", "play this notation instead of a songbook tune")
	playCmd.Flags().StringVar(&instrumentFlag, "instrument", "", "General MIDI instrument for --notes")
	playCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "print the schedule instead of playing")
	playCmd.Flags().Float64Var(&horizonFlag, "horizon", 0, "beats of an endless piece to include in --dry-run")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	m, title, tempo, err := resolvePiece(args)
	if err != nil {
		return err
	}
	if dryRunFlag {
		return printSchedule(cmd, m, title)
	}
	return runPlayback(title, m, tempo)
}

// resolvePiece turns the command line into music, a display title, and a
// tempo.
func resolvePiece(args []string) (music.Music, string, int, error) {
	if notesFlag != "" {
		if len(args) > 0 {
			return nil, "", 0, fmt.Errorf("give a tune name or --notes, not both")
		}
		instrument, err := resolveInstrument()
		if err != nil {
			return nil, "", 0, err
		}
		m, err := music.Notes(notesFlag, instrument)
		if err != nil {
			return nil, "", 0, err
		}
		return m, notesFlag, playbackTempo(0), nil
	}

	if len(args) == 0 {
		return nil, "", 0, fmt.Errorf("name a tune to play, or pass --notes (try: go-canon list)")
	}
	entries, err := songbook.Load()
	if err != nil {
		return nil, "", 0, err
	}
	entry, ok := songbook.Find(entries, args[0])
	if !ok {
		return nil, "", 0, fmt.Errorf("no tune named %q (try: go-canon list)", args[0])
	}
	m, err := entry.Build()
	if err != nil {
		return nil, "", 0, err
	}
	title := entry.Title
	if title == "" {
		title = entry.Name
	}
	return m, title, playbackTempo(entry.Tempo), nil
}

// resolveInstrument returns the instrument named by --instrument, or the
// configured default.
func resolveInstrument() (music.Instrument, error) {
	if instrumentFlag == "" {
		return defaultInstrument(), nil
	}
	in, ok := music.InstrumentByName(instrumentFlag)
	if !ok {
		return 0, fmt.Errorf("unknown instrument %q", instrumentFlag)
	}
	return in, nil
}

// printSchedule lists the unrolled note events.
func printSchedule(cmd *cobra.Command, m music.Music, title string) error {
	endless := math.IsInf(m.Duration(), 1)
	horizon := horizonFlag
	if horizon <= 0 {
		horizon = math.Inf(1)
		if endless {
			horizon = dryRunHorizon
		}
	}
	notes := music.Unroll(m, horizon)

	w := cmd.OutOrStdout()
	if endless {
		fmt.Fprintf(w, "%s: endless, first %g beats, %d notes\n", title, horizon, len(notes))
	} else {
		fmt.Fprintf(w, "%s: %g beats, %d notes\n", title, m.Duration(), len(notes))
	}
	for _, n := range notes {
		fmt.Fprintf(w, "%8.3f  %-5s %-6g %s\n", n.StartBeat, n.Pitch, n.NumBeats, n.Instrument)
	}
	return nil
}
