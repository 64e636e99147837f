package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-canon/config"
	"go-canon/debug"
	"go-canon/music"
	"go-canon/theme"
)

var (
	// Global flags
	debugFlag bool
	plainFlag bool
	portFlag  string
	tempoFlag int

	// Global configuration (loaded at init time)
	globalConfig *config.Config
	globalTheme  *theme.Theme
)

var rootCmd = &cobra.Command{
	Use:   "go-canon",
	Short: "Compose and play rounds, canons, and endless loops over MIDI",
	Long: `go-canon builds music from a small notation language and plays it on any
MIDI output port.

Notation is whitespace-separated symbols; | bar lines are ignored. A
symbol is a pitch name A-G or a . for a rest, followed by an optional
duration:

  C D E F      four one-beat notes
  C2 ./2       a two-beat note, then a half-beat rest
  C3/4         three quarters of a beat
  C' A, ^F _B  octave up, octave down, sharp, flat

Tunes live in the songbook: a set of built-ins plus YAML files under
~/.config/go-canon/songbook. A tune's arrangement can turn it into a
round or canon, or make it loop forever.

Examples:
  go-canon play scale
  go-canon play row-round --tempo 140
  go-canon play --notes "C C G G A A G2" --instrument "Music Box"
  go-canon play frere-jacques --dry-run
  go-canon demo pachelbel
  go-canon ports`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write a debug log to ~/.config/go-canon/debug.log")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "plain output instead of the full-screen player")
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "MIDI output port name (default: first available)")
	rootCmd.PersistentFlags().IntVar(&tempoFlag, "tempo", 0, "tempo in beats per minute (20-300)")
}

func initConfig() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "go-canon: config: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}
	globalConfig = cfg

	if debugFlag || cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "go-canon: debug log: %v\n", err)
		}
	}

	var palette *theme.Palette
	if cfg.UI.Theme != "" {
		if p, err := theme.LoadGPL(cfg.UI.Theme); err == nil {
			palette = p
		} else {
			debug.Log("theme", "palette %s: %v", cfg.UI.Theme, err)
		}
	}
	globalTheme = theme.New(palette)
}

// playbackPort returns the output port to use: flag first, then config.
func playbackPort() string {
	if portFlag != "" {
		return portFlag
	}
	return globalConfig.Playback.Port
}

// playbackTempo returns the tempo to use: flag, then the tune's own hint,
// then config, clamped to the playable range.
func playbackTempo(entryTempo int) int {
	if tempoFlag != 0 {
		return config.ClampTempo(tempoFlag)
	}
	if entryTempo != 0 {
		return config.ClampTempo(entryTempo)
	}
	return globalConfig.TempoOrDefault()
}

func usePlainOutput() bool {
	return plainFlag || globalConfig.UI.Plain
}

// defaultInstrument returns the configured instrument, or piano.
func defaultInstrument() music.Instrument {
	if in, ok := music.InstrumentByName(globalConfig.Playback.Instrument); ok {
		return in
	}
	return music.Piano
}
