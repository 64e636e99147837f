package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-canon/music"
)

var parseCmd = &cobra.Command{
	Use:   "parse <notation>",
	Short: "Parse notation and print the music it builds",
	Long: `Parse a notation string without playing anything. Prints the parsed
music, its length in beats, and the note schedule.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&instrumentFlag, "instrument", "", "General MIDI instrument")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	instrument, err := resolveInstrument()
	if err != nil {
		return err
	}
	m, err := music.Notes(args[0], instrument)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%v\n\n", m)
	return printSchedule(cmd, m, instrument.String())
}
