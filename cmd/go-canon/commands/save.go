package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-canon/songbook"
)

var (
	titleFlag     string
	voicesFlag    int
	delayFlag     float64
	transposeFlag int
	endlessFlag   bool
)

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a tune to the songbook",
	Long: `Save notation as a named songbook entry under
~/.config/go-canon/songbook. The entry must build cleanly before it is
written, so a saved tune always plays.`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringVar(&notesFlag, "notes", "", "notation for the tune")
	saveCmd.Flags().StringVar(&titleFlag, "title", "", "display title")
	saveCmd.Flags().StringVar(&instrumentFlag, "instrument", "", "General MIDI instrument")
	saveCmd.Flags().IntVar(&voicesFlag, "voices", 0, "arrange as a canon with this many voices")
	saveCmd.Flags().Float64Var(&delayFlag, "delay", 0, "beats between voice entries")
	saveCmd.Flags().IntVar(&transposeFlag, "transpose", 0, "semitones added per voice")
	saveCmd.Flags().BoolVar(&endlessFlag, "endless", false, "loop the tune forever")
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	if notesFlag == "" {
		return fmt.Errorf("pass --notes with the tune's notation")
	}
	entry := songbook.Entry{
		Name:       args[0],
		Title:      titleFlag,
		Instrument: instrumentFlag,
		Tempo:      tempoFlag,
		Parts:      []string{notesFlag},
	}
	if voicesFlag > 1 || endlessFlag {
		entry.Arrange = &songbook.Arrangement{
			Voices:     voicesFlag,
			DelayBeats: delayFlag,
			Transpose:  transposeFlag,
			Endless:    endlessFlag,
		}
	}
	path, err := songbook.Save(entry)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
	return nil
}
