package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-canon/midi"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List MIDI output ports",
	Args:  cobra.NoArgs,
	RunE:  runPorts,
}

func init() {
	rootCmd.AddCommand(portsCmd)
}

func runPorts(cmd *cobra.Command, args []string) error {
	names, err := midi.OutPorts()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(w, "no MIDI output ports found")
		return nil
	}
	for i, name := range names {
		fmt.Fprintf(w, "%d: %s\n", i, name)
	}
	return nil
}
