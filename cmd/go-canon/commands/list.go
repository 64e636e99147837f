package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-canon/songbook"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List songbook tunes",
	Long: `List every tune in the songbook: the built-ins plus anything saved
under ~/.config/go-canon/songbook.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := songbook.Load()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = e.Name
		}
		m, buildErr := e.Build()
		if buildErr != nil {
			fmt.Fprintf(w, "%-16s %-10s %v\n", e.Name, "broken", buildErr)
			continue
		}
		fmt.Fprintf(w, "%-16s %-10s %s\n", e.Name, describeDuration(m), title)
	}
	return nil
}
