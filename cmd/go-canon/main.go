// Package main is the entry point for the go-canon CLI.
//
// Usage:
//
//	go-canon [flags] <command> [args]
//
// Commands:
//
//	play   - Play a songbook tune or ad-hoc notation
//	demo   - Play a built-in demonstration piece
//	list   - List songbook tunes
//	parse  - Parse notation and print its structure
//	save   - Save a tune to the songbook
//	ports  - List MIDI output ports
package main

import (
	"fmt"
	"os"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"go-canon/cmd/go-canon/commands"
)

func main() {
	err := commands.Execute()
	gomidi.CloseDriver()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
