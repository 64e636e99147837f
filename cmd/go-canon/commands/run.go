package commands

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"go-canon/debug"
	"go-canon/midi"
	"go-canon/music"
	"go-canon/tui"
)

// runPlayback opens a port, schedules m, and drives playback to the end,
// with either the full-screen player or plain progress output.
func runPlayback(title string, m music.Music, tempo int) error {
	send, closePort, err := midi.OpenOut(playbackPort())
	if err != nil {
		return err
	}
	defer closePort()

	player := midi.NewPlayer(send, tempo)
	m.Play(player, midi.WarmupBeats)

	total := math.Inf(1)
	if !math.IsInf(m.Duration(), 1) {
		total = m.Duration() + midi.WarmupBeats
	}
	debug.Log("play", "%q tempo=%d total=%v pending=%d", title, tempo, total, player.Pending())

	if usePlainOutput() {
		return plainPlayback(title, player, total)
	}
	return tuiPlayback(title, player, total)
}

func tuiPlayback(title string, player *midi.Player, total float64) error {
	done := make(chan error, 1)
	go func() { done <- player.Start() }()

	model := tui.NewModel(player, title, total, globalTheme, done)
	final, err := tea.NewProgram(model).Run()
	player.Stop()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return player.Err()
}

func plainPlayback(title string, player *midi.Player, total float64) error {
	done := make(chan error, 1)
	go func() { done <- player.Start() }()

	// Ctrl-C stops cleanly so sounding notes are released.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	if math.IsInf(total, 1) {
		fmt.Printf("%s: playing forever at %d bpm, ctrl-c to stop\n", title, player.BPM())
		select {
		case err := <-done:
			return err
		case <-interrupt:
			player.Stop()
			return <-done
		}
	}

	beats := int(math.Ceil(total))
	bar := progressbar.NewOptions(
		beats,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionFullWidth(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription(title),
	)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case err := <-done:
			bar.Finish()
			fmt.Println()
			return err
		case <-interrupt:
			player.Stop()
			err := <-done
			fmt.Println()
			return err
		case <-ticker.C:
			now := int(player.NowBeat())
			if now > beats {
				now = beats
			}
			bar.Set(now)
		}
	}
}
