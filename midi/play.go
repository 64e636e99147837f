package midi

import "go-canon/music"

// WarmupBeats delays the first note slightly so the port and synthesizer
// settle before it sounds.
const WarmupBeats = 0.125

// Play schedules m on a fresh player and drives the clock until the piece
// ends. Music containing a live endless loop plays until the process is
// interrupted. An empty port name selects the first available port; bpm <= 0
// selects DefaultBPM.
func Play(m music.Music, port string, bpm int) error {
	send, closePort, err := OpenOut(port)
	if err != nil {
		return err
	}
	defer closePort()

	player := NewPlayer(send, bpm)
	m.Play(player, WarmupBeats)
	return player.Start()
}
