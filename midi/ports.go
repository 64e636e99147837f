package midi

import (
	"fmt"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// scanTimeout bounds port enumeration; CoreMIDI can hang when the MIDI
// server is wedged.
const scanTimeout = 3 * time.Second

// OutPorts returns the names of the available MIDI output ports.
func OutPorts() ([]string, error) {
	outs, err := outPorts()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names, nil
}

func outPorts() ([]drivers.Out, error) {
	ch := make(chan []drivers.Out, 1)
	go func() {
		ch <- gomidi.GetOutPorts()
	}()
	select {
	case outs := <-ch:
		return outs, nil
	case <-time.After(scanTimeout):
		return nil, fmt.Errorf("midi: port scan timed out; the MIDI server may need a restart")
	}
}

// OpenOut opens the named MIDI output port and returns a sender and a
// closer for it. An empty name selects the first available port.
func OpenOut(name string) (func(gomidi.Message) error, func(), error) {
	outs, err := outPorts()
	if err != nil {
		return nil, nil, err
	}
	if len(outs) == 0 {
		return nil, nil, fmt.Errorf("midi: no output ports available")
	}
	var port drivers.Out
	if name == "" {
		port = outs[0]
	} else {
		for _, out := range outs {
			if out.String() == name {
				port = out
				break
			}
		}
		if port == nil {
			return nil, nil, fmt.Errorf("midi: no output port named %q", name)
		}
	}
	send, err := gomidi.SendTo(port)
	if err != nil {
		return nil, nil, fmt.Errorf("midi: open %q: %w", port.String(), err)
	}
	return send, func() { port.Close() }, nil
}
