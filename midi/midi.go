package midi

import (
	"bytes"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadMidiFile reads a Standard MIDI File. The smf reader can panic on
// corrupt input (https://github.com/gomidi/midi/issues/20); that comes back
// as an error.
func ReadMidiFile(path string) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, fmt.Errorf("Error parsing midi file... %v", r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Error reading midi file... %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("Error parsing midi file... %w", err)
	}
	return res, nil
}

func WriteMidiFile(path string, s *smf.SMF) error {
	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("Error writing midi file... %w", err)
	}
	return nil
}

// NoteOns lists the keys of every note-on event, in track order.
func NoteOns(s *smf.SMF) []uint8 {
	var keys []uint8
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) {
				keys = append(keys, key)
			}
		}
	}
	return keys
}
