package sample

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/pitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 960

// delay between neighbouring strings in a strum
const strumTicks = 40

// how long the chord rings after the last string is hit
const ringTicks = 4 * ticksPerQuarter

const velocity = 96

// Keys lists the MIDI keys a diagram sounds, lowest string first.
func Keys(t pitch.Tuning, d chord.Diagram) []uint8 {
	var keys []uint8
	for i, s := range d.Strings {
		if s.Fret == nil || i >= len(t.Open) {
			continue
		}
		keys = append(keys, t.Open[i]+uint8(*s.Fret))
	}
	return keys
}

// Strum builds a single track file that plays the chord as a downstroke.
func Strum(t pitch.Tuning, d chord.Diagram) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	keys := Keys(t, d)
	var track smf.Track
	for i, key := range keys {
		var delta uint32
		if i > 0 {
			delta = strumTicks
		}
		track.Add(delta, midi.NoteOn(0, key, velocity))
	}
	for i, key := range keys {
		var delta uint32
		if i == 0 {
			delta = ringTicks
		}
		track.Add(delta, midi.NoteOff(0, key))
	}
	track.Close(0)

	if err := res.Add(track); err != nil {
		return nil, err
	}
	return res, nil
}
