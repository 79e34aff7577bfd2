package chord

import (
	"math"
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
)

const noFret = math.MaxInt

// walk is the state threaded through the six strings by Build.
type walk struct {
	shape  model.ChordShape
	cursor int
	min    int
}

func (w walk) step(t pitch.Tuning, stringIdx int, finger string, notes []string) walk {
	switch finger {
	case "x":
		w.shape.Strings[stringIdx] = model.StringEncoding{Kind: model.Muted}
		return w
	case "0":
		// open strings sound the tuning pitch; their note is skipped, not looked up
		w.shape.Strings[stringIdx] = model.StringEncoding{Kind: model.Open}
		w.cursor++
		return w
	}

	if w.cursor >= len(notes) {
		w.shape.Strings[stringIdx] = model.StringEncoding{Kind: model.Missing, Finger: finger}
		return w
	}

	fret := pitch.FretFor(t.Class(stringIdx), notes[w.cursor])
	w.cursor++
	if fret == 0 {
		fret = constants.OctaveFrets
	}

	if fret > 0 && fret < w.min {
		w.min = fret
	}
	if fret > w.shape.MaxFret {
		w.shape.MaxFret = fret
	}
	w.shape.Strings[stringIdx] = model.StringEncoding{
		Kind:   model.Fretted,
		Fret:   fret,
		Finger: finger,
	}
	return w
}

// Build encodes one fingering. notes holds one spelling per non-muted
// string, in string order.
func Build(t pitch.Tuning, fingers [constants.StringCount]string, notes []string) model.ChordShape {
	w := walk{min: noFret}
	for i, finger := range fingers {
		w = w.step(t, i, finger, notes)
	}
	if w.min != noFret {
		w.shape.MinFret = w.min
	}
	return w.shape
}

// Normalize moves the low frets of a wide shape up an octave until the
// shape fits in a MaxSpan window. MaxFret stays the reference for every
// pass. Every fretted string touched by a pass is relabeled.
func Normalize(shape model.ChordShape) model.ChordShape {
	for pass := 0; pass < constants.MaxNormalizePasses && shape.Span() > constants.MaxSpan; pass++ {
		changed := false
		low := noFret
		for i := range shape.Strings {
			s := &shape.Strings[i]
			if s.Kind != model.Fretted {
				continue
			}
			if shape.MaxFret-s.Fret > constants.MaxSpan {
				s.Fret += constants.OctaveFrets
				changed = true
			}
			s.Relabeled = true
			if s.Fret < low {
				low = s.Fret
			}
		}
		if low != noFret {
			shape.MinFret = low
		}
		if !changed {
			break
		}
	}
	return shape
}

func Normalized(shape model.ChordShape) bool {
	for _, s := range shape.Strings {
		if s.Relabeled {
			return true
		}
	}
	return false
}

func BaseKey(root string, chordType string) string {
	switch chordType {
	case "maj":
		return root
	case "min":
		return root + "m"
	}
	return root + chordType
}

// ErrorShape is what a malformed row turns into.
func ErrorShape() model.ChordShape {
	var shape model.ChordShape
	for i := range shape.Strings {
		shape.Strings[i] = model.StringEncoding{Kind: model.Muted}
	}
	return shape
}

func cleanCell(cell string) string {
	return strings.Trim(strings.TrimSpace(cell), `"`)
}

func splitCell(cell string) []string {
	parts := strings.Split(cleanCell(cell), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Convert turns one input row into its base key and normalized shape. Rows
// with missing columns or a finger list that is not six entries long come
// back as the ERROR sentinel.
func Convert(t pitch.Tuning, row model.Row) (string, model.ChordShape) {
	root, okRoot := row[constants.ColRoot]
	chordType, okType := row[constants.ColType]
	fingerCell, okFingers := row[constants.ColFingers]
	noteCell, okNotes := row[constants.ColNotes]
	if !okRoot || !okType || !okFingers || !okNotes {
		return constants.ErrorKey, ErrorShape()
	}

	tokens := splitCell(fingerCell)
	if len(tokens) != constants.StringCount {
		return constants.ErrorKey, ErrorShape()
	}
	var fingers [constants.StringCount]string
	copy(fingers[:], tokens)

	shape := Normalize(Build(t, fingers, splitCell(noteCell)))
	return BaseKey(root, chordType), shape
}
