package pitch

import "github.com/jsphweid/fretdex/constants"

var spellings = map[string]int{
	"C": 0, "B#": 0, "Dbb": 0,
	"C#": 1, "Db": 1, "B##": 1,
	"D": 2, "C##": 2, "Ebb": 2,
	"D#": 3, "Eb": 3, "Fbb": 3,
	"E": 4, "D##": 4, "Fb": 4,
	"F": 5, "E#": 5, "Gbb": 5,
	"F#": 6, "Gb": 6, "E##": 6,
	"G": 7, "F##": 7, "Abb": 7,
	"G#": 8, "Ab": 8,
	"A": 9, "G##": 9, "Bbb": 9,
	"A#": 10, "Bb": 10, "Cbb": 10,
	"B": 11, "A##": 11, "Cb": 11,
}

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// ClassOf maps a note spelling to its pitch class. Matching is exact and
// case sensitive; anything not in the table is treated as C.
func ClassOf(spelling string) int {
	return spellings[spelling]
}

func Known(spelling string) bool {
	_, ok := spellings[spelling]
	return ok
}

// Name returns the sharp spelling of a pitch class.
func Name(class int) string {
	return names[mod12(class)]
}

// FretFor returns the fret on a string tuned to open that sounds the given
// note. The caller handles open strings, so a zero difference means the
// octave at fret 12.
func FretFor(open int, spelling string) int {
	fret := mod12(ClassOf(spelling) - open)
	if fret == 0 {
		return constants.OctaveFrets
	}
	return fret
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}

// Tuning holds the MIDI note numbers of the open strings, lowest string
// first.
type Tuning struct {
	Name string
	Open [constants.StringCount]uint8
}

// Standard is E2 A2 D3 G3 B3 E4.
var Standard = Tuning{
	Name: "standard",
	Open: [constants.StringCount]uint8{40, 45, 50, 55, 59, 64},
}

func (t Tuning) Class(stringIdx int) int {
	return int(t.Open[stringIdx]) % 12
}

// NoteAt names the note sounding on a string at the given fret.
func (t Tuning) NoteAt(stringIdx int, fret int) string {
	return Name(t.Class(stringIdx) + fret)
}
