package constants

import "os"

func GetIndexDir() string {
	path := os.Getenv("INDEX_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

const InputFile = "chord-fingers.csv"
const OutputFile = "guitar-chords-db.js"
const SnapshotFile = "chords.dat"

// written in front of the JSON object in the output file
const DeclarationPrefix = "static CHORDS = "

// column names in the input table
const (
	ColRoot    = "CHORD_ROOT"
	ColType    = "CHORD_TYPE"
	ColFingers = "FINGER_POSITIONS"
	ColNotes   = "NOTE_NAMES"
)

const StringCount = 6

// a shape whose fretted positions differ by more than this is not
// playable from one hand position
const MaxSpan = 5
const OctaveFrets = 12

// upper bound on normalizer passes; well-formed rows settle in one
const MaxNormalizePasses = 16

const ErrorKey = "ERROR"
