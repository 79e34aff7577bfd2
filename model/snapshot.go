package model

import "time"

// Snapshot is the gob-encoded result of one conversion run, read back by
// inspect, report, serve and audition.
type Snapshot struct {
	RunId     string
	CreatedAt time.Time
	InputPath string
	Entries   []ChordEntry
}
