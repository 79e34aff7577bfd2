package model

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/constants"
)

// Row is one record of the input table, column name to cell.
type Row = map[string]string

type StringKind uint8

const (
	Muted StringKind = iota
	Open
	Fretted
	// fretted string with no note left to look up
	Missing
)

type StringEncoding struct {
	Kind   StringKind
	Fret   int
	Finger string

	// set by the span normalizer
	Relabeled bool
}

func (s StringEncoding) String() string {
	switch s.Kind {
	case Muted:
		return "x"
	case Open:
		return "o"
	case Missing:
		return "?"
	}
	if s.Relabeled {
		return fmt.Sprintf("%d-%s-%s", s.Fret, s.Finger, s.Finger)
	}
	return fmt.Sprintf("%d-%s", s.Fret, s.Finger)
}

type ChordShape struct {
	Strings [constants.StringCount]StringEncoding

	// 0 when no string is fretted
	MinFret int
	MaxFret int
}

// Format joins the per-string tokens the way the output table stores them.
func (c ChordShape) Format() string {
	parts := make([]string, len(c.Strings))
	for i, s := range c.Strings {
		parts[i] = s.String()
	}
	return strings.Join(parts, "|")
}

func (c ChordShape) Span() int {
	return c.MaxFret - c.MinFret
}

type ChordEntry struct {
	Key     string
	Base    string
	Value   string
	MinFret int
	MaxFret int

	// NOTE: true when at least one normalizer pass ran
	Normalized bool
}
