package chord

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/util"
)

var stringPattern = regexp.MustCompile(`(?i)o|x|\d+(-([1-4t]))?`)

type DiagramString struct {
	// nil when the string is muted
	Fret   *int
	Finger string
	Note   string
}

// Diagram is a stored value parsed back into something that can be drawn.
type Diagram struct {
	Strings          []DiagramString
	StartFret        int
	VisibleFretCount int

	// tokens that did not parse; drawn as muted
	Invalid []string
}

func ParseValue(t pitch.Tuning, value string) Diagram {
	var d Diagram
	for _, item := range strings.Split(value, "|") {
		if item == "" {
			continue
		}
		d.Strings = append(d.Strings, parseString(item))
		if !stringPattern.MatchString(item) {
			d.Invalid = append(d.Invalid, item)
		}
	}

	var frets []int
	for i := range d.Strings {
		s := &d.Strings[i]
		if s.Fret == nil {
			continue
		}
		frets = append(frets, *s.Fret)
		if i < len(t.Open) {
			s.Note = t.NoteAt(i, *s.Fret)
		}
	}

	d.StartFret = 1
	d.VisibleFretCount = 3
	if len(frets) > 0 {
		low, high := frets[0], frets[0]
		for _, f := range frets[1:] {
			low = util.Min(low, f)
			high = util.Max(high, f)
		}
		d.VisibleFretCount = util.Max(3, high-low+1)
		d.StartFret = util.Max(1, high-d.VisibleFretCount+1)
	}
	return d
}

func parseString(item string) DiagramString {
	match := stringPattern.FindStringSubmatch(item)
	if match == nil {
		return DiagramString{}
	}
	switch strings.ToLower(match[0]) {
	case "x":
		return DiagramString{}
	case "o":
		fret := 0
		return DiagramString{Fret: &fret}
	}

	digits := match[0]
	if idx := strings.IndexByte(digits, '-'); idx >= 0 {
		digits = digits[:idx]
	}
	fret, err := strconv.Atoi(digits)
	if err != nil {
		return DiagramString{}
	}
	return DiagramString{Fret: &fret, Finger: strings.ToUpper(match[2])}
}

// Notes lists the sounding note per string, "" for muted strings.
func (d Diagram) Notes() []string {
	res := make([]string, len(d.Strings))
	for i, s := range d.Strings {
		res[i] = s.Note
	}
	return res
}

// Render draws the diagram as text, one line per visible fret.
func (d Diagram) Render(t pitch.Tuning, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", name)

	b.WriteString("   ")
	for i := range d.Strings {
		open := ""
		if i < len(t.Open) {
			open = t.NoteAt(i, 0)
		}
		fmt.Fprintf(&b, "%-3s", open)
	}
	b.WriteString("\n   ")
	for _, s := range d.Strings {
		switch {
		case s.Fret == nil:
			b.WriteString("x  ")
		case *s.Fret == 0:
			b.WriteString("o  ")
		default:
			b.WriteString("   ")
		}
	}
	b.WriteString("\n")

	for row := 0; row < d.VisibleFretCount; row++ {
		fret := d.StartFret + row
		fmt.Fprintf(&b, "%2d ", fret)
		for _, s := range d.Strings {
			mark := "|"
			if s.Fret != nil && *s.Fret == fret {
				mark = "*"
				if s.Finger != "" {
					mark = s.Finger
				}
			}
			fmt.Fprintf(&b, "%-3s", mark)
		}
		b.WriteString("\n")
	}

	b.WriteString("   ")
	for _, note := range d.Notes() {
		fmt.Fprintf(&b, "%-3s", note)
	}
	b.WriteString("\n")
	return b.String()
}
