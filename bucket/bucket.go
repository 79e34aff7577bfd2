package bucket

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/model"
)

var disambiguator = regexp.MustCompile(`.+\[(\d+)(-(\d+))?]`)

// FretVersion reads the [fret] or [fret-version] suffix of a key. A bare
// name is fret 0, and a missing version counts as 1.
func FretVersion(key string) (int, int) {
	fret, version := 0, 1
	match := disambiguator.FindStringSubmatch(key)
	if match == nil {
		return fret, version
	}
	if match[1] != "" {
		fret, _ = strconv.Atoi(match[1])
	}
	if match[3] != "" {
		version, _ = strconv.Atoi(match[3])
	}
	return fret, version
}

func isVariation(key string, name string) bool {
	return key == name || strings.HasPrefix(key, name+"[")
}

// Variations returns every entry stored under name or name[...], ordered by
// fret and then version. Ties keep insertion order.
func Variations(d *db.Database, name string) []model.ChordEntry {
	var res []model.ChordEntry
	for _, e := range d.Entries() {
		if isVariation(e.Key, name) {
			res = append(res, e)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		fi, vi := FretVersion(res[i].Key)
		fj, vj := FretVersion(res[j].Key)
		if fi != fj {
			return fi < fj
		}
		return vi < vj
	})
	return res
}

// GroupByBase counts entries per base name.
func GroupByBase(d *db.Database) map[string]int {
	res := make(map[string]int)
	for _, e := range d.Entries() {
		res[e.Base] += 1
	}
	return res
}
