package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/file"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/util"
	"github.com/stretchr/testify/assert"
)

const fixture = "testdata/chord-fingers.csv"

const fixtureDeclaration = `static CHORDS = {
    "C": "x|3-3|2-2|o|1-1|o",
    "C[3]": "x|3-1|5-3|5-3|5-3|3-1",
    "C[3-1]": "x|3-1|5-3|5-3|5-3|3-1",
    "Am": "x|o|2-2|2-3|1-1|o",
    "F5": "13-1-1|x|x|x|x|8-4-4",
    "C#/Db7": "x|4-3|3-2|4-4|2-1|x",
    "ERROR": "x|x|x|x|x|x"
}`

func TestBuildDatabaseFromFixture(t *testing.T) {
	rows, err := file.ReadRows(fixture)
	assert := assert.New(t)
	assert.NoError(err)

	var seen []string
	d := BuildDatabase(pitch.Standard, rows, func(e model.ChordEntry) {
		seen = append(seen, e.Key)
	})

	assert.Equal(d.Keys(), seen)
	assert.Equal([]string{"C", "C[3]", "C[3-1]", "Am", "F5", "C#/Db7", "ERROR"}, d.Keys())

	f5, _ := d.Get("F5")
	assert.True(f5.Normalized)
	assert.Equal(8, f5.MinFret)
}

func TestConvertWritesEverySink(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INDEX_PATH", filepath.Join(dir, "index"))
	opts := ConvertOptions{
		Input:  fixture,
		Output: filepath.Join(dir, "guitar-chords-db.js"),
		YAML:   filepath.Join(dir, "chords.yaml"),
		SQLite: filepath.Join(dir, "chords.db"),
		Quiet:  true,
	}

	d, err := Convert(opts)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(7, d.Len())

	data, err := os.ReadFile(opts.Output)
	assert.NoError(err)
	assert.Equal(fixtureDeclaration, string(data))

	snap, err := util.ReadBinary[model.Snapshot](util.GetSnapshotPath())
	assert.NoError(err)
	assert.Equal(d.Entries(), snap.Entries)
	assert.Equal(fixture, snap.InputPath)
	assert.NotEmpty(snap.RunId)

	fromSQLite, err := db.ReadSQLite(opts.SQLite)
	assert.NoError(err)
	assert.Equal(d.Keys(), fromSQLite.Keys())

	_, err = os.Stat(opts.YAML)
	assert.NoError(err)
}

func TestConvertMissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INDEX_PATH", filepath.Join(dir, "index"))
	opts := ConvertOptions{
		Input:  filepath.Join(dir, "missing.csv"),
		Output: filepath.Join(dir, "guitar-chords-db.js"),
		Quiet:  true,
	}

	_, err := Convert(opts)
	assert := assert.New(t)
	assert.Error(err)
	assert.Contains(err.Error(), "not found")

	_, err = os.Stat(opts.Output)
	assert.True(os.IsNotExist(err))
	_, err = os.Stat(util.GetSnapshotPath())
	assert.True(os.IsNotExist(err))
}
