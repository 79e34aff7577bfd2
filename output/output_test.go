package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func sampleDatabase() *db.Database {
	return db.FromEntries([]model.ChordEntry{
		{Key: "C", Value: "x|3-3|2-2|o|1-1|o"},
		{Key: "C[3]", Value: "x|3-1|5-3|5-3|5-3|3-1"},
		{Key: "Am", Value: "x|o|2-2|2-3|1-1|o"},
		{Key: "?&<", Value: "?|x|x|x|x|x"},
	})
}

func TestDeclarationFormat(t *testing.T) {
	data, err := Declaration(sampleDatabase())

	want := `static CHORDS = {
    "C": "x|3-3|2-2|o|1-1|o",
    "C[3]": "x|3-1|5-3|5-3|5-3|3-1",
    "Am": "x|o|2-2|2-3|1-1|o",
    "?&<": "?|x|x|x|x|x"
}`

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(want, string(data))
}

func TestDeclarationOfEmptyDatabase(t *testing.T) {
	data, err := Declaration(db.New())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("static CHORDS = {}", string(data))
}

func TestJSONEscapesQuotes(t *testing.T) {
	d := db.FromEntries([]model.ChordEntry{{Key: `A"b`, Value: `x\y`}})
	data, err := JSON(d)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("{\n    \"A\\\"b\": \"x\\\\y\"\n}", string(data))
}

func TestWriteDeclaration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guitar-chords-db.js")

	assert := assert.New(t)
	assert.NoError(WriteDeclaration(path, sampleDatabase()))
	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Contains(string(data), `"C[3]": "x|3-1|5-3|5-3|5-3|3-1",`)
}

func TestYAMLKeepsOrder(t *testing.T) {
	data, err := YAML(sampleDatabase())
	assert := assert.New(t)
	assert.NoError(err)

	var doc yaml.Node
	assert.NoError(yaml.Unmarshal(data, &doc))
	mapping := doc.Content[0]

	var keys, values []string
	for i := 0; i < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
		values = append(values, mapping.Content[i+1].Value)
	}
	assert.Equal([]string{"C", "C[3]", "Am", "?&<"}, keys)
	assert.Equal("?|x|x|x|x|x", values[3])
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chords.yaml")

	assert := assert.New(t)
	assert.NoError(WriteYAML(path, sampleDatabase()))

	data, err := os.ReadFile(path)
	assert.NoError(err)
	var m map[string]string
	assert.NoError(yaml.Unmarshal(data, &m))
	assert.Equal("x|o|2-2|2-3|1-1|o", m["Am"])
}
