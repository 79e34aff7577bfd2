package output

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/db"
	"github.com/pkg/errors"
)

const indent = "    "

func encodeString(s string) ([]byte, error) {
	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// JSON renders the database as an indented JSON object in insertion order.
func JSON(d *db.Database) ([]byte, error) {
	entries := d.Entries()
	if len(entries) == 0 {
		return []byte("{}"), nil
	}

	buf := new(bytes.Buffer)
	buf.WriteString("{\n")
	for i, e := range entries {
		key, err := encodeString(e.Key)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding key %q", e.Key)
		}
		value, err := encodeString(e.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding value of %q", e.Key)
		}

		buf.WriteString(indent)
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(entries)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// Declaration is the JSON object assigned to the CHORDS declaration.
func Declaration(d *db.Database) ([]byte, error) {
	data, err := JSON(d)
	if err != nil {
		return nil, err
	}
	return append([]byte(constants.DeclarationPrefix), data...), nil
}

func WriteDeclaration(path string, d *db.Database) error {
	data, err := Declaration(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
