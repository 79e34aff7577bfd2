package file

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
)

// ReadRows reads a semicolon-delimited table with a header line.
func ReadRows(path string) ([]model.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseRows(f)
}

// ParseRows turns each record into a header-keyed row. Columns missing from
// a short record are absent from its row.
func ParseRows(r io.Reader) ([]model.Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read csv header")
	}

	var rows []model.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read csv row %d", len(rows)+2)
		}

		row := make(model.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
