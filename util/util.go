package util

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/fretdex/constants"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func EnsureIndexDir() error {
	return os.MkdirAll(constants.GetIndexDir(), 0755)
}

func GetSnapshotPath() string {
	return filepath.Join(constants.GetIndexDir(), constants.SnapshotFile)
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func CreateBinary(filename string, data any) error {
	fmt.Printf("Creating binary for filename: %v\n", filename)
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)

	if err := encoder.Encode(data); err != nil {
		return errors.Wrap(err, "could not encode "+filename)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "write failed for file "+filename)
	}
	return nil
}

func ReadBinary[A any](path string) (A, error) {
	var data A
	f, err := os.Open(path)
	if err != nil {
		return data, errors.Wrap(err, "could not load binary file")
	}
	defer f.Close()

	decoder := gob.NewDecoder(f)
	if err := decoder.Decode(&data); err != nil {
		return data, errors.Wrap(err, "could not decode binary file "+path)
	}
	return data, nil
}

func ReadBinaryOrPanic[A any](path string) A {
	data, err := ReadBinary[A](path)
	if err != nil {
		panic(err.Error())
	}
	return data
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
