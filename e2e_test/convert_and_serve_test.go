//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/fretdex/cmd"
	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "fretdex-e2e")
	if err != nil {
		panic(err.Error())
	}
	os.Setenv("INDEX_PATH", dir)

	_, err = cmd.Convert(cmd.ConvertOptions{
		Input:  "../cmd/testdata/chord-fingers.csv",
		Output: filepath.Join(dir, "guitar-chords-db.js"),
		Quiet:  true,
	})
	if err != nil {
		panic(err.Error())
	}
	cmd.LoadServeFiles()

	exitVal := m.Run()

	os.RemoveAll(dir)
	os.Exit(exitVal)
}

func get(target string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)
	return w.Result()
}

func TestOpenCChordE2E(t *testing.T) {
	resp := get("/chords/C")
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var chordResponse model.ChordResponse
	err := json.Unmarshal(respBody, &chordResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(chordResponse, model.ChordResponse{
		Key:     "C",
		Value:   "x|3-3|2-2|o|1-1|o",
		MinFret: 1,
		MaxFret: 3,
		Notes:   []string{"", "C", "E", "G", "C", "E"},
	})
}

func TestCVariationsE2E(t *testing.T) {
	resp := get("/variations/C")
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var variations model.VariationsResponse
	err := json.Unmarshal(respBody, &variations)
	if err != nil {
		panic(err.Error())
	}

	var keys []string
	for _, v := range variations.Variations {
		keys = append(keys, v.Key)
	}
	assert.Equal(keys, []string{"C", "C[3]", "C[3-1]"})
}

func TestMalformedRowE2E(t *testing.T) {
	resp := get("/chords/ERROR")
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var chordResponse model.ChordResponse
	err := json.Unmarshal(respBody, &chordResponse)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal(chordResponse.Value, "x|x|x|x|x|x")
}
