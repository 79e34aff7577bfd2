package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/bucket"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort int

// loaded snapshot, swapped on reload
var served struct {
	sync.RWMutex
	snap model.Snapshot
	db   *db.Database
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves chord lookups from the last conversion`,
	Run: func(cmd *cobra.Command, args []string) {
		serve(servePort)
	},
}

func setServed(snap model.Snapshot) {
	d := db.FromEntries(snap.Entries)
	served.Lock()
	defer served.Unlock()
	served.snap = snap
	served.db = d
}

func LoadServeFiles() {
	snap, _ := loadSnapshotOrPanic()
	setServed(snap)
	fmt.Printf("Loaded %v chords from run %v\n", len(snap.Entries), snap.RunId)
}

func reloadServeFiles() {
	snap, err := util.ReadBinary[model.Snapshot](util.GetSnapshotPath())
	if err != nil {
		fmt.Printf("Keeping current chords, reload failed: %v\n", err)
		return
	}
	setServed(snap)
	fmt.Printf("Reloaded %v chords from run %v\n", len(snap.Entries), snap.RunId)
}

// watchSnapshot reloads the served chords shortly after the snapshot file
// stops changing.
func watchSnapshot(path string, interval time.Duration, stop <-chan struct{}) {
	debounced := debounce.New(interval)
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil || info.ModTime().Equal(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			debounced(reloadServeFiles)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func notFound(w http.ResponseWriter, name string) {
	writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "chord not found: " + name})
}

func toResponse(e model.ChordEntry) model.ChordResponse {
	diagram := chord.ParseValue(pitch.Standard, e.Value)
	return model.ChordResponse{
		Key:     e.Key,
		Value:   e.Value,
		MinFret: e.MinFret,
		MaxFret: e.MaxFret,
		Notes:   diagram.Notes(),
	}
}

func HandleKeys(w http.ResponseWriter, r *http.Request) {
	served.RLock()
	defer served.RUnlock()
	if served.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, model.ErrorResponse{Error: "no chords loaded"})
		return
	}
	writeJSON(w, http.StatusOK, model.KeysResponse{RunId: served.snap.RunId, Keys: served.db.Keys()})
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	served.RLock()
	defer served.RUnlock()
	if served.db == nil {
		notFound(w, name)
		return
	}
	e, ok := served.db.Get(name)
	if !ok {
		notFound(w, name)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(e))
}

func HandleVariations(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	served.RLock()
	defer served.RUnlock()
	if served.db == nil {
		notFound(w, name)
		return
	}
	variations := bucket.Variations(served.db, name)
	if len(variations) == 0 {
		notFound(w, name)
		return
	}

	res := model.VariationsResponse{Name: name}
	for _, e := range variations {
		res.Variations = append(res.Variations, toResponse(e))
	}
	writeJSON(w, http.StatusOK, res)
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords", HandleKeys).Methods("GET")
	// names may contain a slash, as in C#/Db
	router.HandleFunc("/chords/{name:.+}", HandleChord).Methods("GET")
	router.HandleFunc("/variations/{name:.+}", HandleVariations).Methods("GET")
	return cors.AllowAll().Handler(router)
}

func serve(port int) {
	LoadServeFiles()

	stop := make(chan struct{})
	defer close(stop)
	go watchSnapshot(util.GetSnapshotPath(), time.Second, stop)

	fmt.Printf("Listening on :%v\n", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), NewRouter()))
}
