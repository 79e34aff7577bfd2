package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/fretdex/bucket"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Creates a report on the last conversion`,
	Run: func(cmd *cobra.Command, args []string) {
		snap, d := loadSnapshotOrPanic()
		fmt.Printf("run: %v (%v) from %v\n", snap.RunId, snap.CreatedAt.Format("2006-01-02 15:04:05"), snap.InputPath)
		fmt.Print(analyze(d).String())
	},
}

type databaseReport struct {
	numEntries    int
	numBases      int
	numErrors     int
	numNormalized int
	numIncomplete int
	numRenamed    int
	topBases      []string
	variations    []int
}

func analyze(d *db.Database) databaseReport {
	var report databaseReport
	for _, e := range d.Entries() {
		report.numEntries += 1
		if e.Base == constants.ErrorKey {
			report.numErrors += 1
		}
		if e.Normalized {
			report.numNormalized += 1
		}
		if strings.Contains(e.Value, "?") {
			report.numIncomplete += 1
		}
		if e.Key != e.Base {
			report.numRenamed += 1
		}
	}

	groups := bucket.GroupByBase(d)
	bases := util.GetKeys(groups)
	sort.Slice(bases, func(i, j int) bool {
		if groups[bases[i]] != groups[bases[j]] {
			return groups[bases[i]] > groups[bases[j]]
		}
		return bases[i] < bases[j]
	})
	report.numBases = len(bases)
	report.topBases = bases[:util.Min(5, len(bases))]
	for _, b := range report.topBases {
		report.variations = append(report.variations, groups[b])
	}
	return report
}

func (r databaseReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "entries: %v\n", r.numEntries)
	fmt.Fprintf(&b, "chord names: %v\n", r.numBases)
	fmt.Fprintf(&b, "renamed to avoid collisions: %v\n", r.numRenamed)
	fmt.Fprintf(&b, "octave shifted: %v\n", r.numNormalized)
	fmt.Fprintf(&b, "missing notes: %v\n", r.numIncomplete)
	fmt.Fprintf(&b, "malformed rows: %v\n", r.numErrors)
	for i, base := range r.topBases {
		fmt.Fprintf(&b, "  %v: %v variations\n", base, r.variations[i])
	}
	fmt.Fprintf(&b, "variations in top names: %v\n", util.Sum(r.variations))
	return b.String()
}

