package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/jsphweid/fretdex/bucket"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/spf13/cobra"
)

var inspectDebug bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectDebug, "debug", false, "dump the raw entries")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <name>",
	Short: "Draws every variation of a chord",
	Long:  `Draws every variation of a chord from the last conversion`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, d := loadSnapshotOrPanic()
		fmt.Print(inspect(d, args[0], inspectDebug))
	},
}

func inspect(d *db.Database, name string, debug bool) string {
	variations := bucket.Variations(d, name)
	if len(variations) == 0 {
		return fmt.Sprintf("No chord named %v\n", name)
	}

	var res string
	for _, e := range variations {
		diagram := chord.ParseValue(pitch.Standard, e.Value)
		res += diagram.Render(pitch.Standard, fmt.Sprintf("%v  %v", e.Key, e.Value))
		if len(diagram.Invalid) > 0 {
			res += fmt.Sprintf("unreadable strings: %v\n", diagram.Invalid)
		}
		if debug {
			res += spew.Sdump(e, diagram)
		}
		res += "\n"
	}
	return res
}
