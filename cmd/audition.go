package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/sample"
	"github.com/spf13/cobra"
)

var auditionOut string

func init() {
	auditionCmd.Flags().StringVarP(&auditionOut, "out", "o", "", "midi file to write (default <name>.mid)")
	rootCmd.AddCommand(auditionCmd)
}

var auditionCmd = &cobra.Command{
	Use:   "audition <name>",
	Short: "Writes a chord as a strummed midi file",
	Long:  `Writes one chord from the last conversion as a strummed midi file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, d := loadSnapshotOrPanic()
		return audition(d, args[0], auditionOut)
	},
}

func midiFilename(name string) string {
	replacer := strings.NewReplacer("/", "_", "#", "sharp", "[", "_", "]", "")
	return replacer.Replace(name) + ".mid"
}

func audition(d *db.Database, name string, out string) error {
	e, ok := d.Get(name)
	if !ok {
		return fmt.Errorf("no chord named %v", name)
	}
	if out == "" {
		out = midiFilename(name)
	}

	diagram := chord.ParseValue(pitch.Standard, e.Value)
	s, err := sample.Strum(pitch.Standard, diagram)
	if err != nil {
		return err
	}
	if err := midi.WriteMidiFile(out, s); err != nil {
		return err
	}
	fmt.Printf("Wrote %v (%v) with keys %v to %v\n", e.Key, e.Value, sample.Keys(pitch.Standard, diagram), out)
	return nil
}
