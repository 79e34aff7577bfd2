package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/file"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/output"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/util"
	"github.com/spf13/cobra"
)

type ConvertOptions struct {
	Input  string
	Output string
	YAML   string
	SQLite string
	Quiet  bool
}

var convertOpts ConvertOptions

func init() {
	convertCmd.Flags().StringVarP(&convertOpts.Input, "input", "i", constants.InputFile, "semicolon delimited fingering table")
	convertCmd.Flags().StringVarP(&convertOpts.Output, "output", "o", constants.OutputFile, "file receiving the CHORDS declaration")
	convertCmd.Flags().StringVar(&convertOpts.YAML, "yaml", "", "also write the table as YAML to this path")
	convertCmd.Flags().StringVar(&convertOpts.SQLite, "sqlite", "", "also write the table as a SQLite database to this path")
	convertCmd.Flags().BoolVarP(&convertOpts.Quiet, "quiet", "q", false, "do not print every entry")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Converts the fingering table",
	Long:  `Converts the fingering table into the CHORDS lookup declaration`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := Convert(convertOpts)
		return err
	},
}

// BuildDatabase runs every row through the shape pipeline in order.
func BuildDatabase(t pitch.Tuning, rows []model.Row, onEntry func(model.ChordEntry)) *db.Database {
	d := db.New()
	for _, row := range rows {
		base, shape := chord.Convert(t, row)
		e := d.Assign(base, shape)
		if onEntry != nil {
			onEntry(e)
		}
	}
	return d
}

func Convert(opts ConvertOptions) (*db.Database, error) {
	rows, err := file.ReadRows(opts.Input)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file '%s' not found, please ensure the file is in the same directory", opts.Input)
	}
	if err != nil {
		return nil, err
	}

	var printEntry func(model.ChordEntry)
	if !opts.Quiet {
		printEntry = func(e model.ChordEntry) {
			fmt.Printf("%v: %v\n", e.Key, e.Value)
		}
	}
	d := BuildDatabase(pitch.Standard, rows, printEntry)

	if err := output.WriteDeclaration(opts.Output, d); err != nil {
		return nil, err
	}
	fmt.Printf("Output successfully written to %v\n", opts.Output)

	if err := writeSnapshot(opts.Input, d); err != nil {
		return nil, err
	}

	if opts.YAML != "" {
		if err := output.WriteYAML(opts.YAML, d); err != nil {
			return nil, err
		}
		fmt.Printf("YAML written to %v\n", opts.YAML)
	}

	if opts.SQLite != "" {
		if err := db.WriteSQLite(opts.SQLite, d); err != nil {
			return nil, err
		}
		fmt.Printf("SQLite database written to %v\n", opts.SQLite)
	}

	return d, nil
}

func writeSnapshot(input string, d *db.Database) error {
	if err := util.EnsureIndexDir(); err != nil {
		return err
	}
	snap := model.Snapshot{
		RunId:     uuid.New().String(),
		CreatedAt: time.Now(),
		InputPath: input,
		Entries:   d.Entries(),
	}
	return util.CreateBinary(util.GetSnapshotPath(), snap)
}

func loadSnapshotOrPanic() (model.Snapshot, *db.Database) {
	snap := util.ReadBinaryOrPanic[model.Snapshot](util.GetSnapshotPath())
	return snap, db.FromEntries(snap.Entries)
}
