package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Guitar chord database builder",
	Long: `Builds a keyed guitar chord lookup table from a semicolon delimited
table of fingerings, and serves, inspects and auditions the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
