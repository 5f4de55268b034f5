package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsList bool

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show directory and file counts of one tree listing",
	Long:  `Parse a single tree listing and print how many directories and files it contains.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		eng := newEngine()

		result, err := eng.Load(args[0])
		if err != nil {
			if printLoadErrors(out, err) {
				return nil
			}
			return err
		}

		_, _ = headerColor.Fprintf(out, "%s:\n", args[0])
		printStat(out, "Directories", result.DirCount())
		printStat(out, "Files", result.FileCount())
		printStat(out, "Total", result.Total())
		printStat(out, "Skipped lines", result.Skipped)

		if statsList {
			_, _ = fmt.Fprintln(out)
			printList(out, "Directories", result.Dirs.Sorted())
			_, _ = fmt.Fprintln(out)
			printList(out, "Files", result.Files.Sorted())
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVarP(&statsList, "list", "l", false, "List every directory and file path")
}
