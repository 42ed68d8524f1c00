package cmd

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"wemtool/internal/adapters/filesystem"
	"wemtool/internal/application/commands"
)

var organizeCmd = &cobra.Command{
	Use:   "organize-dialogue <metadata-dir> <output-dir>",
	Short: "Sort dialogue metadata into its object path folders",
	Long: `Copy every dialogue metadata document into the folder named by its object
path. Secondary *.2.json exports are ignored.

Example:
  wemtool-cli organize-dialogue ./Exports/Dialogue ./Dialogue`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		organize := commands.NewOrganizeDialogueCommand(
			do.MustInvoke[*filesystem.DialogueOrganizer](container),
			do.MustInvoke[*filesystem.Relocator](container),
			args[0], args[1])
		result, err := organize.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if showFailures {
			for _, f := range result.Failures {
				fmt.Println("  " + f.Line())
			}
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	organizeCmd.Flags().BoolVar(&showFailures, "show-failures", false, "print every failed copy")
	rootCmd.AddCommand(organizeCmd)
}
