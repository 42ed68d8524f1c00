package cmd

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"wemtool/internal/adapters/filesystem"
	"wemtool/internal/application/commands"
)

var (
	scanOnly  string
	scanMerge bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <metadata-dir>",
	Short: "Build the media ID to debug name mapping",
	Long: `Walk a tree of exported metadata JSON, collect every MediaPathName and
DebugName pair from audio events and save the mapping.

Examples:
  wemtool-cli scan ./Exports
  wemtool-cli scan ./Exports --only Events
  wemtool-cli scan ./DLC/Exports --merge`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if scanOnly != "" {
			cfg.Scan.OnlyFolder = scanOnly
		}

		scan := commands.NewScanCommand(
			do.MustInvoke[*filesystem.Scanner](container),
			do.MustInvoke[*filesystem.MappingStore](container),
			args[0], cfg.MappingPath)
		scan.Merge = scanMerge

		result, err := scan.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanOnly, "only", "", "only scan metadata under a folder with this name")
	scanCmd.Flags().BoolVar(&scanMerge, "merge", false, "merge into the existing mapping instead of replacing it")
	rootCmd.AddCommand(scanCmd)
}
