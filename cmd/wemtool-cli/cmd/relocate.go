package cmd

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"wemtool/internal/adapters/filesystem"
	"wemtool/internal/application/commands"
	"wemtool/internal/domain"
)

var showFailures bool

var unobfuscateCmd = &cobra.Command{
	Use:   "unobfuscate <media-dir> <output-dir>",
	Short: "Copy assets from media IDs to debug names",
	Long: `Copy every mapped asset found under <media-dir> to <output-dir>, named by
its debug name with the .wem extension.

Example:
  wemtool-cli unobfuscate ./Content/Media ./Named`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelocate(cmd, args[0], args[1], domain.Forward)
	},
}

var obfuscateCmd = &cobra.Command{
	Use:   "obfuscate <named-dir> <output-dir>",
	Short: "Copy assets from debug names back to media IDs",
	Long: `Copy assets named by debug name back to their media ID paths. Debug names
shared by several IDs keep only the last ID and are reported.

Example:
  wemtool-cli obfuscate ./Named ./Content/Media`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelocate(cmd, args[0], args[1], domain.Reverse)
	},
}

func runRelocate(cmd *cobra.Command, src, dst string, dir domain.Direction) error {
	relocate := commands.NewRelocateCommand(
		do.MustInvoke[*filesystem.MappingStore](container),
		do.MustInvoke[*filesystem.Relocator](container),
		cfg.MappingPath, src, dst, dir)

	result, err := relocate.Execute(cmd.Context())
	if err != nil {
		return err
	}

	if showFailures {
		for _, line := range result.Summary.ErrorLines() {
			fmt.Println("  " + line)
		}
		for _, a := range result.Summary.Discarded {
			fmt.Println("  " + a.String())
		}
	}
	fmt.Println(result.Message)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{unobfuscateCmd, obfuscateCmd} {
		c.Flags().BoolVar(&showFailures, "show-failures", false, "print every failed copy")
		rootCmd.AddCommand(c)
	}
}
