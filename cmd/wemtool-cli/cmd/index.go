package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"wemtool/internal/adapters/filesystem"
	"wemtool/internal/application/commands"
	"wemtool/internal/di/providers"
)

var lookupLimit int

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Load the mapping into the lookup index",
	Long: `Rebuild the SQLite lookup index from the saved mapping. Run it after every
scan to keep lookup and duplicates current.

Example:
  wemtool-cli index`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		index := commands.NewIndexCommand(
			do.MustInvoke[*filesystem.MappingStore](container),
			do.MustInvoke[*providers.IndexHandle](container),
			cfg.MappingPath)
		result, err := index.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Find media IDs or debug names",
	Long: `Look up the index by media ID or debug name. Exact matches come first;
other matches are ranked by relevance using fuzzy matching.

Examples:
  wemtool-cli lookup Media/123456.wem
  wemtool-cli lookup line_01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lookup := commands.NewLookupCommand(do.MustInvoke[*providers.IndexHandle](container), args[0], lookupLimit)
		results, err := lookup.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s -> %s\n", r.ID, r.DebugName)
		}
		return nil
	},
}

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "List debug names shared by several media IDs",
	Long: `List every debug name asserted for more than one media ID. An obfuscate run
can only restore one ID per name.

Example:
  wemtool-cli duplicates`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		duplicates := commands.NewDuplicatesCommand(do.MustInvoke[*providers.IndexHandle](container))
		result, err := duplicates.Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, s := range result.Shared {
			fmt.Printf("%s\n  %s\n", s.DebugName, strings.Join(s.IDs, "\n  "))
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	lookupCmd.Flags().IntVarP(&lookupLimit, "limit", "n", 20, "maximum number of results")
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(duplicatesCmd)
}
