package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"wemtool/internal/adapters/filesystem"
	"wemtool/internal/application/commands"
)

var (
	analyzeOutput string
	analyzeSizes  bool
	analyzeList   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <asset-dir>",
	Short: "Group assets by category and find duplicated filenames",
	Long: `Walk an asset tree, group every .wem file by filename and by the category
of its parent directory, and write the report as JSON.

Examples:
  wemtool-cli analyze ./Named
  wemtool-cli analyze ./Named --sizes --list`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeSizes {
			cfg.Analyze.Sizes = true
		}
		output := analyzeOutput
		if output == "" {
			output = cfg.AnalysisPath
		}

		analyze := commands.NewAnalyzeCommand(
			do.MustInvoke[*filesystem.Analyzer](container),
			do.MustInvoke[*filesystem.ReportStore](container),
			args[0], output)
		result, err := analyze.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if analyzeList {
			for _, rec := range result.Duplicates {
				fmt.Printf("%s [%s]\n", rec.Filename, strings.Join(rec.AllCategories, ", "))
				for _, p := range rec.Paths {
					fmt.Println("  " + p)
				}
			}
		}
		fmt.Println(result.Message)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Export a category report as one CSV per category",
	Long: `Read the analysis JSON written by analyze and write one CSV per category.

Example:
  wemtool-cli export ./reports
  wemtool-cli export ./reports --analysis ./wem_analysis.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analysis := analyzeOutput
		if analysis == "" {
			analysis = cfg.AnalysisPath
		}

		export := commands.NewExportCommand(
			do.MustInvoke[*filesystem.ReportStore](container),
			analysis, args[0])
		result, err := export.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "report path (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeSizes, "sizes", false, "record the total size of every filename")
	analyzeCmd.Flags().BoolVar(&analyzeList, "list", false, "print every duplicated filename")
	exportCmd.Flags().StringVarP(&analyzeOutput, "analysis", "a", "", "report path (default from config)")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(exportCmd)
}
