package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yourusername/resumeiq-api/internal/analyzer"
)

func init() {
	godotenv.Load()
}

type options struct {
	referencePath string
	industry      string
	jsonOutput    bool
	skills        string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	var rootCmd = &cobra.Command{
		Use:          "resumeiq",
		Short:        "Score a resume for ATS readiness. Offline and deterministic.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.referencePath, "reference", "r", os.Getenv("REFERENCE_DATA_PATH"), "Path to reference data YAML (keywords, action verbs, tips)")

	var analyzeCmd = &cobra.Command{
		Use:   "analyze [resume.json]",
		Short: "Analyze a resume record stored as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args[0])
		},
	}
	analyzeCmd.Flags().StringVarP(&opts.industry, "industry", "i", analyzer.GeneralIndustry, "Industry keyword table to match against")
	analyzeCmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the report as JSON")
	rootCmd.AddCommand(analyzeCmd)

	var scanCmd = &cobra.Command{
		Use:   "scan [file]",
		Short: "Extract text from a PDF, DOCX, HTML or text resume and analyze it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args[0])
		},
	}
	scanCmd.Flags().StringVarP(&opts.industry, "industry", "i", analyzer.GeneralIndustry, "Industry keyword table to match against")
	scanCmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the report as JSON")
	rootCmd.AddCommand(scanCmd)

	var keywordsCmd = &cobra.Command{
		Use:   "keywords",
		Short: "Suggest industry keywords your skills do not cover yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeywords(cmd, opts)
		},
	}
	keywordsCmd.Flags().StringVarP(&opts.industry, "industry", "i", analyzer.GeneralIndustry, "Industry keyword table")
	keywordsCmd.Flags().StringVarP(&opts.skills, "skills", "s", "", "Your current skills (comma-separated)")
	rootCmd.AddCommand(keywordsCmd)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
