package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "issuepilot",
	Short: "AI-powered GitHub issue triage",
	Long: `issuepilot analyzes GitHub issues with an LLM: it produces a summary,
root cause hypothesis, solution steps, suggested labels and a list of
similar open issues found by semantic similarity.

Runs as an HTTP service (serve) or as a one-shot CLI (analyze).`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("issuepilot version %s\n", version)
		},
	}
}
