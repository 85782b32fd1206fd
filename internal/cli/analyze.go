package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/issuepilot/issuepilot/internal/analysis"
	"github.com/issuepilot/issuepilot/pkg/models"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		markdown bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "analyze <owner/repo> <issue-number>",
		Short: "Analyze a single issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := args[0]
			if !strings.Contains(repo, "/") {
				return fmt.Errorf("repo must be in owner/name format")
			}
			number, err := strconv.Atoi(args[1])
			if err != nil || number <= 0 {
				return fmt.Errorf("issue number must be a positive integer")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			a, err := buildApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			result, _, err := a.analyzer.Analyze(context.Background(), repo, number)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if markdown || output != "" {
				md := analysis.ExportMarkdown(result, repo, number)
				if output != "" {
					if err := os.WriteFile(output, []byte(md), 0o644); err != nil {
						return fmt.Errorf("failed to write report: %w", err)
					}
					fmt.Printf("Report written to %s\n", output)
					return nil
				}
				fmt.Println(md)
				return nil
			}

			printResult(repo, number, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "print the report as markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the markdown report to a file")
	return cmd
}

func printResult(repo string, number int, result *models.AnalysisResult) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Printf("%s %s#%d\n\n", cyan("Analysis of"), repo, number)

	fmt.Printf("%s\n  %s\n\n", yellow("Summary:"), result.Summary)
	fmt.Printf("%s\n  %s\n\n", yellow("Root cause:"), result.RootCause)

	fmt.Println(yellow("Solution steps:"))
	for i, step := range result.SolutionSteps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
	fmt.Println()

	fmt.Println(yellow("Checklist:"))
	for _, item := range result.Checklist {
		fmt.Printf("  [ ] %s\n", item)
	}
	fmt.Println()

	fmt.Printf("%s %s\n\n", yellow("Labels:"), green(strings.Join(result.Labels, ", ")))

	if len(result.SimilarIssues) == 0 {
		fmt.Println(gray("No similar open issues found."))
		return
	}

	fmt.Println(yellow("Similar issues:"))
	for _, sim := range result.SimilarIssues {
		fmt.Printf("  #%d %s %s\n", sim.IssueNumber, sim.Title, gray(fmt.Sprintf("(%.2f)", sim.Similarity)))
	}
}
