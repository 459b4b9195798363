package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nainya/revstore/pkg/diff"
)

var compareCmd = &cobra.Command{
	Use:   "compare [file-a] [file-b]",
	Short: "Compare two text files",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

var compareVersionsCmd = &cobra.Command{
	Use:   "compare-versions [doc-id] [version-a] [version-b]",
	Short: "Compare two stored versions of a document",
	Args:  cobra.ExactArgs(3),
	RunE:  runCompareVersions,
}

// compareLines and compareJSON are flags shared by both commands
var (
	compareLines bool
	compareJSON  bool
)

func init() {
	compareCmd.Flags().BoolVar(&compareLines, "lines", false, "Align whole lines instead of characters")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Print the full result as JSON")
	compareVersionsCmd.Flags().BoolVar(&compareJSON, "json", false, "Print the full result as JSON")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(compareVersionsCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	textA, err := readInput(args[0])
	if err != nil {
		return err
	}
	textB, err := readInput(args[1])
	if err != nil {
		return err
	}

	result, err := svc.Compare(textA, textB, !compareLines)
	if err != nil {
		return err
	}

	return printResult(cmd, result)
}

func runCompareVersions(cmd *cobra.Command, args []string) error {
	documentID := args[0]

	result, err := svc.CompareVersions(documentID, args[1], args[2])
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("one or both versions not found in %s", documentID)
	}

	return printResult(cmd, result)
}

func printResult(cmd *cobra.Command, result *diff.Result) error {
	if compareJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Similarity: %.4f\n", result.Similarity)
	cmd.Printf("Insertions: %d\n", result.Summary.Insertions)
	cmd.Printf("Deletions:  %d\n", result.Summary.Deletions)
	cmd.Printf("Replaced runs: %d\n", result.Summary.Replacements)
	cmd.Printf("Unchanged: %d\n", result.Summary.UnchangedChars)
	cmd.Printf("Segments: %d\n", len(result.Segments))
	return nil
}
