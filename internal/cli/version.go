package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [doc-id] [file]",
	Short: "Save a new version of a document",
	Long:  `Reads the file (or stdin when the file is "-") and appends it as a new snapshot to the document's history.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runSave,
}

var listCmd = &cobra.Command{
	Use:   "list [doc-id]",
	Short: "List a document's versions in order",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

var getCmd = &cobra.Command{
	Use:   "get [doc-id] [version-id]",
	Short: "Print the content of a stored version",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

var clearCmd = &cobra.Command{
	Use:   "clear [doc-id]",
	Short: "Remove a document's entire history",
	Args:  cobra.ExactArgs(1),
	RunE:  runClear,
}

// saveLabel and saveStyle are flags for the save command
var (
	saveLabel string
	saveStyle string
)

func init() {
	saveCmd.Flags().StringVarP(&saveLabel, "label", "l", "", "Version label, e.g. \"draft\"")
	saveCmd.Flags().StringVarP(&saveStyle, "style", "s", "", "Style annotation for transformed versions")

	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(clearCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	documentID := args[0]

	content, err := readInput(args[1])
	if err != nil {
		return err
	}

	version, err := svc.SaveVersion(documentID, content, saveLabel, saveStyle)
	if err != nil {
		// The snapshot may have been kept in memory even if the
		// rewrite failed; report what we have.
		if version == nil {
			return err
		}
		cmd.PrintErrf("warning: %v\n", err)
	}

	cmd.Printf("Saved version %s of %s at %s\n", version.VersionID, documentID, version.Timestamp)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	documentID := args[0]

	versions, err := svc.ListVersions(documentID)
	if err != nil {
		return err
	}

	if len(versions) == 0 {
		cmd.Printf("No versions found for document: %s\n", documentID)
		return nil
	}

	cmd.Printf("Versions of %s:\n\n", documentID)
	for i := range versions {
		cmd.Printf("  %s  %s", versions[i].VersionID, versions[i].Timestamp)
		if versions[i].Label != nil {
			cmd.Printf("  [%s]", *versions[i].Label)
		}
		if versions[i].Style != nil {
			cmd.Printf("  (%s)", *versions[i].Style)
		}
		cmd.Println()
	}

	cmd.Printf("\nTotal: %d versions\n", len(versions))
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	documentID, versionID := args[0], args[1]

	version, err := svc.GetVersion(documentID, versionID)
	if err != nil {
		return err
	}
	if version == nil {
		return fmt.Errorf("version not found: %s/%s", documentID, versionID)
	}

	cmd.Print(version.Content)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	documentID := args[0]

	if err := svc.ClearVersions(documentID); err != nil {
		return err
	}

	cmd.Printf("Cleared history of %s\n", documentID)
	return nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
