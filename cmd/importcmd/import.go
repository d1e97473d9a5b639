// Package importcmd handles re-import of previously exported documents
package importcmd

import (
	"os"

	"vitalab/labparse/cmd/common"
	"vitalab/labparse/cmd/root"
	"vitalab/labparse/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a previously exported JSON document",
	Long: `Import a JSON document in any of the recognized shapes (history,
test list, single test, result list), recompute statuses against the
catalog and write it back out.`,
	Run: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	log.Info("Import command called")

	if root.SharedFlags.Input == "" {
		log.Fatal("No input file specified (use --input)")
	}
	if root.SharedFlags.Output == "" {
		log.Fatal("No output file specified (use --output)")
	}

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		log.Fatalf("Error reading input file: %v", err)
	}

	c := root.GetContainer()
	tests, schema, err := c.GetImporter().Import(data)
	if err != nil {
		log.Fatalf("Error importing document: %v", err)
	}
	log.Info("Document imported",
		logging.Field{Key: logging.FieldSchema, Value: string(schema)},
		logging.Field{Key: logging.FieldCount, Value: len(tests)})

	if err := common.WriteOutput(tests, root.SharedFlags.Output, log); err != nil {
		log.Fatalf("Error writing output: %v", err)
	}
	log.Info("Import completed successfully!")
}
