// Package xml handles XML lab export parsing commands
package xml

import (
	"vitalab/labparse/cmd/common"
	"vitalab/labparse/cmd/root"
	"vitalab/labparse/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the xml command
var Cmd = &cobra.Command{
	Use:   "xml",
	Short: "Parse an XML lab export",
	Long:  `Parse an XML lab export into classified results.`,
	Run:   xmlFunc,
}

func xmlFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	log.Info("XML parse command called")

	if root.SharedFlags.Input == "" {
		log.Fatal("No input file specified (use --input)")
	}
	if root.SharedFlags.Output == "" {
		log.Fatal("No output file specified (use --output)")
	}

	c := root.GetContainer()
	parser := c.GetXMLParser()

	if root.SharedFlags.Validate {
		log.Info("Validating format...")
		valid, err := parser.ValidateFormat(root.SharedFlags.Input)
		if err != nil {
			log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			log.Fatal("The file is not a valid XML lab export")
		}
		log.Info("Validation successful.")
	}

	test, unresolved, err := parser.ParseFile(root.SharedFlags.Input)
	if err != nil {
		log.Fatalf("Error parsing XML export: %v", err)
	}
	common.ReportUnparsed(unresolved, log)

	if err := common.WriteOutput([]models.BloodTest{test}, root.SharedFlags.Output, log); err != nil {
		log.Fatalf("Error writing output: %v", err)
	}
	log.Info("XML export parsed successfully!")
}
