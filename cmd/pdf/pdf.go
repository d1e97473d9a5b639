// Package pdf handles PDF lab report parsing commands
package pdf

import (
	"vitalab/labparse/cmd/common"
	"vitalab/labparse/cmd/root"
	"vitalab/labparse/internal/models"
	"vitalab/labparse/internal/pdfparser"

	"github.com/spf13/cobra"
)

// Cmd represents the pdf command
var Cmd = &cobra.Command{
	Use:   "pdf",
	Short: "Parse a PDF lab report",
	Long:  `Extract text from a PDF lab report and parse it into classified results.`,
	Run:   pdfFunc,
}

func pdfFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	log.Info("PDF parse command called")

	if root.SharedFlags.Input == "" {
		log.Fatal("No input file specified (use --input)")
	}
	if root.SharedFlags.Output == "" {
		log.Fatal("No output file specified (use --output)")
	}

	if root.SharedFlags.Validate {
		log.Info("Validating format...")
		valid, err := pdfparser.ValidateFormat(root.SharedFlags.Input)
		if err != nil {
			log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			log.Fatal("The file is not a valid PDF")
		}
		log.Info("Validation successful.")
	}

	c := root.GetContainer()
	test, unparsed, err := c.GetPDFParser().ParseFile(root.SharedFlags.Input)
	if err != nil {
		log.Fatalf("Error parsing PDF report: %v", err)
	}
	common.ReportUnparsed(unparsed, log)

	if err := common.WriteOutput([]models.BloodTest{test}, root.SharedFlags.Output, log); err != nil {
		log.Fatalf("Error writing output: %v", err)
	}
	log.Info("PDF report parsed successfully!")
}
