// Package parse handles plain-text lab report parsing commands
package parse

import (
	"os"
	"time"

	"vitalab/labparse/cmd/common"
	"vitalab/labparse/cmd/root"
	"vitalab/labparse/internal/dateutils"
	"vitalab/labparse/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a plain-text lab report",
	Long:  `Parse a plain-text lab report into classified results.`,
	Run:   parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	log.Info("Text parse command called")

	if root.SharedFlags.Input == "" {
		log.Fatal("No input file specified (use --input)")
	}

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		log.Fatalf("Error reading input file: %v", err)
	}

	c := root.GetContainer()
	text := string(data)
	extraction := c.GetExtractor().Extract(text)
	common.ReportUnparsed(extraction.UnparsedLines, log)

	test := models.BloodTest{
		Date:     dateutils.CollectionDate(text, time.Now()),
		TestType: c.GetConfig().Extraction.TestType,
		Results:  extraction.Results,
	}

	if root.SharedFlags.Output == "" {
		log.Fatal("No output file specified (use --output)")
	}
	if err := common.WriteOutput([]models.BloodTest{test}, root.SharedFlags.Output, log); err != nil {
		log.Fatalf("Error writing output: %v", err)
	}
	log.Info("Lab report parsed successfully!")
}
