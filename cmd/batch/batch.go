// Package batch handles directory-wide report processing commands
package batch

import (
	"os"
	"path/filepath"

	"vitalab/labparse/cmd/common"
	"vitalab/labparse/cmd/root"
	"vitalab/labparse/internal/batch"
	"vitalab/labparse/internal/models"

	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse every report in a directory into one history document",
	Long: `Walk a directory, parse every supported report (.txt, .pdf, .xml)
and combine the results into a single chronologically sorted history
document named after the covered date range.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputDir, "input-dir", "d", "", "Directory containing report files")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "D", ".", "Directory for the combined output")
}

func batchFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	log.Info("Batch command called")

	if inputDir == "" {
		log.Fatal("No input directory specified (use --input-dir)")
	}

	c := root.GetContainer()
	pdfParser := c.GetPDFParser()
	xmlParser := c.GetXMLParser()

	processor := batch.NewProcessor(map[string]batch.TestParser{
		".pdf": pdfParser.ParseFile,
		".xml": xmlParser.ParseFile,
		".txt": func(path string) (models.BloodTest, []string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return models.BloodTest{}, nil, err
			}
			return pdfParser.ParseText(string(data))
		},
	}, log)

	tests, err := processor.ProcessDirectory(inputDir)
	if err != nil {
		log.Fatalf("Error processing directory: %v", err)
	}

	outputFile := root.SharedFlags.Output
	if outputFile == "" {
		outputFile = filepath.Join(outputDir, batch.GenerateOutputFilename(batch.CalculateDateRange(tests)))
	}
	if err := common.WriteOutput(tests, outputFile, log); err != nil {
		log.Fatalf("Error writing output: %v", err)
	}
	log.Info("Batch processing completed successfully!")
}
