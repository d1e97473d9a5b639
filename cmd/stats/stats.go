// Package stats handles trend and summary commands over a test history
package stats

import (
	"fmt"
	"os"

	"vitalab/labparse/cmd/root"
	"vitalab/labparse/internal/models"
	"vitalab/labparse/internal/stats"

	"github.com/spf13/cobra"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize one analyte across a test history",
	Long: `Read a JSON history document and print summary statistics and the
trend direction for a single analyte.`,
	Run: statsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.AnalyteName, "analyte", "a", "", "Analyte name to summarize")
}

func statsFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	log.Info("Stats command called")

	if root.SharedFlags.Input == "" {
		log.Fatal("No input file specified (use --input)")
	}
	if root.AnalyteName == "" {
		log.Fatal("No analyte specified (use --analyte)")
	}

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		log.Fatalf("Error reading input file: %v", err)
	}

	c := root.GetContainer()
	tests, _, err := c.GetImporter().Import(data)
	if err != nil {
		log.Fatalf("Error reading history document: %v", err)
	}

	canonical, ok := c.GetCatalog().Resolve(root.AnalyteName)
	if !ok {
		log.Fatalf("Unknown analyte: %s", root.AnalyteName)
	}

	points := models.ChartPoints(tests, canonical)
	summary := stats.Compute(points)
	trend := stats.Direction(points)

	fmt.Printf("Analyte:  %s\n", canonical)
	fmt.Printf("Count:    %d\n", summary.Count)
	fmt.Printf("Average:  %.2f\n", summary.Average)
	fmt.Printf("Min:      %.2f\n", summary.Min)
	fmt.Printf("Max:      %.2f\n", summary.Max)
	fmt.Printf("Median:   %.2f\n", summary.Median)
	fmt.Printf("Trend:    %s\n", trend)
}
