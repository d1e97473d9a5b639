// Package catalog handles inspection of the analyte catalog
package catalog

import (
	"fmt"
	"strings"

	"vitalab/labparse/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the catalog command
var Cmd = &cobra.Command{
	Use:   "catalog",
	Short: "List known analytes and their reference ranges",
	Long: `Print every analyte the catalog knows, with its unit and reference
range. Includes YAML overrides and extra synonyms when configured.`,
	Run: catalogFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&root.ShowSynonyms, "synonyms", "s", false, "Also list synonyms for each analyte")
}

func catalogFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	cat := c.GetCatalog()

	for _, def := range cat.Definitions() {
		rangeText := def.Range.Display()
		if rangeText == "" {
			rangeText = "-"
		}
		fmt.Printf("%-24s %-10s %s\n", def.Name, def.Unit, rangeText)
		if root.ShowSynonyms {
			if synonyms := cat.SynonymsFor(def.Name); len(synonyms) > 0 {
				fmt.Printf("%-24s aka: %s\n", "", strings.Join(synonyms, ", "))
			}
		}
	}
}
