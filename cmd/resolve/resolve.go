// Package resolve handles single analyte-name resolution commands
package resolve

import (
	"context"
	"fmt"

	"vitalab/labparse/cmd/root"

	"github.com/spf13/cobra"
)

var name string

// Cmd represents the resolve command
var Cmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a raw analyte name to its canonical catalog name",
	Long: `Resolve a free-form analyte name through the strategy chain: catalog
and synonym lookup first, then the AI fallback when enabled. Names the AI
resolves are learned as synonyms for future runs.`,
	Run: resolveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&name, "name", "n", "", "Analyte name to resolve")
}

func resolveFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	if name == "" {
		log.Fatal("No analyte name specified (use --name)")
	}

	c := root.GetContainer()
	canonical, err := c.GetResolver().Resolve(context.Background(), name)
	if err != nil {
		log.Fatalf("Could not resolve '%s': %v", name, err)
	}

	// Remember the mapping so the next run resolves it without a lookup.
	c.GetLearner().Record(name, canonical)

	def, _ := c.GetCatalog().Lookup(canonical)
	fmt.Printf("%s -> %s", name, canonical)
	if rangeText := def.Range.Display(); rangeText != "" {
		fmt.Printf(" (%s %s)", rangeText, def.Unit)
	}
	fmt.Println()
}
