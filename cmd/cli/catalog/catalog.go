package catalog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vheikkine/franchiselab/internal/heuristics"
)

var Group = &cobra.Group{
	ID:    "catalog",
	Title: "Heuristic catalog",
}

func init() {
	List.Flags().String("file", "", "path to a catalog JSON file, defaults to the built-in catalog")
}

var List = &cobra.Command{
	Use:     "list",
	GroupID: "catalog",
	Short:   "List heuristics",
	Long:    `Lists the heuristics in the catalog with their categories`,
	Run: func(cmd *cobra.Command, _ []string) {
		path, err := cmd.Flags().GetString("file")
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "invalid file flag: %v\n", err)
			return
		}
		c, err := load(path)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Catalog error: %v\n", err)
			return
		}
		for _, h := range c.All() {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-45s %-10s %s\n", h.ID, h.Category, h.Name)
		}
	},
}

var Validate = &cobra.Command{
	Use:     "validate [path]",
	GroupID: "catalog",
	Short:   "Validate a catalog file",
	Long:    `Parses a catalog JSON file and reports whether it is usable`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := heuristics.LoadFile(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Catalog error: %v\n", err)
			os.Exit(1)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d heuristics OK\n", args[0], c.Len())
	},
}

func load(path string) (*heuristics.Catalog, error) {
	if path == "" {
		return heuristics.Default()
	}
	return heuristics.LoadFile(path)
}
