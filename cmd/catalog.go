package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/catalog"
	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the style catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog file",
	Long: `Parse a catalog YAML file and report whether it is valid. Without an
argument the embedded default catalog is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogValidate,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog styles",
	RunE:  runCatalogList,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)

	catalogListCmd.Flags().String("search", "", "Filter styles by name (diacritics insensitive)")
	catalogListCmd.Flags().String("file", "", "Catalog file to list instead of the configured one")
}

// openCatalog loads a catalog from an explicit path, the configured path,
// or the embedded default, in that order.
func openCatalog(path string) (*catalog.Catalog, error) {
	if path != "" {
		return catalog.LoadFile(path)
	}
	return loadCatalog(config.Load())
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	var (
		cat    *catalog.Catalog
		source string
		err    error
	)

	if len(args) == 1 {
		source = args[0]
		cat, err = catalog.LoadFile(args[0])
	} else {
		source = "embedded catalog"
		cat, err = catalog.Parse(config.DefaultCatalog())
	}
	if err != nil {
		return fmt.Errorf("%s is invalid: %w", source, err)
	}

	fmt.Printf("%s is valid: %d styles\n", source, cat.Len())
	return nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	search := mustGetString(cmd, "search")
	file := mustGetString(cmd, "file")

	cat, err := openCatalog(file)
	if err != nil {
		return fmt.Errorf("could not load catalog: %w", err)
	}

	styles := cat.Styles()
	if search != "" {
		styles = cat.Search(search)
	}

	for _, style := range styles {
		fmt.Printf("%-24s %-6s %s\n", style.ID, style.Category, style.Name)
	}
	fmt.Printf("\n%d styles\n", len(styles))
	return nil
}
