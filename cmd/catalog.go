package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/abuammar/academy/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate course catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the courses of the configured catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return err
		}
		listCatalog(cmd.OutOrStdout(), cat)
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "Check a catalog file and report every problem",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			path = cfg.CatalogPath
		}
		return validateCatalog(cmd.OutOrStdout(), path)
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}

func listCatalog(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintf(w, "%s (catalog %s)\n\n", cat.Academy(), cat.Version())
	fmt.Fprintf(w, "%-20s  %-30s  %7s  %9s  %4s\n", "ID", "Title", "Lessons", "Questions", "Pass")
	fmt.Fprintln(w, strings.Repeat("─", 78))

	for _, c := range cat.Courses() {
		title := runewidth.FillRight(runewidth.Truncate(c.Title, 30, "..."), 30)
		fmt.Fprintf(w, "%-20s  %s  %7d  %9d  %3d%%\n",
			c.ID, title, len(c.Lessons), c.Quiz.Len(), c.Quiz.PassMark)
	}

	fmt.Fprintf(w, "\n%d courses\n", cat.Len())
}

// errInvalidCatalog is returned after the problems have been printed.
var errInvalidCatalog = errors.New("catalog is invalid")

func validateCatalog(w io.Writer, path string) error {
	name := path
	if name == "" {
		name = "built-in catalog"
	}

	cat, err := catalog.Load(path)
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(w, "%s: %d problem(s)\n", name, len(verr.Problems))
			for _, p := range verr.Problems {
				fmt.Fprintf(w, "  - %s\n", p)
			}
			return errInvalidCatalog
		}
		return err
	}

	fmt.Fprintf(w, "%s: OK (version %s, %d courses)\n", name, cat.Version(), cat.Len())
	return nil
}
