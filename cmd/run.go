package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abuammar/academy/internal/app"
	"github.com/abuammar/academy/internal/catalog"
	"github.com/abuammar/academy/internal/certificate"
	"github.com/abuammar/academy/internal/store"
)

// runApp loads the catalog, opens the journal and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cat, err := loadCatalog(os.Stderr, cfg.CatalogPath)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "version", cat.Version(), "courses", cat.Len(), "source", cfg.CatalogPath)

	issuer := certificate.NewPDFIssuer(cfg.CertDir, cat.Academy(), certificate.WithLogger(logger))
	logger.Info("certificates directory", "dir", issuer.Dir())

	opts := app.Options{
		Catalog: cat,
		Issuer:  issuer,
		Logger:  logger,
	}

	st, err := store.Open(cfg.JournalPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Activity journal unavailable:", err)
		fmt.Fprintln(os.Stderr, "Recent attempts will not be recorded.")
		logger.Warn("journal unavailable", "error", err)
	} else {
		defer st.Close()
		opts.Journal = st.EventRepo()
	}

	return app.Run(opts)
}

// loadCatalog loads the catalog at path and, when it fails validation,
// points the user at the validate command.
func loadCatalog(w io.Writer, path string) (*catalog.Catalog, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		if catalog.IsValidationError(err) {
			fmt.Fprintf(w, "Run `academy catalog validate %s` for the full report.\n", path)
		}
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}
