package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abuammar/academy/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "academy",
	Short: "Terminal learning academy",
	Long: "academy is a terminal course catalog: read short lessons, take a quiz " +
		"and download a PDF certificate when you pass.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("catalog", "", "Catalog file, YAML or JSON (overrides "+config.EnvCatalog+"; default built-in catalog)")
	pf.String("journal", "", "SQLite activity journal file (overrides "+config.EnvJournal+"; default in-memory)")
	pf.String("out", "", "Directory for certificates (overrides "+config.EnvCertDir+")")
	pf.String("log-file", "", "Write JSON logs to this file (overrides "+config.EnvLogFile+")")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads .env and the environment, then applies flags, which
// take the highest priority.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	overrides := map[string]*string{
		"catalog":  &cfg.CatalogPath,
		"journal":  &cfg.JournalPath,
		"out":      &cfg.CertDir,
		"log-file": &cfg.LogFile,
	}
	for name, dst := range overrides {
		if v, _ := cmd.Flags().GetString(name); v != "" {
			*dst = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
