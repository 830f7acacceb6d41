package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/km-arc/kindform/app/datakind"
	"github.com/km-arc/kindform/framework/config"
)

// NewRootCommand builds the kindform command tree.
func NewRootCommand() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:   "kindform",
		Short: "Data-kind form validator",
		Long: `kindform validates a two-field form: a data kind and a list of values.

Data kinds:
  1  IPv4 addresses (max 2)
  2  IPv4 or IPv6 addresses (max 63)
  3  FQDN (max 1)
  4  Number 68-65535 (max 1)
  5  Filename with path (max 1)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env", nil, "env files to load (default: .env)")

	load := func() *config.Config { return config.Load(envFiles...) }
	root.AddCommand(
		newServeCommand(&envFiles),
		newCheckCommand(load),
		newPromptCommand(load),
		newOptionsCommand(load),
	)
	return root
}

// Execute runs the command tree and prints any error to stderr.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog(cfg *config.Config) (*datakind.Catalog, error) {
	if cfg.Form.Catalog == "" {
		return datakind.DefaultCatalog(), nil
	}
	return datakind.LoadCatalog(cfg.Form.Catalog)
}
