package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/km-arc/kindform/app/datakind"
	"github.com/km-arc/kindform/framework/config"
)

func newOptionsCommand(load func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the offered data kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(load())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "OPTION\tKIND\tMAX\tWIDGET\tLABEL")
			for _, e := range cat.Entries {
				c, _ := datakind.Lookup(e.Option)
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", e.Option, c.Name, c.MaxItems, c.Widget, e.Label)
			}
			return w.Flush()
		},
	}
}
