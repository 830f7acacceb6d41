package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/km-arc/kindform/app/datakind"
	"github.com/km-arc/kindform/app/form"
	"github.com/km-arc/kindform/framework/config"
)

func newCheckCommand(load func() *config.Config) *cobra.Command {
	var option string

	c := &cobra.Command{
		Use:   "check [values]",
		Short: "Validate values for a data kind",
		Long: `Validates the values text for the selected data kind and prints the
submission payload as JSON. Exits with status 1 and the inline message
when the form is invalid.

Examples:
  kindform check --option 1 "192.168.0.1, 10.0.0.1"
  kindform check --option 4 8080
  kindform check --option 5 /etc/passwd`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(load())
			if err != nil {
				return err
			}
			opt, _ := datakind.ParseOption(option)
			values := ""
			if len(args) == 1 {
				values = args[0]
			}

			f := form.New(nil, cat, nil)
			state, sub, err := f.OnSubmit(cmd.Context(), form.State{Option: opt, Values: values})
			if err != nil {
				return err
			}
			if sub == nil {
				return fmt.Errorf("%w: %s", datakind.ErrInvalid, state.Message)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(sub)
		},
	}
	c.Flags().StringVarP(&option, "option", "o", "-1", "data kind identifier (1-5)")
	return c
}
