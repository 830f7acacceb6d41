package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/km-arc/kindform/app/form"
	"github.com/km-arc/kindform/app/prompt"
	"github.com/km-arc/kindform/framework/config"
)

func newPromptCommand(load func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the form interactively",
		Long: `Asks for a data kind and its values in the terminal, re-asking until the
form is valid, then prints the submission payload as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(load())
			if err != nil {
				return err
			}
			driver := prompt.NewSurveyDriver(cmd.ErrOrStderr())
			sub, err := prompt.Run(cmd.Context(), form.New(nil, cat, nil), driver)
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(sub)
		},
	}
}
