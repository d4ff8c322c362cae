package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newWhoamiCommand(opt *ChangelogOption) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the user the token authenticates as",
		Long: `Print the login of the authenticated user. Useful to check that the token
and base URL are accepted before generating a changelog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opt.Whoami(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// Whoami prints the authenticated login.
func (o *ChangelogOption) Whoami(ctx context.Context, stdout io.Writer) error {
	if err := o.initialize(false); err != nil {
		return err
	}

	client, closeClient, err := o.newClient()
	if err != nil {
		return err
	}
	defer closeClient()

	login, err := client.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	_, err = fmt.Fprintln(stdout, login)
	return err
}
