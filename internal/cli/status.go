package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mkarpushin/pr-tracker/internal/apiclient"
	"github.com/mkarpushin/pr-tracker/internal/usecase/auth"
)

// NewCmdStatus creates the status command, reporting the server's gh
// authentication state.
func NewCmdStatus(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the gh authentication status of the tracker API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := clientConfig(opts)
			if err != nil {
				return err
			}

			client := apiclient.New(clientLogger(), cc.APIURL)

			st, err := client.AuthStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("query %s: %w", cc.APIURL, err)
			}

			if st.Status == auth.StatusAuthenticated {
				color.Green("gh: %s", st.Status)
			} else {
				color.Red("gh: %s", st.Status)
			}
			if st.Details != "" {
				fmt.Println(st.Details)
			}

			return nil
		},
	}
}
