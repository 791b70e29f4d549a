package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mkarpushin/pr-tracker/internal/apiclient"
	"github.com/mkarpushin/pr-tracker/internal/tui"
)

// NewCmdBrowse creates the browse command. It is also the root command's
// default action.
func NewCmdBrowse(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse pull requests grouped by author",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		},
	}

	addBrowseFlags(cmd, opts)

	return cmd
}

func addBrowseFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVar(&opts.Owner, "owner", "", "organization to browse (overrides config)")
	cmd.Flags().StringSliceVar(&opts.Users, "users", nil, "authors to include (default: all organization members)")
	cmd.Flags().StringVar(&opts.State, "state", "open", "pull request state: open, closed or merged")
	cmd.Flags().BoolVar(&opts.NoTUI, "no-tui", false, "plain output even when stdout is a terminal")
}

func runBrowse(cmd *cobra.Command, opts *Options) error {
	cc, err := clientConfig(opts)
	if err != nil {
		return err
	}
	if cc.DefaultOwner == "" {
		return fmt.Errorf("no owner configured: pass --owner or set default_org in the config")
	}

	log := clientLogger()
	client := apiclient.New(log, cc.APIURL)

	if !opts.NoTUI && tui.ShouldUseTUI() {
		return tui.Run(log, client, cc)
	}

	return plainBrowse(cmd.Context(), client, cc.DefaultOwner, opts)
}

// plainBrowse prints the author-grouped listing without the TUI, for pipes
// and CI.
func plainBrowse(ctx context.Context, client *apiclient.Client, owner string, opts *Options) error {
	users := opts.Users
	if len(users) == 0 {
		members, err := client.Members(ctx, owner)
		if err != nil {
			return fmt.Errorf("fetch members of %s: %w", owner, err)
		}
		users = members
	}

	if len(users) == 0 {
		fmt.Println("no users to query")
		return nil
	}

	prs, err := client.PullRequestsByAuthor(ctx, users, opts.State)
	if err != nil {
		return fmt.Errorf("fetch pull requests: %w", err)
	}

	if len(prs) == 0 {
		fmt.Println("No matching pull requests found for the given users and repositories")
		return nil
	}

	author := color.New(color.FgYellow, color.Bold)
	open := color.New(color.FgGreen)
	other := color.New(color.FgHiBlack)
	link := color.New(color.FgCyan)

	for _, group := range tui.GroupByAuthor(prs) {
		plural := "s"
		if len(group.PRs) == 1 {
			plural = ""
		}
		author.Printf("%s", group.Login)
		fmt.Printf("  %d Pull Request%s\n", len(group.PRs), plural)

		for _, pr := range group.PRs {
			state := other
			if pr.State == "open" || pr.State == "OPEN" {
				state = open
			}
			fmt.Printf("  %s  %s  %s\n", pr.Title, state.Sprint(pr.State), pr.CreatedAt.Format("2006-01-02"))
			fmt.Printf("  %s\n", link.Sprint(pr.HTMLURL))
		}
		fmt.Println()
	}

	return nil
}
