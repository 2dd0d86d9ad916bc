package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	var (
		remote  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "ask <text...>",
		Short: "Send one utterance and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			ans, err := c.Query(cmd.Context(), strings.Join(args, " "), remote)
			if err != nil {
				return fmt.Errorf("query: %w", err)
			}

			if verbose {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "[%s %s] %s\n", ans.Resolution, ans.Provider, ans.Reply)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ans.Reply)
			return err
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "skip local rules and ask the remote model first")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print how the reply was resolved")
	return cmd
}
