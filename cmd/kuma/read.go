package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var errNoScreenText = errors.New("no readable text")

func newReadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read [file]",
		Short: "Send captured screen text (a file or stdin) for the assistant to read",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read screen text: %w", err)
			}

			text := strings.TrimSpace(string(data))
			if text == "" {
				return errNoScreenText
			}

			c, err := opts.client()
			if err != nil {
				return err
			}
			ans, err := c.ReadScreen(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("query: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ans.Reply)
			return err
		},
	}
}
