package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newMemoryCmd(opts *rootOptions) *cobra.Command {
	var (
		doClear bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Show or clear the persistent memory log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			if doClear {
				msg, err := c.ClearMemory(cmd.Context())
				if err != nil {
					return fmt.Errorf("clear memory: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
				return err
			}

			entries, err := c.Memory(cmd.Context())
			if err != nil {
				return fmt.Errorf("load memory: %w", err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			if len(entries) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Memory is empty.")
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", e.Timestamp, e.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&doClear, "clear", false, "erase the memory log")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newConversationCmd(opts *rootOptions) *cobra.Command {
	var doClear bool

	cmd := &cobra.Command{
		Use:   "conversation",
		Short: "Show or clear the session conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			if doClear {
				msg, err := c.ClearConversation(cmd.Context())
				if err != nil {
					return fmt.Errorf("clear conversation: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
				return err
			}

			turns, err := c.Conversation(cmd.Context())
			if err != nil {
				return fmt.Errorf("load conversation: %w", err)
			}
			if len(turns) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No conversation yet.")
				return err
			}
			for _, t := range turns {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", t.Role, t.Content)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&doClear, "clear", false, "reset the session buffer (memory is kept)")
	return cmd
}

func newTasksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the to-do list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			tasks, err := c.Tasks(cmd.Context())
			if err != nil {
				return fmt.Errorf("load tasks: %w", err)
			}
			if len(tasks) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "You have no tasks.")
				return err
			}
			for i, t := range tasks {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, t.Task)
			}
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
