package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"kuma-assistant/pkg/kumaclient"
)

const envServer = "KUMA_SERVER"

type rootOptions struct {
	server  string
	session string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "kuma",
		Short:         "Text client for the Kuma assistant backend",
		Long:          "kuma sends utterances to a running Kuma backend and inspects its memory, tasks and conversation.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	server := os.Getenv(envServer)
	if server == "" {
		server = kumaclient.DefaultBaseURL
	}
	rootCmd.PersistentFlags().StringVar(&opts.server, "server", server, "backend base URL (env "+envServer+")")
	rootCmd.PersistentFlags().StringVar(&opts.session, "session", "", "conversation session id")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", kumaclient.DefaultTimeout, "request timeout")

	rootCmd.AddCommand(
		newAskCmd(opts),
		newChatCmd(opts),
		newReadCmd(opts),
		newMemoryCmd(opts),
		newConversationCmd(opts),
		newTasksCmd(opts),
	)

	return rootCmd
}

func (o *rootOptions) client() (*kumaclient.Client, error) {
	return kumaclient.New(kumaclient.Config{
		BaseURL:    o.server,
		SessionID:  o.session,
		HTTPClient: &http.Client{Timeout: o.timeout},
	})
}
