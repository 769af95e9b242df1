// Command riftctl is the rift admin client: it wraps the TopicService,
// SubscriptionService, and PubSubService CRUD/one-shot-publish RPCs for
// operators poking at a running riftd.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var brokerAddr string

func main() {
	rootCmd := &cobra.Command{
		Use:   "riftctl",
		Short: "rift broker admin client",
	}
	rootCmd.PersistentFlags().StringVar(&brokerAddr, "addr", "127.0.0.1:7770", "riftd broker gRPC address")

	rootCmd.AddCommand(topicCmd())
	rootCmd.AddCommand(subCmd())
	rootCmd.AddCommand(pubCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
