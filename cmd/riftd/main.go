// Command riftd is the rift broker daemon: it wires the Topic/Subscription
// registries, the Fan-out Registry, and the Lease Tracker into a Broker
// Facade and exposes it over gRPC.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "riftd",
		Short: "rift broker daemon",
		Long:  "Run the rift in-memory pub/sub broker: topic/subscription management and lease-based message delivery over gRPC.",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
