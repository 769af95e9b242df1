package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	riftv1 "github.com/riftbroker/rift/api/rift/v1"
	"github.com/spf13/cobra"
)

func pubCmd() *cobra.Command {
	var attrs map[string]string

	cmd := &cobra.Command{
		Use:   "pub <topic> <data>",
		Short: "Publish a single message to a topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			if attrs == nil {
				attrs = make(map[string]string)
			}
			// Stamp an operator-traceable request id; the broker does not
			// interpret it, it's purely for correlating riftctl-issued
			// publishes in logs and traces.
			attrs["cli_request_id"] = uuid.NewString()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			confirm, err := pubSubClient(conn).Publish(ctx, &riftv1.Message{
				Topic:      args[0],
				Attributes: attrs,
				Data:       []byte(args[1]),
			})
			if err != nil {
				return err
			}
			fmt.Printf("published: status=%s request_id=%s\n", confirm.GetStatus(), attrs["cli_request_id"])
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&attrs, "attr", nil, "Message attribute, repeatable (key=value)")
	return cmd
}
