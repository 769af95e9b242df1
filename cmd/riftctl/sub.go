package main

import (
	"context"
	"fmt"
	"io"
	"time"

	riftv1 "github.com/riftbroker/rift/api/rift/v1"
	"github.com/spf13/cobra"
)

func subCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Manage subscriptions",
	}
	cmd.AddCommand(subCreateCmd(), subGetCmd(), subListCmd(), subDeleteCmd())
	return cmd
}

func subCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <topic> <name>",
		Short: "Create a subscription on an existing topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			sub, err := subscriptionClient(conn).Create(ctx, &riftv1.CreateSubscriptionRequest{Topic: args[0], Name: args[1]})
			if err != nil {
				return err
			}
			fmt.Printf("created subscription %q on topic %q\n", sub.GetName(), sub.GetTopic())
			return nil
		},
	}
}

func subGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <topic> <name>",
		Short: "Get a subscription",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			sub, err := subscriptionClient(conn).Get(ctx, &riftv1.GetSubscriptionRequest{Topic: args[0], Name: args[1]})
			if err != nil {
				return err
			}
			fmt.Printf("%s/%s created=%s updated=%s\n", sub.GetTopic(), sub.GetName(), sub.GetCreated().AsTime(), sub.GetUpdated().AsTime())
			return nil
		},
	}
}

func subListCmd() *cobra.Command {
	var topic string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions, optionally filtered by topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			stream, err := subscriptionClient(conn).List(cmd.Context(), &riftv1.ListSubscriptionsRequest{Topic: topic})
			if err != nil {
				return err
			}
			for {
				sub, err := stream.Recv()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Printf("%s/%s\n", sub.GetTopic(), sub.GetName())
			}
		},
	}
	cmd.Flags().StringVar(&topic, "topic", "", "Restrict the listing to one topic")
	return cmd
}

func subDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <topic> <name>",
		Short: "Delete a subscription",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			if _, err := subscriptionClient(conn).Delete(ctx, &riftv1.DeleteSubscriptionRequest{Topic: args[0], Name: args[1]}); err != nil {
				return err
			}
			fmt.Printf("deleted subscription %q on topic %q\n", args[1], args[0])
			return nil
		},
	}
}
