package main

import (
	"context"
	"fmt"
	"io"
	"time"

	riftv1 "github.com/riftbroker/rift/api/rift/v1"
	"github.com/spf13/cobra"
)

func topicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Manage topics",
	}
	cmd.AddCommand(topicCreateCmd(), topicGetCmd(), topicListCmd(), topicDeleteCmd())
	return cmd
}

func topicCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			topic, err := topicClient(conn).Create(ctx, &riftv1.CreateTopicRequest{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("created topic %q\n", topic.GetName())
			return nil
		},
	}
}

func topicGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Get a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			topic, err := topicClient(conn).Get(ctx, &riftv1.GetTopicRequest{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("%s created=%s updated=%s\n", topic.GetName(), topic.GetCreated().AsTime(), topic.GetUpdated().AsTime())
			return nil
		},
	}
}

func topicListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			stream, err := topicClient(conn).List(cmd.Context(), &riftv1.ListTopicsRequest{})
			if err != nil {
				return err
			}
			for {
				topic, err := stream.Recv()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Println(topic.GetName())
			}
		},
	}
}

func topicDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a topic, cascading to its subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			if _, err := topicClient(conn).Delete(ctx, &riftv1.DeleteTopicRequest{Name: args[0]}); err != nil {
				return err
			}
			fmt.Printf("deleted topic %q\n", args[0])
			return nil
		},
	}
}
