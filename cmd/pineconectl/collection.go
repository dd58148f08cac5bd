package main

import (
	"github.com/spf13/cobra"

	"github.com/MikaAK/pinecone/v1/pinecone"
)

func newCollectionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage collections (static index snapshots)",
	}

	cmd.AddCommand(
		newCollectionListCommand(),
		newCollectionDescribeCommand(),
		newCollectionCreateCommand(),
		newCollectionDeleteCommand(),
	)

	return cmd
}

func newCollectionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all collections in the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.ListCollections(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
}

func newCollectionDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [name]",
		Short: "Show status and size of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.DescribeCollection(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
}

func newCollectionCreateCommand() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Snapshot a source index into a new collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.CreateCollection(cmd.Context(), &pinecone.CreateCollectionRequest{
				Name:   args[0],
				Source: source,
			})
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Source index to snapshot (required)")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func newCollectionDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.DeleteCollection(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
}
