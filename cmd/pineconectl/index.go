package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikaAK/pinecone/v1/pinecone"
)

func newIndexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Manage indexes",
	}

	cmd.AddCommand(
		newIndexListCommand(),
		newIndexDescribeCommand(),
		newIndexCreateCommand(),
		newIndexDeleteCommand(),
		newIndexConfigureCommand(),
	)

	return cmd
}

func newIndexListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all indexes in the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.ListIndexes(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
}

func newIndexDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [name]",
		Short: "Show configuration, status and host of an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.DescribeIndex(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
}

func newIndexCreateCommand() *cobra.Command {
	var (
		dimension   int
		metric      string
		cloud       string
		region      string
		podType     string
		pods        int
		replicas    int
		shards      int
		environment string
	)

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new index",
		Long: `Create a new index. Pass --cloud and --region for a serverless index,
or --pod-type (e.g. p1.x1) for a pod-based one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			req := &pinecone.CreateIndexRequest{
				Name:      args[0],
				Dimension: dimension,
				Metric:    pinecone.Metric(metric),
			}

			switch {
			case cloud != "" || region != "":
				req.Spec = &pinecone.IndexSpec{Serverless: &pinecone.ServerlessSpec{
					Cloud:  pinecone.Cloud(cloud),
					Region: region,
				}}
			case podType != "":
				pt, err := parsePodType(podType)
				if err != nil {
					return err
				}
				req.Spec = &pinecone.IndexSpec{Pod: &pinecone.PodSpec{
					Environment: environment,
					PodType:     pt,
					Pods:        pods,
					Replicas:    replicas,
					Shards:      shards,
				}}
			default:
				return fmt.Errorf("either --cloud/--region or --pod-type is required")
			}

			result, err := client.CreateIndex(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	cmd.Flags().IntVar(&dimension, "dimension", 0, "Vector dimension (default 384)")
	cmd.Flags().StringVar(&metric, "metric", "", "Distance metric: euclidean, cosine or dotproduct (default cosine)")
	cmd.Flags().StringVar(&cloud, "cloud", "", "Serverless cloud provider: aws, gcp or azure")
	cmd.Flags().StringVar(&region, "region", "", "Serverless region, e.g. us-east-1")
	cmd.Flags().StringVar(&podType, "pod-type", "", "Pod type for a pod-based index, e.g. p1.x1")
	cmd.Flags().IntVar(&pods, "pods", 0, "Pod count")
	cmd.Flags().IntVar(&replicas, "replicas", 0, "Replica count")
	cmd.Flags().IntVar(&shards, "shards", 0, "Shard count")
	cmd.Flags().StringVar(&environment, "pod-environment", "", "Environment for pod-based indexes")

	return cmd
}

func newIndexDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.DeleteIndex(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !result.Failed() {
				fmt.Printf("index %s deleted\n", args[0])
			}
			return printResult(result)
		},
	}
}

func newIndexConfigureCommand() *cobra.Command {
	var (
		replicas int
		podType  string
	)

	cmd := &cobra.Command{
		Use:   "configure [name]",
		Short: "Scale a pod-based index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			req := &pinecone.ConfigureIndexRequest{Replicas: replicas}
			if podType != "" {
				pt, err := parsePodType(podType)
				if err != nil {
					return err
				}
				req.PodType = &pt
			}

			result, err := client.ConfigureIndex(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	cmd.Flags().IntVar(&replicas, "replicas", 0, "New replica count")
	cmd.Flags().StringVar(&podType, "pod-type", "", "New pod type, e.g. p1.x2")

	return cmd
}

func parsePodType(s string) (pinecone.PodType, error) {
	class, size, ok := strings.Cut(s, ".")
	if !ok {
		return pinecone.PodType{}, fmt.Errorf("malformed pod type %q, expected <class>.<size> like p1.x1", s)
	}
	return pinecone.PodType{Class: class, Size: size}, nil
}
