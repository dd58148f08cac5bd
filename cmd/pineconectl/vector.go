package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MikaAK/pinecone/v1/pinecone"
)

// upsertBatchSize bounds one upsert request; larger files are split and sent
// concurrently.
const upsertBatchSize = 100

// upsertConcurrency bounds in-flight upsert batches.
const upsertConcurrency = 4

func newVectorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Read and write vectors in an index",
	}

	cmd.AddCommand(
		newVectorUpsertCommand(),
		newVectorFetchCommand(),
		newVectorDeleteCommand(),
		newVectorQueryCommand(),
		newVectorStatsCommand(),
	)

	return cmd
}

func newVectorUpsertCommand() *cobra.Command {
	var (
		file      string
		namespace string
	)

	cmd := &cobra.Command{
		Use:   "upsert [index]",
		Short: "Upsert vectors from a JSON file",
		Long: `Upsert vectors into an index from a JSON file containing an array of
{"id": ..., "values": [...], "metadata": {...}} records. Large files are
split into batches and sent concurrently.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var vectors []pinecone.Vector
			if err := json.Unmarshal(data, &vectors); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			index := client.IndexWithNamespace(args[0], namespace)

			group, ctx := errgroup.WithContext(cmd.Context())
			group.SetLimit(upsertConcurrency)
			for start := 0; start < len(vectors); start += upsertBatchSize {
				end := start + upsertBatchSize
				if end > len(vectors) {
					end = len(vectors)
				}
				batch := vectors[start:end]

				group.Go(func() error {
					result, err := index.Upsert(ctx, &pinecone.UpsertRequest{Vectors: batch})
					if err != nil {
						return err
					}
					return result.AsError()
				})
			}
			if err := group.Wait(); err != nil {
				return err
			}

			fmt.Printf("upserted %d vectors into %s\n", len(vectors), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to a JSON file of vectors (required)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Target namespace")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newVectorFetchCommand() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "fetch [index] [id...]",
		Short: "Fetch vectors by id",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.IndexWithNamespace(args[0], namespace).Fetch(cmd.Context(), args[1:])
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	cmd.Flags().StringVar(&namespace, "namespace", "", "Namespace to fetch from")

	return cmd
}

func newVectorDeleteCommand() *cobra.Command {
	var (
		namespace string
		all       bool
		filter    string
	)

	cmd := &cobra.Command{
		Use:   "delete [index] [id...]",
		Short: "Delete vectors by id, by filter, or all of them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			index := client.IndexWithNamespace(args[0], namespace)

			switch {
			case all || filter != "":
				if len(args) > 1 {
					return fmt.Errorf("ids cannot be combined with --all or --filter")
				}
				var filterMap map[string]interface{}
				if filter != "" {
					if err := json.Unmarshal([]byte(filter), &filterMap); err != nil {
						return fmt.Errorf("parse filter: %w", err)
					}
				}
				result, err := index.DeleteAll(cmd.Context(), filterMap)
				if err != nil {
					return err
				}
				return printResult(result)
			case len(args) > 1:
				result, err := index.Delete(cmd.Context(), args[1:])
				if err != nil {
					return err
				}
				return printResult(result)
			default:
				return fmt.Errorf("pass vector ids, --all, or --filter")
			}
		},
	}

	cmd.Flags().StringVar(&namespace, "namespace", "", "Namespace to delete from")
	cmd.Flags().BoolVar(&all, "all", false, "Delete every vector in the namespace")
	cmd.Flags().StringVar(&filter, "filter", "", "Metadata filter as JSON; deletes only matching vectors")

	return cmd
}

func newVectorQueryCommand() *cobra.Command {
	var (
		vector          string
		topK            int
		namespace       string
		filter          string
		includeValues   bool
		includeMetadata bool
	)

	cmd := &cobra.Command{
		Use:   "query [index]",
		Short: "Run a similarity search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			values, err := parseVector(vector)
			if err != nil {
				return err
			}

			req := &pinecone.QueryRequest{
				Vector:          values,
				TopK:            topK,
				Namespace:       namespace,
				IncludeValues:   includeValues,
				IncludeMetadata: includeMetadata,
			}
			if filter != "" {
				if err := json.Unmarshal([]byte(filter), &req.Filter); err != nil {
					return fmt.Errorf("parse filter: %w", err)
				}
			}

			result, err := client.Index(args[0]).Query(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	cmd.Flags().StringVar(&vector, "vector", "", "Query vector as comma-separated floats (required)")
	cmd.Flags().IntVar(&topK, "top-k", 0, "Number of matches to return (default 5)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Namespace to query")
	cmd.Flags().StringVar(&filter, "filter", "", "Metadata filter as JSON")
	cmd.Flags().BoolVar(&includeValues, "include-values", false, "Include vector values in matches")
	cmd.Flags().BoolVar(&includeMetadata, "include-metadata", false, "Include metadata in matches")
	_ = cmd.MarkFlagRequired("vector")

	return cmd
}

func newVectorStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [index]",
		Short: "Show vector counts and fullness for an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.Index(args[0]).DescribeStats(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
}

func parseVector(s string) ([]float32, error) {
	parts := strings.Split(s, ",")
	values := make([]float32, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, fmt.Errorf("malformed vector component %q: %w", part, err)
		}
		values = append(values, float32(f))
	}
	return values, nil
}
