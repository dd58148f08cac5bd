// Command pineconectl is a small operations CLI over the Pinecone client
// library: index and collection lifecycle, vector reads and writes, and
// similarity queries from the shell.
//
// Configuration is resolved from (highest precedence first) command flags,
// environment variables prefixed PINECONE_, an optional YAML config file, and
// a .env file in the working directory.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MikaAK/pinecone/v1/pinecone"
)

var (
	configPath string
	apiKey     string
	apiHost    string
	env        string
	version    = "0.1.0" // set during build
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "pineconectl",
		Short:        "Manage Pinecone indexes, collections and vectors",
		Long:         `pineconectl talks to the Pinecone vector database: create and scale indexes, snapshot collections, and upsert, fetch, query and delete vectors.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key (overrides PINECONE_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&apiHost, "api-host", "", "Control-plane host override")
	rootCmd.PersistentFlags().StringVar(&env, "environment", "", "Legacy environment, e.g. us-east1-gcp")

	rootCmd.AddCommand(
		newWhoamiCommand(),
		newIndexCommand(),
		newVectorCommand(),
		newCollectionCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the client configuration from flags, environment,
// config file and .env, in that order of precedence.
func loadConfig() (*pinecone.Config, error) {
	// .env only fills in variables that are not already exported.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PINECONE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := pinecone.DefaultConfig()
	if key := v.GetString("api_key"); key != "" {
		cfg.APIKey = key
	}
	if environment := v.GetString("environment"); environment != "" {
		cfg.Environment = environment
	}
	if project := v.GetString("project_name"); project != "" {
		cfg.ProjectName = project
	}
	if host := v.GetString("controller_host"); host != "" {
		cfg.APIHost = host
	}

	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if env != "" {
		cfg.Environment = env
	}
	if apiHost != "" {
		cfg.APIHost = apiHost
	}

	return cfg, nil
}

func getClient() (*pinecone.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return pinecone.NewClient(pinecone.Params{Config: cfg})
}

// printResult renders a Result as indented JSON on stdout and converts a
// failure into a command error so the process exits non-zero.
func printResult(result *pinecone.Result) error {
	if result.Payload != nil {
		data, err := json.MarshalIndent(result.Payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}

	if result.Failed() {
		return result.AsError()
	}
	return nil
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the project attached to the configured API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			result, err := client.Whoami(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
}
