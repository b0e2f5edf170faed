package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goiamhq/goiam-go/pkg/iamsdk"
	"github.com/goiamhq/goiam-go/pkg/slogx"
)

var rootCmd = &cobra.Command{
	Use:   "iamctl",
	Short: "Command line client for the GoIAM service",
	Long: `iamctl exercises the GoIAM HTTP API through the Go SDK.

Connection settings come from the environment:

  GOIAM_BASE_URL       Base endpoint of the GoIAM service (required)
  GOIAM_CLIENT_ID      OAuth client ID (required for verify)
  GOIAM_CLIENT_SECRET  OAuth client secret (required for verify)
  GOIAM_TOKEN          Access token (required for me and resource commands)
  LOG_LEVEL            Log level (debug, info, warn, error; default: info)
  LOG_FORMAT           Log format (json, text; default: text)`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// newClient builds an SDK client from the environment. It exits with an
// error when the base URL is missing.
func newClient() *iamsdk.Client {
	baseURL := os.Getenv("GOIAM_BASE_URL")
	if baseURL == "" {
		fmt.Fprintln(os.Stderr, "error: GOIAM_BASE_URL environment variable is required")
		os.Exit(1)
	}

	logger := slogx.New(slogx.Config{
		App:    "iamctl",
		Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		Format: getEnvOrDefault("LOG_FORMAT", "text"),
	})

	return iamsdk.New(
		baseURL,
		os.Getenv("GOIAM_CLIENT_ID"),
		os.Getenv("GOIAM_CLIENT_SECRET"),
		iamsdk.WithLogger(logger),
	)
}

// requireToken returns the access token from the environment or exits.
func requireToken() string {
	token := os.Getenv("GOIAM_TOKEN")
	if token == "" {
		fmt.Fprintln(os.Stderr, "error: GOIAM_TOKEN environment variable is required")
		os.Exit(1)
	}
	return token
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
