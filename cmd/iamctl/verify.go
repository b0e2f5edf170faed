package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <code>",
	Short: "Exchange an authorization code for an access token",
	Long: `Exchange an authorization code for an access token.

The code is obtained from the GoIAM login redirect. The resulting token is
printed to STDOUT so it can be exported for the other commands:

  export GOIAM_TOKEN=$(iamctl verify <code>)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		token, err := client.Verify(cmd.Context(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to verify code: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
