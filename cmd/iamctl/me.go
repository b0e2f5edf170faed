package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// meCmd represents the me command
var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated user's profile",
	Long: `Fetch and print the profile of the user GOIAM_TOKEN belongs to,
including their roles, resources and policies, as indented JSON.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		user, err := client.Me(cmd.Context(), requireToken())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch user: %v\n", err)
			os.Exit(1)
		}

		out, err := json.MarshalIndent(user, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render user: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(meCmd)
}
