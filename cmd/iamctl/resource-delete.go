package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// resourceDeleteCmd represents the resource delete command
var resourceDeleteCmd = &cobra.Command{
	Use:   "delete <resource-id>",
	Short: "Delete resource records",
	Long: `Delete one or more resource records by ID.

Example:
  iamctl resource delete 01J9ZK3V7Q8R2T4W6Y8A0C2E4G`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		token := requireToken()

		for _, resourceID := range args {
			if err := client.DeleteResource(cmd.Context(), resourceID, token); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to delete resource %s: %v\n", resourceID, err)
				os.Exit(1)
			}
			fmt.Printf("Resource %s deleted\n", resourceID)
		}
	},
}

func init() {
	resourceCmd.AddCommand(resourceDeleteCmd)
}
