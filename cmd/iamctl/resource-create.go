package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goiamhq/goiam-go/pkg/iamsdk"
)

// resourceCreateCmd represents the resource create command
var resourceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a resource record",
	Long: `Create a resource record on the GoIAM service.

The resource key is the stable identifier applications use to reference the
resource in policies; the server assigns the record ID.

Example:
  iamctl resource create --name "Reports" --key reports --description "Monthly reports"`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		key, _ := cmd.Flags().GetString("key")
		description, _ := cmd.Flags().GetString("description")

		client := newClient()

		resource := iamsdk.NewResource(name, description, key)
		if err := client.CreateResource(cmd.Context(), resource, requireToken()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create resource: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Resource %q created\n", key)
	},
}

func init() {
	resourceCreateCmd.Flags().String("name", "", "human-readable resource name")
	resourceCreateCmd.Flags().String("key", "", "stable resource key")
	resourceCreateCmd.Flags().String("description", "", "resource description")
	_ = resourceCreateCmd.MarkFlagRequired("name")
	_ = resourceCreateCmd.MarkFlagRequired("key")

	resourceCmd.AddCommand(resourceCreateCmd)
}
