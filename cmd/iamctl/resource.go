package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// resourceCmd represents the resource command
var resourceCmd = &cobra.Command{
	Use:   "resource",
	Short: "Manage resource records",
	Long:  `Create and delete resource records on the GoIAM service.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'resource' requires a subcommand (create, delete)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(resourceCmd)
}
