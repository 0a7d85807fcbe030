package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [mnemonic]",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openProject(false)

		if err := svc.Remove(context.Background(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing bookmark: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Bookmark removed: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
