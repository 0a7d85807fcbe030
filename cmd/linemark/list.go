package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bookmarks in the project",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openProject(false)

		marks, err := svc.List(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing bookmarks: %v\n", err)
			os.Exit(1)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(marks); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if len(marks) == 0 {
			fmt.Println("No bookmarks set.")
			return
		}

		for _, b := range marks {
			fmt.Printf("%-16s %s:%d\n", b.Mnemonic, b.Resource, b.Line+1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
