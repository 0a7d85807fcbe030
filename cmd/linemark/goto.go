package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var gotoCmd = &cobra.Command{
	Use:   "goto [mnemonic]",
	Short: "Print the location of a bookmark",
	Long: `Goto prints the bookmark's location as "path:line" (1-based), the
format editors and shells already understand:

	$EDITOR $(linemark goto bug)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, store := openProject(false)

		b, err := svc.Get(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s:%d\n", store.ResourcePath(b.Resource), b.Line+1)
	},
}

func init() {
	rootCmd.AddCommand(gotoCmd)
}
