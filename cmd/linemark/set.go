package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/linemark/pkg/adapters/fs"
)

var setCmd = &cobra.Command{
	Use:   "set [mnemonic] [file] [line]",
	Short: "Bookmark a line of a file",
	Long: `Set attaches a mnemonic to one line of a file. The line argument is
1-based, as printed by grep -n or shown in an editor gutter. The first 40
characters of the line are captured as the bookmark's anchor.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		mnemonic, file := args[0], args[1]

		lineArg, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: line must be a number, got %q\n", args[2])
			os.Exit(1)
		}
		if lineArg < 1 {
			fmt.Fprintln(os.Stderr, "Error: line numbers start at 1")
			os.Exit(1)
		}

		svc, store := openProject(true)

		resource, err := store.Resource(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving file: %v\n", err)
			os.Exit(1)
		}

		doc, err := fs.ReadDocument(store.ResourcePath(resource))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}

		b, err := svc.Set(context.Background(), mnemonic, resource, lineArg-1, doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error setting bookmark: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Bookmark set: %s -> %s:%d\n", b.Mnemonic, b.Resource, b.Line+1)
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
