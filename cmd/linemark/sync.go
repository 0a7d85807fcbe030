package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/linemark/pkg/adapters/fs"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reanchor every bookmark against the current file contents",
	Long: `Sync runs one reanchor pass over every bookmarked file. Use it after
edits made while no watcher was running (pulls, rebases, scripted rewrites).
Bookmarks whose line cannot be found nearby are left untouched.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, store := openProject(false)
		ctx := context.Background()

		marks, err := svc.List(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing bookmarks: %v\n", err)
			os.Exit(1)
		}

		resources := map[string]bool{}
		for _, b := range marks {
			resources[b.Resource] = true
		}

		moved := 0
		for resource := range resources {
			doc, err := fs.ReadDocument(store.ResourcePath(resource))
			if err != nil {
				// A missing document leaves its bookmarks stale; nothing to do.
				fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", resource, err)
				continue
			}

			n, err := svc.Reanchor(ctx, resource, doc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reanchoring %s: %v\n", resource, err)
				os.Exit(1)
			}
			moved += n
		}

		fmt.Printf("Sync complete: %d bookmark(s) moved.\n", moved)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
