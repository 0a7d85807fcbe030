package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/linemark/pkg/adapters/fs"
	lmlifecycle "github.com/aretw0/linemark/pkg/adapters/lifecycle"
	"github.com/aretw0/linemark/pkg/core"
)

var (
	watchPattern string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch bookmarked files and reanchor on change",
	Long: `Watch observes every bookmarked file and reanchors its bookmarks as
soon as the file is saved. It runs until interrupted.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, store := openProject(false)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := svc.Watch(ctx, watchPattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting watcher: %v\n", err)
			os.Exit(1)
		}

		// Bridge into a lifecycle source so the stream is supervised like
		// any other runtime component.
		src := lmlifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting event source: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Watching bookmarked files. Ctrl-C to stop.")

		for le := range src.Events() {
			e, ok := le.(core.Event)
			if !ok || e.Type != core.EventChange {
				continue
			}

			doc, err := fs.ReadDocument(store.ResourcePath(e.Resource))
			if err != nil {
				slog.Warn("document vanished, bookmarks left stale", "resource", e.Resource)
				continue
			}

			moved, err := svc.Reanchor(ctx, e.Resource, doc)
			if err != nil {
				slog.Error("reanchor failed", "resource", e.Resource, "error", err)
				continue
			}
			if moved > 0 {
				fmt.Printf("Reanchored %d bookmark(s) in %s\n", moved, e.Resource)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "Only watch resources matching this glob (e.g. \"src/**/*.go\")")
}
